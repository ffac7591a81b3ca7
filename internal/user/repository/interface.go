package repository

import (
	"context"

	"user-management-backend/internal/model"
)

// Repository is the composed interface for the user domain data store.
type Repository interface {
	UserRepository
}

// UserRepository defines all data access methods for the User entity.
type UserRepository interface {
	CreateUser(ctx context.Context, opt CreateUserOptions) (model.User, error)
	GetOneUser(ctx context.Context, opt GetOneUserOptions) (model.User, error)
	ListUsers(ctx context.Context, opt ListUsersOptions) ([]model.User, int, error)
	UpdateUser(ctx context.Context, opt UpdateUserOptions) (model.User, error)
	DeleteUser(ctx context.Context, id string) error
}
