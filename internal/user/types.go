package user

import "user-management-backend/internal/model"

// --- UseCase Inputs ---

type CreateUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Role      string
}

type ListUsersInput struct {
	Status string
	Limit  int
	Offset int
}

type UpdateUserInput struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Status    string
}

// --- UseCase Outputs ---

type CreateUserOutput struct {
	User model.User
}

type ListUsersOutput struct {
	Users  []model.User
	Total  int
	Limit  int
	Offset int
}

type DetailUserOutput struct {
	User model.User
}

type UpdateUserOutput struct {
	User model.User
}
