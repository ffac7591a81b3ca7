package usecase

import (
	"context"

	"user-management-backend/internal/model"
	"user-management-backend/internal/user"
	repo "user-management-backend/internal/user/repository"
	"user-management-backend/pkg/apperror"
)

// Create creates a new User after checking for email uniqueness.
func (uc *implUseCase) Create(ctx context.Context, input user.CreateUserInput) (user.CreateUserOutput, error) {
	existing, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: input.Email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create GetOneUser: %v", err)
		return user.CreateUserOutput{}, err
	}
	if existing.ID != "" {
		return user.CreateUserOutput{}, apperror.Conflict("email already registered, please use another one")
	}

	role := input.Role
	if role == "" {
		role = model.RoleMember
	}

	created, err := uc.repo.CreateUser(ctx, repo.CreateUserOptions{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
		Role:      role,
		Status:    model.StatusActive,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateUser: %v", err)
		return user.CreateUserOutput{}, err
	}

	return user.CreateUserOutput{User: created}, nil
}
