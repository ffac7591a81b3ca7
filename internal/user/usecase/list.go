package usecase

import (
	"context"

	"user-management-backend/internal/user"
	repo "user-management-backend/internal/user/repository"
)

// List returns a paginated slice of Users with an optional status filter.
func (uc *implUseCase) List(ctx context.Context, input user.ListUsersInput) (user.ListUsersOutput, error) {
	users, total, err := uc.repo.ListUsers(ctx, repo.ListUsersOptions{
		Status: input.Status,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListUsers: %v", err)
		return user.ListUsersOutput{}, err
	}

	return user.ListUsersOutput{
		Users:  users,
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}, nil
}
