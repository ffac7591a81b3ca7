package usecase

import (
	"context"

	"user-management-backend/internal/model"
	"user-management-backend/internal/user"
	repo "user-management-backend/internal/user/repository"
	"user-management-backend/pkg/apperror"
)

// Detail returns a single User by ID, via the read-through cache.
func (uc *implUseCase) Detail(ctx context.Context, id string) (user.DetailUserOutput, error) {
	if cached, ok := uc.cache.Get(id); ok {
		return user.DetailUserOutput{User: cached}, nil
	}

	found, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneUser: %v", err)
		return user.DetailUserOutput{}, err
	}
	if found.ID == "" {
		return user.DetailUserOutput{}, apperror.NotFound("user", id)
	}

	uc.cache.Add(id, found)
	return user.DetailUserOutput{User: found}, nil
}

// Update applies a partial update to an existing User.
func (uc *implUseCase) Update(ctx context.Context, input user.UpdateUserInput) (user.UpdateUserOutput, error) {
	existing, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneUser: %v", err)
		return user.UpdateUserOutput{}, err
	}
	if existing.ID == "" {
		return user.UpdateUserOutput{}, apperror.NotFound("user", input.ID)
	}
	if existing.Role == model.RoleAdmin {
		return user.UpdateUserOutput{}, apperror.Forbidden("admin accounts cannot be modified through this API")
	}

	// Changing the email must not collide with another account.
	if input.Email != "" && input.Email != existing.Email {
		other, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: input.Email})
		if err != nil {
			uc.l.Errorf(ctx, "uc.Update GetOneUser by email: %v", err)
			return user.UpdateUserOutput{}, err
		}
		if other.ID != "" {
			return user.UpdateUserOutput{}, apperror.Conflict("email already registered, please use another one")
		}
	}

	updated, err := uc.repo.UpdateUser(ctx, repo.UpdateUserOptions{
		ID:        input.ID,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
		Status:    input.Status,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateUser: %v", err)
		return user.UpdateUserOutput{}, err
	}

	uc.cache.Remove(input.ID)
	return user.UpdateUserOutput{User: updated}, nil
}

// Delete removes a User by ID.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	existing, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneUser: %v", err)
		return err
	}
	if existing.ID == "" {
		return apperror.NotFound("user", id)
	}
	if existing.Role == model.RoleAdmin {
		return apperror.Forbidden("admin accounts cannot be deleted")
	}

	if err := uc.repo.DeleteUser(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteUser: %v", err)
		return err
	}

	uc.cache.Remove(id)
	return nil
}
