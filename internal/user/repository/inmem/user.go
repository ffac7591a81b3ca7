package inmem

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"user-management-backend/internal/model"
	repo "user-management-backend/internal/user/repository"
)

// CreateUser inserts a new User and returns the created entity.
func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (model.User, error) {
	now := time.Now()
	u := model.User{
		ID:        uuid.NewString(),
		FirstName: opt.FirstName,
		LastName:  opt.LastName,
		Email:     opt.Email,
		Phone:     opt.Phone,
		Role:      opt.Role,
		Status:    opt.Status,
		CreatedAt: now,
		UpdatedAt: now,
	}

	r.mu.Lock()
	r.users[u.ID] = u
	r.mu.Unlock()

	return u, nil
}

// GetOneUser retrieves a single User by the provided filters (AND condition).
// Returns zero-value User (ID == "") when not found — do NOT return error for not-found.
func (r *implRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if opt.ID != "" {
		u, ok := r.users[opt.ID]
		if !ok || (opt.Email != "" && u.Email != opt.Email) {
			return model.User{}, nil
		}
		return u, nil
	}

	if opt.Email != "" {
		for _, u := range r.users {
			if u.Email == opt.Email {
				return u, nil
			}
		}
	}
	return model.User{}, nil
}

// ListUsers returns a paginated list of Users and the total count matching
// the filter. Results are ordered by creation time, oldest first.
func (r *implRepository) ListUsers(ctx context.Context, opt repo.ListUsersOptions) ([]model.User, int, error) {
	r.mu.RLock()
	matched := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		if opt.Status != "" && u.Status != opt.Status {
			continue
		}
		matched = append(matched, u)
	}
	r.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].ID < matched[j].ID
		}
		return matched[i].CreatedAt.Before(matched[j].CreatedAt)
	})

	total := len(matched)
	if opt.Offset >= total {
		return []model.User{}, total, nil
	}
	end := opt.Offset + opt.Limit
	if opt.Limit <= 0 || end > total {
		end = total
	}
	return matched[opt.Offset:end], total, nil
}

// UpdateUser applies non-empty fields to an existing User.
func (r *implRepository) UpdateUser(ctx context.Context, opt repo.UpdateUserOptions) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[opt.ID]
	if !ok {
		// Existence is checked by the use case; a miss here is a store fault.
		return model.User{}, repo.ErrFailedToUpdate
	}

	if opt.FirstName != "" {
		u.FirstName = opt.FirstName
	}
	if opt.LastName != "" {
		u.LastName = opt.LastName
	}
	if opt.Email != "" {
		u.Email = opt.Email
	}
	if opt.Phone != "" {
		u.Phone = opt.Phone
	}
	if opt.Status != "" {
		u.Status = opt.Status
	}
	u.UpdatedAt = time.Now()

	r.users[u.ID] = u
	return u, nil
}

// DeleteUser removes a User by ID.
func (r *implRepository) DeleteUser(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return repo.ErrFailedToDelete
	}
	delete(r.users, id)
	return nil
}
