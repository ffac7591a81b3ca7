package user

import "context"

// UseCase is the business logic surface of the user domain. Failures are
// returned as apperror values (conflict, not-found, forbidden) or raw errors
// for unexpected conditions; the HTTP layer never inspects them.
type UseCase interface {
	Create(ctx context.Context, input CreateUserInput) (CreateUserOutput, error)
	List(ctx context.Context, input ListUsersInput) (ListUsersOutput, error)
	Detail(ctx context.Context, id string) (DetailUserOutput, error)
	Update(ctx context.Context, input UpdateUserInput) (UpdateUserOutput, error)
	Delete(ctx context.Context, id string) error
}
