package repository

// CreateUserOptions holds parameters for inserting a new User.
type CreateUserOptions struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Role      string
	Status    string
}

// GetOneUserOptions holds filter parameters for fetching a single User.
// All non-empty fields are applied as AND conditions.
type GetOneUserOptions struct {
	ID    string
	Email string
}

// ListUsersOptions holds filter and pagination parameters for listing Users.
type ListUsersOptions struct {
	Status string
	Limit  int
	Offset int
}

// UpdateUserOptions holds parameters for updating an existing User.
// Empty fields are left unchanged.
type UpdateUserOptions struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Status    string
}
