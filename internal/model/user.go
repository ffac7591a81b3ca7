package model

import "time"

// Environment names used across the service.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// User roles.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// User statuses.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// User is the account entity managed by this service.
type User struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Role      string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
