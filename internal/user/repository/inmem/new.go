package inmem

import (
	"sync"

	"user-management-backend/internal/model"
	"user-management-backend/internal/user/repository"
	"user-management-backend/pkg/log"
)

// implRepository is a process-local User store. Guarded by a single RWMutex;
// every method copies entities in and out, so callers never share state.
type implRepository struct {
	l     log.Logger
	mu    sync.RWMutex
	users map[string]model.User
}

// New creates a new in-memory Repository for the user domain.
func New(l log.Logger) repository.Repository {
	return &implRepository{
		l:     l,
		users: make(map[string]model.User),
	}
}
