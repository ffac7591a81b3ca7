package usecase

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"user-management-backend/internal/model"
	"user-management-backend/internal/user/repository"
	"user-management-backend/pkg/log"
)

// detailCacheSize bounds the read-through cache for Detail lookups.
const detailCacheSize = 512

// implUseCase is the private implementation of user.UseCase.
type implUseCase struct {
	repo  repository.Repository
	l     log.Logger
	cache *lru.Cache[string, model.User]
}

// New creates a new user UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	cache, err := lru.New[string, model.User](detailCacheSize)
	if err != nil {
		panic("user/usecase: failed to build detail cache: " + err.Error())
	}
	return &implUseCase{
		repo:  repo,
		l:     l,
		cache: cache,
	}
}
