package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	userHTTP "user-management-backend/internal/user/delivery/http"
	userRepo "user-management-backend/internal/user/repository/inmem"
	userUC "user-management-backend/internal/user/usecase"
)

// setupUserDomain initializes the user domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(repo, srv.l)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api, h)
func (srv *HTTPServer) setupUserDomain(ctx context.Context, api *gin.RouterGroup) error {
	// 1. Repository
	repo := userRepo.New(srv.l)

	// 2. UseCase
	uc := userUC.New(repo, srv.l)

	// 3. HTTP Handler
	h := userHTTP.New(srv.l, uc)

	// 4. Routes: registers /api/v1/users
	userHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "User domain registered")
	return nil
}
