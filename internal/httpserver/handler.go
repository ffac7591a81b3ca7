package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"user-management-backend/internal/model"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

// registerMiddlewares installs the global chain. Recovery runs outermost so
// panics from every later handler reach the translator; ErrorHandler must
// wrap the routes whose errors it translates.
func (srv *HTTPServer) registerMiddlewares() {
	ctx := context.Background()

	if srv.environment != string(model.EnvironmentProduction) {
		srv.gin.Use(gin.Logger())
	}
	srv.gin.Use(srv.mw.Recovery())
	srv.gin.Use(srv.mw.ErrorHandler())
	srv.gin.Use(srv.mw.RateLimit())

	srv.l.Infof(ctx, "Middlewares registered (environment: %s)", srv.environment)
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv *HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	api := srv.gin.Group("/api/v1")

	if err := srv.setupUserDomain(ctx, api); err != nil {
		return err
	}

	return nil
}
