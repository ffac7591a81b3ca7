package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Error translation happens in the global middleware chain; handlers only
// attach errors to the context.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	users := rg.Group("/users")
	{
		users.POST("", h.Create)
		users.GET("", h.List)
		users.GET("/:id", h.Detail)
		users.PUT("/:id", h.Update)
		users.DELETE("/:id", h.Delete)
	}
}
