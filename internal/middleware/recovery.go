package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"user-management-backend/pkg/apperror"
	"user-management-backend/pkg/response"
)

// Recovery catches panics from downstream handlers and reports them through
// the same translation path as ordinary errors. Nothing is retried; the
// failure is terminal for the request.
func (m Middleware) Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}

			err, ok := r.(error)
			if !ok {
				err = fmt.Errorf("%v", r)
			}

			m.l.Errorf(c.Request.Context(), "panic recovered: %s %s: %v\n%s",
				c.Request.Method, c.Request.URL.Path, r, debug.Stack())

			if c.Writer.Written() {
				c.Abort()
				return
			}
			response.WriteError(c, Translate(apperror.Internal(err), c.Request.URL.Path))
		}()

		c.Next()
	}
}
