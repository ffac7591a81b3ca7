package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// NewError builds the uniform error body for a failed request.
func NewError(status int, path, label, message string) ErrorResponse {
	if message == "" {
		message = label
	}
	return ErrorResponse{
		Timestamp: DateTime(time.Now()),
		Status:    status,
		Path:      path,
		Error:     label,
		Message:   message,
	}
}

// WriteError serializes the error body and aborts the request so no later
// handler writes a second response.
func WriteError(c *gin.Context, er ErrorResponse) {
	c.AbortWithStatusJSON(er.Status, er)
}
