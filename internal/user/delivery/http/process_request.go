package http

import (
	"github.com/gin-gonic/gin"

	"user-management-backend/pkg/apperror"
)

// processCreateReq binds and validates the create user request body.
// Binding errors are returned raw so the error translator can classify them.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processListReq binds and validates the list users query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processUpdateReq binds and validates the update user request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, apperror.InvalidParam("id must not be blank")
	}
	return req, nil
}
