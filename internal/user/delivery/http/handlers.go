package http

import (
	"github.com/gin-gonic/gin"

	"user-management-backend/pkg/apperror"
	"user-management-backend/pkg/response"
)

// Create godoc
// @Summary     Create a new user
// @Description Creates a new user account. The email must be unique.
// @Tags        Users
// @Accept      json
// @Produce     json
// @Param       body body createReq true "User data"
// @Success     200 {object} createResp
// @Failure     400 {object} response.ErrorResponse "Bad Request"
// @Failure     409 {object} response.ErrorResponse "Conflict - email already registered"
// @Failure     500 {object} response.ErrorResponse "Internal Server Error"
// @Router      /api/v1/users [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List users
// @Description Returns a paginated list of users with optional status filter.
// @Tags        Users
// @Accept      json
// @Produce     json
// @Param       status query string false "Filter by status (active/inactive)"
// @Param       limit  query int    false "Page size (default: 20)"
// @Param       offset query int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.ErrorResponse "Bad Request"
// @Failure     500 {object} response.ErrorResponse "Internal Server Error"
// @Router      /api/v1/users [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get user detail
// @Description Returns a single user by its ID.
// @Tags        Users
// @Accept      json
// @Produce     json
// @Param       id path string true "User ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.ErrorResponse "Not Found"
// @Failure     500 {object} response.ErrorResponse "Internal Server Error"
// @Router      /api/v1/users/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		_ = c.Error(apperror.InvalidParam("id must not be blank"))
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Update godoc
// @Summary     Update a user
// @Description Updates an existing user. All fields are optional (partial update).
// @Tags        Users
// @Accept      json
// @Produce     json
// @Param       id   path string    true "User ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} updateResp
// @Failure     400 {object} response.ErrorResponse "Bad Request"
// @Failure     403 {object} response.ErrorResponse "Forbidden - admin accounts are protected"
// @Failure     404 {object} response.ErrorResponse "Not Found"
// @Failure     409 {object} response.ErrorResponse "Conflict - email already registered"
// @Failure     500 {object} response.ErrorResponse "Internal Server Error"
// @Router      /api/v1/users/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// Delete godoc
// @Summary     Delete a user
// @Description Permanently removes a user by ID. Admin accounts cannot be deleted.
// @Tags        Users
// @Accept      json
// @Produce     json
// @Param       id path string true "User ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     403 {object} response.ErrorResponse "Forbidden - admin accounts are protected"
// @Failure     404 {object} response.ErrorResponse "Not Found"
// @Failure     500 {object} response.ErrorResponse "Internal Server Error"
// @Router      /api/v1/users/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		_ = c.Error(apperror.InvalidParam("id must not be blank"))
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		_ = c.Error(err)
		return
	}

	response.OK(c, nil)
}
