package http

import (
	"time"

	"user-management-backend/internal/model"
	"user-management-backend/internal/user"
)

// --- Request DTOs ---

type createReq struct {
	FirstName string `json:"first_name" binding:"required,min=1,max=255"`
	LastName  string `json:"last_name"  binding:"required,min=1,max=255"`
	Email     string `json:"email"      binding:"required,email"`
	Phone     string `json:"phone"      binding:"omitempty,e164"`
	Role      string `json:"role"       binding:"omitempty,oneof=admin member"`
}

func (r createReq) toInput() user.CreateUserInput {
	return user.CreateUserInput{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
		Role:      r.Role,
	}
}

// ---

type listReq struct {
	Status string `form:"status" binding:"omitempty,oneof=active inactive"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

func (r listReq) toInput() user.ListUsersInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := r.Offset
	if offset < 0 {
		offset = 0
	}
	return user.ListUsersInput{
		Status: r.Status,
		Limit:  limit,
		Offset: offset,
	}
}

// ---

type updateReq struct {
	ID        string `json:"-"` // populated from URI param
	FirstName string `json:"first_name" binding:"omitempty,min=1,max=255"`
	LastName  string `json:"last_name"  binding:"omitempty,min=1,max=255"`
	Email     string `json:"email"      binding:"omitempty,email"`
	Phone     string `json:"phone"      binding:"omitempty,e164"`
	Status    string `json:"status"     binding:"omitempty,oneof=active inactive"`
}

func (r updateReq) toInput() user.UpdateUserInput {
	return user.UpdateUserInput{
		ID:        r.ID,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
		Status:    r.Status,
	}
}

// --- Response DTOs ---

type userResp struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newUserResp(u model.User) userResp {
	return userResp{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

type createResp struct {
	User userResp `json:"user"`
}

func (h *handler) newCreateResp(out user.CreateUserOutput) createResp {
	return createResp{User: newUserResp(out.User)}
}

type listResp struct {
	Users  []userResp `json:"users"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out user.ListUsersOutput) listResp {
	users := make([]userResp, len(out.Users))
	for i, u := range out.Users {
		users[i] = newUserResp(u)
	}
	return listResp{
		Users:  users,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type detailResp struct {
	User userResp `json:"user"`
}

func (h *handler) newDetailResp(out user.DetailUserOutput) detailResp {
	return detailResp{User: newUserResp(out.User)}
}

type updateResp struct {
	User userResp `json:"user"`
}

func (h *handler) newUpdateResp(out user.UpdateUserOutput) updateResp {
	return updateResp{User: newUserResp(out.User)}
}
