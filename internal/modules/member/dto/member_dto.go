package dto

type UpdateProfileRequest struct {
	Name   string `json:"name" binding:"required,max=100"`
	Email  string `json:"email" binding:"required,email"`
	Avatar string `json:"avatar"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}
