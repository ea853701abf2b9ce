package dto

type RegisterRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type RoleUpdateRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}
