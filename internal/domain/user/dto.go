package user

// LoginRequest - тело POST /login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse - ответ POST /login
type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// RegisterRequest - тело POST /register
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// RoleRequest - тело PUT /users/:id/role
type RoleRequest struct {
	Role string `json:"role"`
}
