package dto

// RegisterRequest - форма /register
type RegisterRequest struct {
	Username     string `form:"username"`
	Password     string `form:"password"`
	Confirmation string `form:"confirmation"`
}

// LoginRequest - форма /login
type LoginRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
}
