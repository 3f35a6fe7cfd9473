package user

// RegisterRequest represents the request payload for registering a user.
type RegisterRequest struct {
	Name     string `validate:"required,max=100"`
	Email    string `validate:"required,email,max=255"`
	Password string `validate:"required"`
}

// RegisterResponse represents the response payload after registering a user.
type RegisterResponse struct {
	ID int64
}

// LoginRequest represents the request payload for logging in.
type LoginRequest struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

// LoginResponse represents the response payload after a successful login.
type LoginResponse struct {
	ID int64
}
