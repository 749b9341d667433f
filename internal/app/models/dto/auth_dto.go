package dto

// RegisterRequest represents a user registration request
type RegisterRequest struct {
	IDNo     string  `json:"idno" binding:"required"`
	FullName string  `json:"fullname" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required"`
	Role     string  `json:"role" binding:"required"`
	Course   *string `json:"course,omitempty"`
	Year     *string `json:"year,omitempty"`
}

// RegisterResponse echoes the created profile, never the credential.
type RegisterResponse struct {
	Message  string `json:"message" example:"Registration successful"`
	FullName string `json:"fullname"`
	Role     string `json:"role"`
	IDNo     string `json:"idno"`
	Email    string `json:"email"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the client-side identity state. No session
// token is issued; the caller keeps its own identity state.
type LoginResponse struct {
	Message  string `json:"message" example:"Login successful"`
	Role     string `json:"role"`
	FullName string `json:"fullname"`
	IDNo     string `json:"idno"`
}

// UserCountResponse is the scalar user count payload.
type UserCountResponse struct {
	Count int64 `json:"count" example:"42"`
}
