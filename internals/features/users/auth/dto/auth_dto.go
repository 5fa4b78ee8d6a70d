package dto

// ============================
// Request DTO
// ============================
type SignupRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
	UserType string `json:"userType"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ============================
// Response DTO
// ============================
type SignupResponse struct {
	Message string `json:"message"`
	User    string `json:"user"`
	ID      string `json:"id"`
}

type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type ProtectedResponse struct {
	Message string `json:"message"`
	User    string `json:"user"`
}
