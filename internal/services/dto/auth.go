package dto

import (
	"time"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/models"
)

// --- Auth Requests ---

// RegisterRequest creates a new account. Admin accounts are seeded at
// startup and can never be self-registered.
type RegisterRequest struct {
	Email    string          `json:"email" validate:"required,email"`
	Password string          `json:"password" validate:"required,strong_password"`
	FullName string          `json:"full_name" validate:"required,min=2,max=100"`
	Mobile   string          `json:"mobile" validate:"omitempty,mobile"`
	Role     models.UserRole `json:"role" validate:"required,oneof=job_seeker employer"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type VerifyEmailRequest struct {
	Token string `json:"token" validate:"required"`
}

// --- Auth Responses ---

// AuthResponse carries the token pair plus the authenticated user.
type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresAt    time.Time    `json:"expires_at"`
	User         UserResponse `json:"user"`
}
