package dto

import (
	"time"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/models"
)

// --- User Requests ---

type UpdateUserRequest struct {
	FullName *string `json:"full_name,omitempty" validate:"omitempty,min=2,max=100"`
	Mobile   *string `json:"mobile,omitempty" validate:"omitempty,mobile"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,strong_password"`
}

// --- User Responses ---

// UserResponse is the canonical user view returned by /auth/me and the
// admin user endpoints. Profile payloads are attached only where the
// endpoint loads them.
type UserResponse struct {
	ID          string                   `json:"id"`
	Email       string                   `json:"email"`
	FullName    string                   `json:"full_name"`
	Mobile      string                   `json:"mobile,omitempty"`
	Role        models.UserRole          `json:"role"`
	IsActive    bool                     `json:"is_active"`
	IsVerified  bool                     `json:"is_verified"`
	LastLoginAt *time.Time               `json:"last_login_at,omitempty"`
	CreatedAt   time.Time                `json:"created_at"`
	Seeker      *JobSeekerProfileResponse `json:"job_seeker_profile,omitempty"`
	Recruiter   *RecruiterProfileResponse `json:"recruiter_profile,omitempty"`
}

// NewUserResponse maps the persisted user onto the API shape.
func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		FullName:    u.FullName,
		Mobile:      u.Mobile,
		Role:        u.Role,
		IsActive:    u.IsActive,
		IsVerified:  u.IsVerified,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
	}
}

// --- Admin DTOs ---

// AdminUserFilter narrows the admin user listing.
type AdminUserFilter struct {
	Role     models.UserRole `form:"role" validate:"omitempty,is-user-role"`
	IsActive *bool           `form:"is_active"`
	Search   string          `form:"search" validate:"omitempty,max=100"`
	PaginationQuery
}

type SetUserStatusRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

type SetJobStatusRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

type UserListResponse struct {
	Users      []UserResponse `json:"users"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalPages int            `json:"total_pages"`
}

// PlatformStatsResponse is the admin dashboard aggregate.
type PlatformStatsResponse struct {
	TotalUsers           int64            `json:"total_users"`
	JobSeekers           int64            `json:"job_seekers"`
	Employers            int64            `json:"employers"`
	ActiveUsers          int64            `json:"active_users"`
	TotalJobs            int64            `json:"total_jobs"`
	ActiveJobs           int64            `json:"active_jobs"`
	TotalApplications    int64            `json:"total_applications"`
	ApplicationsByStatus map[string]int64 `json:"applications_by_status"`
	TotalCompanies       int64            `json:"total_companies"`
	PendingVerifications int64            `json:"pending_verifications"`
}
