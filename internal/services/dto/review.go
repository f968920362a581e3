package dto

import (
	"time"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/models"
)

// --- Review Requests ---

type CreateReviewRequest struct {
	CompanyID          string `json:"company_id" validate:"required,uuid4"`
	RatingOverall      int    `json:"rating_overall" validate:"required,min=1,max=5"`
	RatingWorkLife     int    `json:"rating_work_life" validate:"omitempty,min=1,max=5"`
	RatingCompensation int    `json:"rating_compensation" validate:"omitempty,min=1,max=5"`
	RatingCulture      int    `json:"rating_culture" validate:"omitempty,min=1,max=5"`
	Title              string `json:"title" validate:"omitempty,max=200"`
	Pros               string `json:"pros" validate:"omitempty,max=3000"`
	Cons               string `json:"cons" validate:"omitempty,max=3000"`
	IsAnonymous        bool   `json:"is_anonymous"`
}

type UpdateReviewRequest struct {
	RatingOverall      *int    `json:"rating_overall,omitempty" validate:"omitempty,min=1,max=5"`
	RatingWorkLife     *int    `json:"rating_work_life,omitempty" validate:"omitempty,min=1,max=5"`
	RatingCompensation *int    `json:"rating_compensation,omitempty" validate:"omitempty,min=1,max=5"`
	RatingCulture      *int    `json:"rating_culture,omitempty" validate:"omitempty,min=1,max=5"`
	Title              *string `json:"title,omitempty" validate:"omitempty,max=200"`
	Pros               *string `json:"pros,omitempty" validate:"omitempty,max=3000"`
	Cons               *string `json:"cons,omitempty" validate:"omitempty,max=3000"`
	IsAnonymous        *bool   `json:"is_anonymous,omitempty"`
}

// --- Review Responses ---

type ReviewResponse struct {
	ID                 string    `json:"id"`
	CompanyID          string    `json:"company_id"`
	RatingOverall      int       `json:"rating_overall"`
	RatingWorkLife     int       `json:"rating_work_life,omitempty"`
	RatingCompensation int       `json:"rating_compensation,omitempty"`
	RatingCulture      int       `json:"rating_culture,omitempty"`
	Title              string    `json:"title,omitempty"`
	Pros               string    `json:"pros,omitempty"`
	Cons               string    `json:"cons,omitempty"`
	IsAnonymous        bool      `json:"is_anonymous"`

	// AuthorName is empty for anonymous reviews.
	AuthorName string    `json:"author_name,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewReviewResponse maps the persisted review, hiding the author of
// anonymous reviews.
func NewReviewResponse(r *models.Review) ReviewResponse {
	resp := ReviewResponse{
		ID:                 r.ID,
		CompanyID:          r.CompanyID,
		RatingOverall:      r.RatingOverall,
		RatingWorkLife:     r.RatingWorkLife,
		RatingCompensation: r.RatingCompensation,
		RatingCulture:      r.RatingCulture,
		Title:              r.Title,
		Pros:               r.Pros,
		Cons:               r.Cons,
		IsAnonymous:        r.IsAnonymous,
		CreatedAt:          r.CreatedAt,
	}
	if !r.IsAnonymous && r.User != nil {
		resp.AuthorName = r.User.FullName
	}
	return resp
}

type ReviewListResponse struct {
	Reviews    []ReviewResponse `json:"reviews"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalPages int              `json:"total_pages"`
	RatingAvg  float64          `json:"rating_avg"`
}
