package dto

import (
	"encoding/json"
	"time"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/models"
)

// --- Company Requests ---

type CreateCompanyRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=200"`
	Description string `json:"description" validate:"omitempty,max=5000"`
	Website     string `json:"website" validate:"omitempty,url"`
	Industry    string `json:"industry" validate:"omitempty,max=200"`
	Size        string `json:"size" validate:"omitempty,max=50"`
	Location    string `json:"location" validate:"omitempty,max=200"`
	Logo        string `json:"logo" validate:"omitempty,url"`
}

type UpdateCompanyRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=2,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=5000"`
	Website     *string `json:"website,omitempty" validate:"omitempty,url"`
	Industry    *string `json:"industry,omitempty" validate:"omitempty,max=200"`
	Size        *string `json:"size,omitempty" validate:"omitempty,max=50"`
	Location    *string `json:"location,omitempty" validate:"omitempty,max=200"`
	Logo        *string `json:"logo,omitempty" validate:"omitempty,url"`
}

type CompanyListQuery struct {
	Search   string `form:"search" validate:"omitempty,max=200"`
	Industry string `form:"industry" validate:"omitempty,max=200"`
	PaginationQuery
}

// --- Verification ---

// VerificationDocument points at an uploaded proof-of-business file.
type VerificationDocument struct {
	Name string `json:"name" validate:"required,max=200"`
	URL  string `json:"url" validate:"required,url"`
}

type RequestVerificationRequest struct {
	Documents []VerificationDocument `json:"documents" validate:"required,min=1,dive"`
	Note      string                 `json:"note" validate:"omitempty,max=2000"`
}

type ResolveVerificationRequest struct {
	Approve *bool  `json:"approve" validate:"required"`
	Note    string `json:"note" validate:"omitempty,max=2000"`
}

type VerificationListQuery struct {
	Status models.VerificationStatus `form:"status" validate:"omitempty,oneof=pending approved rejected"`
	PaginationQuery
}

// --- Company Responses ---

type CompanyResponse struct {
	ID                 string                    `json:"id"`
	Name               string                    `json:"name"`
	Description        string                    `json:"description,omitempty"`
	Website            string                    `json:"website,omitempty"`
	Industry           string                    `json:"industry,omitempty"`
	Size               string                    `json:"size,omitempty"`
	Location           string                    `json:"location,omitempty"`
	Logo               string                    `json:"logo,omitempty"`
	OwnerID            string                    `json:"owner_id"`
	VerificationStatus models.VerificationStatus `json:"verification_status"`
	RatingAvg          float64                   `json:"rating_avg"`
	RatingCount        int                       `json:"rating_count"`
	CreatedAt          time.Time                 `json:"created_at"`
}

func NewCompanyResponse(c *models.Company) CompanyResponse {
	return CompanyResponse{
		ID:                 c.ID,
		Name:               c.Name,
		Description:        c.Description,
		Website:            c.Website,
		Industry:           c.Industry,
		Size:               c.Size,
		Location:           c.Location,
		Logo:               c.Logo,
		OwnerID:            c.OwnerID,
		VerificationStatus: c.VerificationStatus,
		RatingAvg:          c.RatingAvg,
		RatingCount:        c.RatingCount,
		CreatedAt:          c.CreatedAt,
	}
}

type CompanyListResponse struct {
	Companies  []CompanyResponse `json:"companies"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
}

type VerificationResponse struct {
	ID          string                    `json:"id"`
	CompanyID   string                    `json:"company_id"`
	RequestedBy string                    `json:"requested_by"`
	Documents   []VerificationDocument    `json:"documents,omitempty"`
	Status      models.VerificationStatus `json:"status"`
	Note        string                    `json:"note,omitempty"`
	VerifiedBy  *string                   `json:"verified_by,omitempty"`
	VerifiedAt  *time.Time                `json:"verified_at,omitempty"`
	CreatedAt   time.Time                 `json:"created_at"`
}

// NewVerificationResponse maps a verification request, decoding the
// stored document list.
func NewVerificationResponse(v *models.CompanyVerification) VerificationResponse {
	resp := VerificationResponse{
		ID:          v.ID,
		CompanyID:   v.CompanyID,
		RequestedBy: v.RequestedBy,
		Status:      v.Status,
		Note:        v.Note,
		VerifiedBy:  v.VerifiedBy,
		VerifiedAt:  v.VerifiedAt,
		CreatedAt:   v.CreatedAt,
	}
	if len(v.Documents) > 0 {
		_ = json.Unmarshal(v.Documents, &resp.Documents)
	}
	return resp
}

type VerificationListResponse struct {
	Verifications []VerificationResponse `json:"verifications"`
	Total         int64                  `json:"total"`
	Page          int                    `json:"page"`
	PageSize      int                    `json:"page_size"`
	TotalPages    int                    `json:"total_pages"`
}
