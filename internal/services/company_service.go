package services

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/email"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/logger"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/models"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/repositories"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/services/dto"
	"github.com/AJEETSINGHPATEL/jobportal-backend/pkg/apperrors"

	"gorm.io/gorm"
)

type CompanyService interface {
	CreateCompany(db *gorm.DB, ownerID string, req *dto.CreateCompanyRequest) (*dto.CompanyResponse, error)
	GetCompany(db *gorm.DB, companyID string) (*dto.CompanyResponse, error)
	ListCompanies(db *gorm.DB, query dto.CompanyListQuery) (*dto.CompanyListResponse, error)
	UpdateCompany(db *gorm.DB, requesterID string, requesterRole models.UserRole, companyID string, req *dto.UpdateCompanyRequest) (*dto.CompanyResponse, error)
	DeleteCompany(db *gorm.DB, requesterID string, requesterRole models.UserRole, companyID string) error

	// Verification flow: the owner files documents, an admin decides.
	RequestVerification(db *gorm.DB, requesterID string, companyID string, req *dto.RequestVerificationRequest) (*dto.VerificationResponse, error)
	ResolveVerification(db *gorm.DB, adminID string, verificationID string, req *dto.ResolveVerificationRequest) (*dto.VerificationResponse, error)
	ListVerifications(db *gorm.DB, query dto.VerificationListQuery) (*dto.VerificationListResponse, error)
}

type companyService struct {
	companyRepo   repositories.CompanyRepository
	userRepo      repositories.UserRepository
	notifications NotificationService
	email         email.Provider
}

func NewCompanyService(
	companyRepo repositories.CompanyRepository,
	userRepo repositories.UserRepository,
	notifications NotificationService,
	emailProvider email.Provider,
) CompanyService {
	return &companyService{
		companyRepo:   companyRepo,
		userRepo:      userRepo,
		notifications: notifications,
		email:         emailProvider,
	}
}

func (s *companyService) CreateCompany(db *gorm.DB, ownerID string, req *dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	company := &models.Company{
		Name:               strings.TrimSpace(req.Name),
		Description:        req.Description,
		Website:            req.Website,
		Industry:           req.Industry,
		Size:               req.Size,
		Location:           req.Location,
		Logo:               req.Logo,
		OwnerID:            ownerID,
		VerificationStatus: models.VerificationStatusPending,
	}

	if err := s.companyRepo.Create(db, company); err != nil {
		if apperrors.Is(err, repositories.ErrCompanyAlreadyExists) {
			return nil, apperrors.ErrAlreadyExists(err, "company", "A company with this name already exists")
		}
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewCompanyResponse(company)
	return &resp, nil
}

func (s *companyService) GetCompany(db *gorm.DB, companyID string) (*dto.CompanyResponse, error) {
	company, err := s.companyRepo.FindByID(db, companyID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewCompanyResponse(company)
	return &resp, nil
}

func (s *companyService) ListCompanies(db *gorm.DB, query dto.CompanyListQuery) (*dto.CompanyListResponse, error) {
	query.Normalize()

	companies, total, err := s.companyRepo.List(db, query.Search, query.Industry, query.Page, query.PageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]dto.CompanyResponse, 0, len(companies))
	for i := range companies {
		items = append(items, dto.NewCompanyResponse(&companies[i]))
	}
	return &dto.CompanyListResponse{
		Companies:  items,
		Total:      total,
		Page:       query.Page,
		PageSize:   query.PageSize,
		TotalPages: dto.TotalPages(total, query.PageSize),
	}, nil
}

func (s *companyService) UpdateCompany(db *gorm.DB, requesterID string, requesterRole models.UserRole, companyID string, req *dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := s.ownedCompany(db, requesterID, requesterRole, companyID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if !strings.EqualFold(name, company.Name) {
			if _, err := s.companyRepo.FindByName(db, name); err == nil {
				return nil, apperrors.ErrAlreadyExists(repositories.ErrCompanyAlreadyExists,
					"company", "A company with this name already exists")
			} else if !apperrors.Is(err, repositories.ErrCompanyNotFound) {
				return nil, apperrors.InternalError(err)
			}
		}
		company.Name = name
	}
	if req.Description != nil {
		company.Description = *req.Description
	}
	if req.Website != nil {
		company.Website = *req.Website
	}
	if req.Industry != nil {
		company.Industry = *req.Industry
	}
	if req.Size != nil {
		company.Size = *req.Size
	}
	if req.Location != nil {
		company.Location = *req.Location
	}
	if req.Logo != nil {
		company.Logo = *req.Logo
	}

	if err := s.companyRepo.Update(db, company); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewCompanyResponse(company)
	return &resp, nil
}

func (s *companyService) DeleteCompany(db *gorm.DB, requesterID string, requesterRole models.UserRole, companyID string) error {
	company, err := s.ownedCompany(db, requesterID, requesterRole, companyID)
	if err != nil {
		return err
	}
	if err := s.companyRepo.Delete(db, company.ID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// RequestVerification files proof-of-business documents. One pending
// request per company at a time.
func (s *companyService) RequestVerification(db *gorm.DB, requesterID string, companyID string, req *dto.RequestVerificationRequest) (*dto.VerificationResponse, error) {
	company, err := s.companyRepo.FindByID(db, companyID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if company.OwnerID != requesterID {
		return nil, apperrors.ErrInsufficientPermissions
	}
	if company.VerificationStatus == models.VerificationStatusApproved {
		return nil, apperrors.ErrInvalidOperation("verification", "This company is already verified")
	}

	documents, err := json.Marshal(req.Documents)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	verification := &models.CompanyVerification{
		CompanyID:   company.ID,
		RequestedBy: requesterID,
		Documents:   documents,
		Status:      models.VerificationStatusPending,
		Note:        req.Note,
	}
	if err := s.companyRepo.CreateVerification(db, verification); err != nil {
		if apperrors.Is(err, repositories.ErrVerificationPending) {
			return nil, apperrors.ErrConflict(err, "verification", "A verification request is already pending for this company")
		}
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewVerificationResponse(verification)
	return &resp, nil
}

// ResolveVerification records the admin decision and propagates it to
// the company row. The requester is notified and emailed.
func (s *companyService) ResolveVerification(db *gorm.DB, adminID string, verificationID string, req *dto.ResolveVerificationRequest) (*dto.VerificationResponse, error) {
	verification, err := s.companyRepo.FindVerificationByID(db, verificationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrVerificationNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if verification.Status != models.VerificationStatusPending {
		return nil, apperrors.ErrInvalidOperation("verification", "This verification request has already been resolved")
	}

	company, err := s.companyRepo.FindByID(db, verification.CompanyID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	status := models.VerificationStatusRejected
	if req.Approve != nil && *req.Approve {
		status = models.VerificationStatusApproved
	}

	now := time.Now()
	verification.Status = status
	verification.Note = req.Note
	verification.VerifiedBy = &adminID
	verification.VerifiedAt = &now

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.companyRepo.UpdateVerification(tx, verification); err != nil {
			return err
		}
		return s.companyRepo.SetVerificationStatus(tx, company.ID, status)
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	outcome := "rejected"
	if status == models.VerificationStatusApproved {
		outcome = "approved"
	}
	notifyQuietly(s.notifications, db, verification.RequestedBy, models.NotificationTypeCompanyVerification,
		"Company verification "+outcome,
		fmt.Sprintf("Verification for %s was %s", company.Name, outcome),
		map[string]interface{}{"company_id": company.ID, "status": string(status)})

	if requester, err := s.userRepo.FindByID(db, verification.RequestedBy); err == nil {
		go s.sendVerificationEmail(requester, company, status, req.Note)
	}

	resp := dto.NewVerificationResponse(verification)
	return &resp, nil
}

func (s *companyService) ListVerifications(db *gorm.DB, query dto.VerificationListQuery) (*dto.VerificationListResponse, error) {
	query.Normalize()

	verifications, total, err := s.companyRepo.ListVerifications(db, query.Status, query.Page, query.PageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]dto.VerificationResponse, 0, len(verifications))
	for i := range verifications {
		items = append(items, dto.NewVerificationResponse(&verifications[i]))
	}
	return &dto.VerificationListResponse{
		Verifications: items,
		Total:         total,
		Page:          query.Page,
		PageSize:      query.PageSize,
		TotalPages:    dto.TotalPages(total, query.PageSize),
	}, nil
}

func (s *companyService) ownedCompany(db *gorm.DB, requesterID string, requesterRole models.UserRole, companyID string) (*models.Company, error) {
	company, err := s.companyRepo.FindByID(db, companyID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if company.OwnerID != requesterID && requesterRole != models.UserRoleAdmin {
		return nil, apperrors.ErrInsufficientPermissions
	}
	return company, nil
}

func (s *companyService) sendVerificationEmail(requester *models.User, company *models.Company, status models.VerificationStatus, note string) {
	err := s.email.SendTemplate(
		[]string{requester.Email},
		fmt.Sprintf("Verification decision for %s", company.Name),
		email.TemplateVerificationResult,
		email.TemplateData{
			"Name":        requester.FullName,
			"CompanyName": company.Name,
			"Approved":    status == models.VerificationStatusApproved,
			"Note":        note,
		},
	)
	if err != nil {
		logger.WithError(err).Warn("Failed to send verification result email", "company_id", company.ID)
	}
}
