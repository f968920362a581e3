package services

import (
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/models"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/repositories"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/services/dto"
	"github.com/AJEETSINGHPATEL/jobportal-backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ReviewService interface {
	CreateReview(db *gorm.DB, userID string, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error)
	GetReview(db *gorm.DB, reviewID string) (*dto.ReviewResponse, error)
	ListByCompany(db *gorm.DB, companyID string, query dto.PaginationQuery) (*dto.ReviewListResponse, error)
	UpdateReview(db *gorm.DB, userID, reviewID string, req *dto.UpdateReviewRequest) (*dto.ReviewResponse, error)
	DeleteReview(db *gorm.DB, requesterID string, requesterRole models.UserRole, reviewID string) error
}

type reviewService struct {
	reviewRepo  repositories.ReviewRepository
	companyRepo repositories.CompanyRepository
}

func NewReviewService(reviewRepo repositories.ReviewRepository, companyRepo repositories.CompanyRepository) ReviewService {
	return &reviewService{reviewRepo: reviewRepo, companyRepo: companyRepo}
}

// CreateReview records one review per user per company and folds it
// into the company's rating aggregate in the same transaction.
func (s *reviewService) CreateReview(db *gorm.DB, userID string, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	company, err := s.companyRepo.FindByID(db, req.CompanyID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if company.OwnerID == userID {
		return nil, apperrors.ErrInvalidOperation("review", "You cannot review your own company")
	}

	review := &models.Review{
		CompanyID:          company.ID,
		UserID:             userID,
		RatingOverall:      req.RatingOverall,
		RatingWorkLife:     req.RatingWorkLife,
		RatingCompensation: req.RatingCompensation,
		RatingCulture:      req.RatingCulture,
		Title:              req.Title,
		Pros:               req.Pros,
		Cons:               req.Cons,
		IsAnonymous:        req.IsAnonymous,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.reviewRepo.Create(tx, review); err != nil {
			return err
		}
		return s.recomputeAggregate(tx, company.ID)
	})
	if err != nil {
		if apperrors.Is(err, repositories.ErrReviewAlreadyExists) {
			return nil, apperrors.ErrAlreadyReviewed
		}
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewReviewResponse(review)
	return &resp, nil
}

func (s *reviewService) GetReview(db *gorm.DB, reviewID string) (*dto.ReviewResponse, error) {
	review, err := s.reviewRepo.FindByID(db, reviewID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrReviewNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	resp := dto.NewReviewResponse(review)
	return &resp, nil
}

func (s *reviewService) ListByCompany(db *gorm.DB, companyID string, query dto.PaginationQuery) (*dto.ReviewListResponse, error) {
	company, err := s.companyRepo.FindByID(db, companyID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCompanyNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	query.Normalize()
	reviews, total, err := s.reviewRepo.ListByCompany(db, companyID, query.Page, query.PageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		items = append(items, dto.NewReviewResponse(&reviews[i]))
	}
	return &dto.ReviewListResponse{
		Reviews:    items,
		Total:      total,
		Page:       query.Page,
		PageSize:   query.PageSize,
		TotalPages: dto.TotalPages(total, query.PageSize),
		RatingAvg:  company.RatingAvg,
	}, nil
}

func (s *reviewService) UpdateReview(db *gorm.DB, userID, reviewID string, req *dto.UpdateReviewRequest) (*dto.ReviewResponse, error) {
	review, err := s.ownedReview(db, userID, reviewID)
	if err != nil {
		return nil, err
	}

	if req.RatingOverall != nil {
		review.RatingOverall = *req.RatingOverall
	}
	if req.RatingWorkLife != nil {
		review.RatingWorkLife = *req.RatingWorkLife
	}
	if req.RatingCompensation != nil {
		review.RatingCompensation = *req.RatingCompensation
	}
	if req.RatingCulture != nil {
		review.RatingCulture = *req.RatingCulture
	}
	if req.Title != nil {
		review.Title = *req.Title
	}
	if req.Pros != nil {
		review.Pros = *req.Pros
	}
	if req.Cons != nil {
		review.Cons = *req.Cons
	}
	if req.IsAnonymous != nil {
		review.IsAnonymous = *req.IsAnonymous
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.reviewRepo.Update(tx, review); err != nil {
			return err
		}
		return s.recomputeAggregate(tx, review.CompanyID)
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewReviewResponse(review)
	return &resp, nil
}

func (s *reviewService) DeleteReview(db *gorm.DB, requesterID string, requesterRole models.UserRole, reviewID string) error {
	review, err := s.reviewRepo.FindByID(db, reviewID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrReviewNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	if review.UserID != requesterID && requesterRole != models.UserRoleAdmin {
		return apperrors.ErrInsufficientPermissions
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.reviewRepo.Delete(tx, review.ID); err != nil {
			return err
		}
		return s.recomputeAggregate(tx, review.CompanyID)
	})
	if err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *reviewService) ownedReview(db *gorm.DB, userID, reviewID string) (*models.Review, error) {
	review, err := s.reviewRepo.FindByID(db, reviewID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrReviewNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if review.UserID != userID {
		return nil, apperrors.ErrInsufficientPermissions
	}
	return review, nil
}

func (s *reviewService) recomputeAggregate(db *gorm.DB, companyID string) error {
	return recomputeCompanyRating(db, s.reviewRepo, s.companyRepo, companyID)
}

// recomputeCompanyRating refreshes a company's rating aggregate from
// its current reviews. Shared with the admin cascade-delete path.
func recomputeCompanyRating(db *gorm.DB, reviewRepo repositories.ReviewRepository, companyRepo repositories.CompanyRepository, companyID string) error {
	agg, err := reviewRepo.AggregateForCompany(db, companyID)
	if err != nil {
		return err
	}
	return companyRepo.UpdateRatingAggregate(db, companyID, agg.Average, int(agg.Count))
}
