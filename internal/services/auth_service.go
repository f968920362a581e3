package services

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/auth"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/config"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/email"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/logger"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/models"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/repositories"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/services/dto"
	"github.com/AJEETSINGHPATEL/jobportal-backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Refresh(db *gorm.DB, req *dto.RefreshTokenRequest) (*dto.AuthResponse, error)
	Logout(db *gorm.DB, req *dto.LogoutRequest) error
	VerifyEmail(db *gorm.DB, req *dto.VerifyEmailRequest) error
	Me(db *gorm.DB, userID string) (*dto.UserResponse, error)
}

type authService struct {
	userRepo         repositories.UserRepository
	profileRepo      repositories.ProfileRepository
	refreshTokenRepo repositories.RefreshTokenRepository
	email            email.Provider
}

func NewAuthService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	refreshTokenRepo repositories.RefreshTokenRepository,
	emailProvider email.Provider,
) AuthService {
	return &authService{
		userRepo:         userRepo,
		profileRepo:      profileRepo,
		refreshTokenRepo: refreshTokenRepo,
		email:            emailProvider,
	}
}

// Register creates the account together with an empty profile for its
// role, inside one transaction. Admin accounts are seeded at boot and
// cannot be registered here; the DTO validation already restricts the
// role, this is the backstop.
func (s *authService) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if req.Role != models.UserRoleJobSeeker && req.Role != models.UserRoleEmployer {
		return nil, apperrors.ErrInvalidUserRole
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:             req.Email,
		PasswordHash:      hash,
		FullName:          req.FullName,
		Mobile:            req.Mobile,
		Role:              req.Role,
		IsActive:          true,
		VerificationToken: randomToken(16),
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.Create(tx, user); err != nil {
			return err
		}
		switch user.Role {
		case models.UserRoleJobSeeker:
			return s.profileRepo.CreateJobSeekerProfile(tx, &models.JobSeekerProfile{
				UserID:   user.ID,
				IsPublic: true,
			})
		case models.UserRoleEmployer:
			return s.profileRepo.CreateRecruiterProfile(tx, &models.RecruiterProfile{
				UserID: user.ID,
			})
		}
		return nil
	})
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	go s.sendWelcomeEmail(user)

	return s.issueTokens(db, user)
}

func (s *authService) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, apperrors.ErrUserDeactivated
	}

	if err := s.userRepo.TouchLastLogin(db, user.ID); err != nil {
		logger.WithError(err).Warn("Failed to record login time", "user_id", user.ID)
	}

	return s.issueTokens(db, user)
}

// Refresh rotates the refresh token: the presented token is revoked
// and a fresh pair is issued. A stolen token therefore works at most
// once.
func (s *authService) Refresh(db *gorm.DB, req *dto.RefreshTokenRequest) (*dto.AuthResponse, error) {
	stored, err := s.refreshTokenRepo.FindByToken(db, req.RefreshToken)
	if err != nil {
		if apperrors.Is(err, repositories.ErrRefreshTokenNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.InternalError(err)
	}

	user, err := s.userRepo.FindByID(db, stored.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}
	if !user.IsActive {
		return nil, apperrors.ErrUserDeactivated
	}

	if err := s.refreshTokenRepo.Revoke(db, stored.Token); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.issueTokens(db, user)
}

func (s *authService) Logout(db *gorm.DB, req *dto.LogoutRequest) error {
	if err := s.refreshTokenRepo.Revoke(db, req.RefreshToken); err != nil {
		if apperrors.Is(err, repositories.ErrRefreshTokenNotFound) {
			// Already revoked or never existed; logout still succeeds.
			return nil
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *authService) VerifyEmail(db *gorm.DB, req *dto.VerifyEmailRequest) error {
	user, err := s.userRepo.FindByVerificationToken(db, req.Token)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrInvalidToken
		}
		return apperrors.InternalError(err)
	}
	if err := s.userRepo.MarkVerified(db, user.ID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *authService) Me(db *gorm.DB, userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByIDWithProfiles(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	resp := dto.NewUserResponse(user)
	if user.JobSeekerProfile != nil {
		seeker := dto.NewJobSeekerProfileResponse(user.JobSeekerProfile)
		resp.Seeker = &seeker
	}
	if user.RecruiterProfile != nil {
		recruiter := dto.NewRecruiterProfileResponse(user.RecruiterProfile)
		resp.Recruiter = &recruiter
	}
	return &resp, nil
}

// issueTokens builds the access token and persists a fresh opaque
// refresh token.
func (s *authService) issueTokens(db *gorm.DB, user *models.User) (*dto.AuthResponse, error) {
	cfg := config.GetConfig()

	accessToken, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refreshToken := &models.RefreshToken{
		UserID:    user.ID,
		Token:     randomToken(32),
		ExpiresAt: time.Now().AddDate(0, 0, cfg.JWT.RefreshTTLDays),
	}
	if err := s.refreshTokenRepo.Create(db, refreshToken); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken.Token,
		ExpiresAt:    time.Now().Add(time.Duration(cfg.JWT.AccessTTLMinutes) * time.Minute),
		User:         dto.NewUserResponse(user),
	}, nil
}

func (s *authService) sendWelcomeEmail(user *models.User) {
	err := s.email.SendTemplate(
		[]string{user.Email},
		"Welcome to the job portal",
		email.TemplateWelcome,
		email.TemplateData{
			"Name":              user.FullName,
			"Role":              string(user.Role),
			"VerificationToken": user.VerificationToken,
		},
	)
	if err != nil {
		logger.WithError(err).Warn("Failed to send welcome email", "user_id", user.ID)
	}
}

// randomToken returns n random bytes hex-encoded.
func randomToken(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms.
		panic(err)
	}
	return hex.EncodeToString(buf)
}
