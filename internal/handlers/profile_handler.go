package handlers

import (
	"net/http"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/middleware"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/models"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/services"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/services/dto"
	"github.com/AJEETSINGHPATEL/jobportal-backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// ProfileHandler serves both profile kinds plus the employer-facing
// candidate search.
type ProfileHandler struct {
	*BaseHandler
	profileService services.ProfileService
}

func NewProfileHandler(base *BaseHandler, profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    base,
		profileService: profileService,
	}
}

func (h *ProfileHandler) RegisterRoutes(r *gin.RouterGroup) {
	profiles := r.Group("/profiles")
	profiles.Use(middleware.AuthMiddleware())
	{
		seeker := profiles.Group("/job-seeker")
		{
			seeker.GET("", middleware.RequireRoles(models.UserRoleJobSeeker), h.GetSeekerProfile)
			seeker.PUT("", middleware.RequireRoles(models.UserRoleJobSeeker), h.UpdateSeekerProfile)
			seeker.POST("/photo", middleware.RequireRoles(models.UserRoleJobSeeker), h.UploadPhoto)
			seeker.GET("/:userID", middleware.RequireRoles(models.UserRoleEmployer, models.UserRoleAdmin), h.ViewSeekerProfile)
		}

		recruiter := profiles.Group("/recruiter")
		recruiter.Use(middleware.RequireRoles(models.UserRoleEmployer))
		{
			recruiter.GET("", h.GetRecruiterProfile)
			recruiter.PUT("", h.UpdateRecruiterProfile)
			recruiter.POST("/logo", h.UploadLogo)
		}
	}

	candidates := r.Group("/candidates")
	candidates.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleEmployer, models.UserRoleAdmin))
	{
		candidates.GET("", h.SearchCandidates)
	}
}

func (h *ProfileHandler) GetSeekerProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.profileService.GetSeekerProfile(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProfileHandler) UpdateSeekerProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateJobSeekerProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.profileService.UpdateSeekerProfile(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProfileHandler) ViewSeekerProfile(c *gin.Context) {
	viewerID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.profileService.ViewSeekerProfile(h.GetDB(c), viewerID, c.Param("userID"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProfileHandler) UploadPhoto(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	file, err := c.FormFile("photo")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing 'photo' form file"))
		return
	}

	resp, err := h.profileService.UploadSeekerPhoto(c.Request.Context(), h.GetDB(c), userID, file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProfileHandler) GetRecruiterProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.profileService.GetRecruiterProfile(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProfileHandler) UpdateRecruiterProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateRecruiterProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.profileService.UpdateRecruiterProfile(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProfileHandler) UploadLogo(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	file, err := c.FormFile("logo")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing 'logo' form file"))
		return
	}

	resp, err := h.profileService.UploadCompanyLogo(c.Request.Context(), h.GetDB(c), userID, file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProfileHandler) SearchCandidates(c *gin.Context) {
	var query dto.CandidateSearchQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	resp, err := h.profileService.SearchCandidates(h.GetDB(c), query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
