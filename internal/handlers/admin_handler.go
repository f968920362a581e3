package handlers

import (
	"net/http"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/middleware"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/models"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/services"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// AdminHandler groups the moderation surface: user and job management,
// company verification decisions and the platform dashboard.
type AdminHandler struct {
	*BaseHandler
	adminService   services.AdminService
	companyService services.CompanyService
}

func NewAdminHandler(base *BaseHandler, adminService services.AdminService, companyService services.CompanyService) *AdminHandler {
	return &AdminHandler{
		BaseHandler:    base,
		adminService:   adminService,
		companyService: companyService,
	}
}

func (h *AdminHandler) RegisterRoutes(r *gin.RouterGroup) {
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleAdmin))
	{
		admin.GET("/users", h.ListUsers)
		admin.GET("/users/:id", h.GetUser)
		admin.PUT("/users/:id/status", h.SetUserStatus)
		admin.DELETE("/users/:id", h.DeleteUser)

		admin.GET("/jobs", h.ListJobs)
		admin.PUT("/jobs/:id/status", h.SetJobStatus)

		admin.GET("/companies", h.ListCompanies)
		admin.GET("/verifications", h.ListVerifications)
		admin.PUT("/verifications/:id", h.ResolveVerification)

		admin.GET("/stats", h.PlatformStats)
	}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	var query dto.AdminUserFilter
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	resp, err := h.adminService.ListUsers(h.GetDB(c), query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) GetUser(c *gin.Context) {
	resp, err := h.adminService.GetUser(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) SetUserStatus(c *gin.Context) {
	adminID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SetUserStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.adminService.SetUserStatus(h.GetDB(c), adminID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	adminID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.adminService.DeleteUser(h.GetDB(c), adminID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "User deleted successfully"})
}

// ListJobs returns every job regardless of active status, unlike the
// public search.
func (h *AdminHandler) ListJobs(c *gin.Context) {
	var query dto.JobSearchQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	resp, err := h.adminService.ListJobs(h.GetDB(c), query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) SetJobStatus(c *gin.Context) {
	var req dto.SetJobStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.adminService.SetJobStatus(h.GetDB(c), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) ListCompanies(c *gin.Context) {
	var query dto.CompanyListQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	resp, err := h.companyService.ListCompanies(h.GetDB(c), query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) ListVerifications(c *gin.Context) {
	var query dto.VerificationListQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	resp, err := h.companyService.ListVerifications(h.GetDB(c), query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) ResolveVerification(c *gin.Context) {
	adminID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ResolveVerificationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.companyService.ResolveVerification(h.GetDB(c), adminID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AdminHandler) PlatformStats(c *gin.Context) {
	resp, err := h.adminService.PlatformStats()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
