package handlers

import (
	"net/http"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/middleware"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/models"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/services"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// CompanyHandler serves the public company directory and the owner's
// management surface, including the verification request.
type CompanyHandler struct {
	*BaseHandler
	companyService services.CompanyService
}

func NewCompanyHandler(base *BaseHandler, companyService services.CompanyService) *CompanyHandler {
	return &CompanyHandler{
		BaseHandler:    base,
		companyService: companyService,
	}
}

func (h *CompanyHandler) RegisterRoutes(r *gin.RouterGroup) {
	public := r.Group("/companies")
	{
		public.GET("", h.List)
		public.GET("/:id", h.Get)
	}

	authed := r.Group("/companies")
	authed.Use(middleware.AuthMiddleware())
	{
		authed.POST("", middleware.RequireRoles(models.UserRoleEmployer), h.Create)
		authed.PUT("/:id", middleware.RequireRoles(models.UserRoleEmployer, models.UserRoleAdmin), h.Update)
		authed.DELETE("/:id", middleware.RequireRoles(models.UserRoleEmployer, models.UserRoleAdmin), h.Delete)
		authed.POST("/:id/verification", middleware.RequireRoles(models.UserRoleEmployer), h.RequestVerification)
	}
}

func (h *CompanyHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCompanyRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.companyService.CreateCompany(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CompanyHandler) Get(c *gin.Context) {
	resp, err := h.companyService.GetCompany(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CompanyHandler) List(c *gin.Context) {
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

func (h *CompanyHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateCompanyRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.companyService.UpdateCompany(h.GetDB(c), userID,
		middleware.GetUserRole(c), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CompanyHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.companyService.DeleteCompany(h.GetDB(c), userID,
		middleware.GetUserRole(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Company deleted successfully"})
}

func (h *CompanyHandler) RequestVerification(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.RequestVerificationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.companyService.RequestVerification(h.GetDB(c), userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}
