package handlers

import (
	"net/http"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/middleware"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/models"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/services"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// JobAlertHandler manages the seeker's saved searches and exposes an
// on-demand replay of them.
type JobAlertHandler struct {
	*BaseHandler
	alertService services.JobAlertService
}

func NewJobAlertHandler(base *BaseHandler, alertService services.JobAlertService) *JobAlertHandler {
	return &JobAlertHandler{
		BaseHandler:  base,
		alertService: alertService,
	}
}

func (h *JobAlertHandler) RegisterRoutes(r *gin.RouterGroup) {
	alerts := r.Group("/job-alerts")
	alerts.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleJobSeeker))
	{
		alerts.POST("", h.Create)
		alerts.GET("", h.ListMine)
		alerts.GET("/matches", h.Matches)
		alerts.GET("/:id", h.Get)
		alerts.PUT("/:id", h.Update)
		alerts.DELETE("/:id", h.Delete)
	}
}

func (h *JobAlertHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateJobAlertRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.alertService.Create(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *JobAlertHandler) ListMine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.alertService.ListMine(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *JobAlertHandler) Get(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.alertService.Get(h.GetDB(c), userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *JobAlertHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateJobAlertRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.alertService.Update(h.GetDB(c), userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *JobAlertHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.alertService.Delete(h.GetDB(c), userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Job alert deleted successfully"})
}

// Matches replays the caller's active alerts against the live board.
func (h *JobAlertHandler) Matches(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.alertService.CurrentMatches(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
