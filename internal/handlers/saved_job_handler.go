package handlers

import (
	"net/http"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/middleware"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/models"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/services"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// SavedJobHandler is the seeker's bookmark list.
type SavedJobHandler struct {
	*BaseHandler
	savedJobService services.SavedJobService
}

func NewSavedJobHandler(base *BaseHandler, savedJobService services.SavedJobService) *SavedJobHandler {
	return &SavedJobHandler{
		BaseHandler:     base,
		savedJobService: savedJobService,
	}
}

func (h *SavedJobHandler) RegisterRoutes(r *gin.RouterGroup) {
	saved := r.Group("/saved-jobs")
	saved.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleJobSeeker))
	{
		saved.POST("", h.Save)
		saved.GET("", h.ListMine)
		saved.DELETE("/:jobID", h.Unsave)
	}
}

func (h *SavedJobHandler) Save(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SaveJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.savedJobService.Save(h.GetDB(c), userID, req.JobID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *SavedJobHandler) Unsave(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.savedJobService.Unsave(h.GetDB(c), userID, c.Param("jobID")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Job removed from saved list"})
}

func (h *SavedJobHandler) ListMine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var page dto.PaginationQuery
	if !h.BindAndValidateQuery(c, &page) {
		return
	}

	resp, err := h.savedJobService.ListMine(h.GetDB(c), userID, page)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
