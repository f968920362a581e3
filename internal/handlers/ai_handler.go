package handlers

import (
	"net/http"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/middleware"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/services"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// AIHandler fronts the career advisor chat.
type AIHandler struct {
	*BaseHandler
	advisorService services.AdvisorService
}

func NewAIHandler(base *BaseHandler, advisorService services.AdvisorService) *AIHandler {
	return &AIHandler{
		BaseHandler:    base,
		advisorService: advisorService,
	}
}

func (h *AIHandler) RegisterRoutes(r *gin.RouterGroup) {
	ai := r.Group("/ai")
	ai.Use(middleware.AuthMiddleware())
	{
		ai.POST("/career-advice", h.CareerAdvice)
	}
}

func (h *AIHandler) CareerAdvice(c *gin.Context) {
	if _, ok := h.GetAndAuthorizeUserID(c); !ok {
		return
	}

	var req dto.CareerAdviceRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.advisorService.CareerAdvice(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
