package handlers

import (
	"net/http"
	"path"
	"strings"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/middleware"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/models"
	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/storage"
	"github.com/AJEETSINGHPATEL/jobportal-backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// FileHandler streams stored uploads over HTTP. Object-store backends
// hand out signed URLs and bypass this route; the local backend points
// every URL it generates here.
type FileHandler struct {
	*BaseHandler
	store storage.Storage
}

func NewFileHandler(base *BaseHandler, store storage.Storage) *FileHandler {
	return &FileHandler{
		BaseHandler: base,
		store:       store,
	}
}

func (h *FileHandler) RegisterRoutes(r *gin.RouterGroup) {
	files := r.Group("/files")
	files.Use(middleware.OptionalAuth())
	{
		files.GET("/*key", h.Serve)
	}
}

// Serve streams a single stored object. Profile images are public.
// Resume files are keyed resumes/{ownerID}/... and are served only to
// their owner or an admin; everyone else gets the same 404 as a
// missing file.
func (h *FileHandler) Serve(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("key"), "/")

	if !h.canAccess(c, key) {
		apperrors.HandleError(c, errFileNotFound)
		return
	}

	ctx := c.Request.Context()
	exists, err := h.store.Exists(ctx, key)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if !exists {
		apperrors.HandleError(c, errFileNotFound)
		return
	}

	size, err := h.store.GetSize(ctx, key)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	reader, err := h.store.Get(ctx, key)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	defer reader.Close()

	c.DataFromReader(http.StatusOK, size, fileContentType(key), reader, nil)
}

var errFileNotFound = apperrors.New(
	apperrors.CodeNotFound,
	"file",
	"File not found",
	http.StatusNotFound,
)

func (h *FileHandler) canAccess(c *gin.Context, key string) bool {
	switch {
	case strings.HasPrefix(key, "avatars/"), strings.HasPrefix(key, "logos/"):
		return true
	case strings.HasPrefix(key, "resumes/"):
		parts := strings.SplitN(key, "/", 3)
		if len(parts) < 3 || parts[2] == "" {
			return false
		}
		userID := middleware.GetUserID(c)
		if userID == "" {
			return false
		}
		return parts[1] == userID || middleware.GetUserRole(c) == models.UserRoleAdmin
	default:
		return false
	}
}

func fileContentType(key string) string {
	switch strings.ToLower(path.Ext(key)) {
	case ".pdf":
		return "application/pdf"
	case ".doc":
		return "application/msword"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	default:
		return "application/octet-stream"
	}
}
