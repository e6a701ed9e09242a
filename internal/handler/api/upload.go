package api

import (
	"net/http"
	"strings"

	"github.com/romainbeka/dashboardsteph/internal/handler/httperr"
	"github.com/romainbeka/dashboardsteph/internal/pkg/errs"
	"github.com/romainbeka/dashboardsteph/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const (
	msgImageMissing  = "Image non spécifiée."
	msgImageNotFound = "Fichier introuvable."
)

type UploadHandler struct {
	q queries.ImageQueries
}

func NewUploadHandler(q queries.ImageQueries) *UploadHandler {
	return &UploadHandler{q: q}
}

// @Summary Serve uploaded image
// @Description Stream a stored image from the uploads directory
// @Tags uploads
// @Produce octet-stream
// @Param image path string true "Image path relative to the uploads root"
// @Success 200 {file} binary
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /uploads/{image} [get]
func (h *UploadHandler) Serve(c *gin.Context) {
	rel := strings.TrimPrefix(c.Param("image"), "/")
	if rel == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.ErrInvalidRequest, msgImageMissing, nil)
		return
	}

	img, err := h.q.Open(rel)
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, msgImageNotFound, nil)
		default:
			httperr.Abort(c, err, "Failed to read image")
		}
		return
	}

	c.Header("Content-Type", img.ContentType)
	c.File(img.Path)
}
