package api

import (
	"net/http"

	resdto "github.com/romainbeka/dashboardsteph/internal/handler/dto/response"
	"github.com/romainbeka/dashboardsteph/internal/handler/httperr"
	"github.com/romainbeka/dashboardsteph/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReductionHandler struct {
	q queries.ReductionQueries
}

func NewReductionHandler(q queries.ReductionQueries) *ReductionHandler {
	return &ReductionHandler{q: q}
}

// @Summary List discount codes
// @Description Return every reduction with its status derived from today's date
// @Tags reduction
// @Produce json
// @Success 200 {array} queries.ReductionView
// @Failure 500 {object} httperr.Response
// @Router /api/reduction [get]
func (h *ReductionHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err, "Failed to load reductions")
		return
	}
	c.JSON(http.StatusOK, resdto.ReductionList(views))
}
