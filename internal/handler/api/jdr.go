package api

import (
	"net/http"
	"strconv"

	reqdto "github.com/romainbeka/dashboardsteph/internal/handler/dto/request"
	resdto "github.com/romainbeka/dashboardsteph/internal/handler/dto/response"
	"github.com/romainbeka/dashboardsteph/internal/handler/httperr"
	"github.com/romainbeka/dashboardsteph/internal/pkg/errs"
	"github.com/romainbeka/dashboardsteph/internal/usecase/commands"
	"github.com/romainbeka/dashboardsteph/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type JDRHandler struct {
	cmds commands.JDRCommands
	q    queries.JDRQueries
}

func NewJDRHandler(cmds commands.JDRCommands, q queries.JDRQueries) *JDRHandler {
	return &JDRHandler{cmds: cmds, q: q}
}

// @Summary List catalog entries
// @Description Return the whole JDR catalog as stored
// @Tags jdr
// @Produce json
// @Success 200 {array} jdr.JDR
// @Failure 500 {object} httperr.Response
// @Router /api/jdr [get]
func (h *JDRHandler) List(c *gin.Context) {
	records, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err, "Failed to load catalog")
		return
	}
	c.JSON(http.StatusOK, resdto.JDRList(records))
}

// @Summary Create catalog entry
// @Description Create a JDR from multipart form data, optionally with an image
// @Tags jdr
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Name"
// @Param image formData file false "Cover image"
// @Success 200 {object} resdto.CreateJDRResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/jdr [post]
func (h *JDRHandler) Create(c *gin.Context) {
	req, err := reqdto.DecodeCreateJDR(c.Request)
	if err != nil {
		if errs.IsSentinel(err, reqdto.ErrNoFormData) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, reqdto.ErrNoFormData.Error(), nil)
			return
		}
		httperr.Abort(c, err, "Invalid form data")
		return
	}

	draft, image := req.ToDomain()
	entry, err := h.cmds.Create(c.Request.Context(), draft, image)
	if err != nil {
		httperr.Abort(c, err, "Failed to create entry")
		return
	}

	c.JSON(http.StatusOK, resdto.FromCreatedJDR(entry))
}

// @Summary Delete catalog entry
// @Description Delete a JDR by id and strip its name from peers
// @Tags jdr
// @Produce json
// @Param id query int true "JDR ID"
// @Success 200 {object} resdto.DeleteJDRResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/jdr [delete]
func (h *JDRHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Query("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "JDR not found", nil)
			return
		}
		httperr.Abort(c, err, "Failed to delete entry")
		return
	}

	c.JSON(http.StatusOK, resdto.DeleteJDRResponse{Success: true})
}

// @Summary Relation audit
// @Description Report dangling and one-sided associatedProducts links
// @Tags jdr
// @Produce json
// @Success 200 {object} resdto.RelationAuditResponse
// @Failure 500 {object} httperr.Response
// @Router /api/jdr/audit [get]
func (h *JDRHandler) Audit(c *gin.Context) {
	findings, err := h.q.RelationAudit(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err, "Failed to audit relations")
		return
	}
	c.JSON(http.StatusOK, resdto.FromFindings(findings))
}
