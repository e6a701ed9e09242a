package middleware

import (
	"log/slog"
	"net/http"

	"github.com/romainbeka/dashboardsteph/internal/handler/httperr"
	"github.com/romainbeka/dashboardsteph/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const (
	msgInternal         = "Internal server error"
	msgMethodNotAllowed = "Méthode non autorisée"
)

// ErrorHandler writes the recorded public error when a handler aborted
// without a body, and a generic 500 when nothing was written at all.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]
			if !err.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := err.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": msgInternal}})
	}
}

// MethodNotAllowed answers routes that exist under another method.
func MethodNotAllowed() gin.HandlerFunc {
	return func(c *gin.Context) {
		err := errs.Wrapf(errs.ErrMethodNotAllowed, "%s %s", c.Request.Method, c.Request.URL.Path)
		httperr.AbortWithError(c, http.StatusMethodNotAllowed, err, msgMethodNotAllowed, nil)
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("recovered from panic",
					"error", rec,
					"path", c.Request.URL.Path,
					"request_id", GetRequestID(c),
				)

				resp := httperr.Response{Status: http.StatusInternalServerError}
				resp.Error.Message = msgInternal

				c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
			}
		}()
		c.Next()
	}
}
