// Package respond maps application errors onto the HTTP error envelope.
// Client faults answer with {"status":"fail"} and the error's own message;
// everything else answers 500 with {"status":"error"} and a generic
// message, keeping internal details out of responses.
package respond

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"notes_backend/internal/api"
	"notes_backend/internal/shared/apperr"
)

const (
	statusFail  = "fail"
	statusError = "error"
)

// Error writes the JSON error envelope for err. The mapping is total:
// errors carrying no kind are treated as internal.
func Error(c *gin.Context, err error) {
	kind := apperr.KindOf(err)
	status := httpStatus(kind)

	if status >= http.StatusInternalServerError {
		// The cause is logged here and never surfaced to the client.
		slog.Error("request failed", "error", err, "path", c.FullPath(), "remote_addr", c.ClientIP())
		c.JSON(status, api.ErrorResponse{Status: statusError, Message: "internal server error"})
		return
	}

	c.JSON(status, api.ErrorResponse{Status: statusFail, Message: apperr.MessageOf(err)})
}

// AbortError writes the envelope for err and aborts the handler chain.
// Intended for middleware.
func AbortError(c *gin.Context, err error) {
	Error(c, err)
	c.Abort()
}

// httpStatus maps an error kind to its HTTP status code.
func httpStatus(kind apperr.Kind) int {
	switch kind {
	case apperr.KindBadRequest:
		return http.StatusBadRequest
	case apperr.KindUnauthorized:
		return http.StatusUnauthorized
	case apperr.KindConflict:
		return http.StatusConflict
	case apperr.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
