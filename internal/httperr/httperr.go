package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type HTTPError struct {
	Message string `json:"error"`
}

func Write(c *gin.Context, status int, message string) {
	c.JSON(status, HTTPError{Message: message})
}

func BadRequest(c *gin.Context, message string) {
	Write(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Write(c, http.StatusNotFound, message)
}

func Internal(c *gin.Context, message string) {
	Write(c, http.StatusInternalServerError, message)
}

func Unauthorized(c *gin.Context, message string) {
	Write(c, http.StatusUnauthorized, message)
}

// StatusOf maps a business error kind to its HTTP status. A conflict is
// reported as 400, which is what clients of this API have always received.
func StatusOf(kind Kind) int {
	switch kind {
	case KindValidation, KindConflict:
		return http.StatusBadRequest
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// FromError writes err as a JSON error response. Anything that is not a
// BusinessError is logged and hidden behind a generic 500.
func FromError(c *gin.Context, err error) {
	var be BusinessError
	if errors.As(err, &be) {
		if be.Kind == KindInternal {
			zap.L().Error("request failed",
				zap.String("path", c.FullPath()),
				zap.String("error", be.Message),
			)
		}
		Write(c, StatusOf(be.Kind), be.Message)
		return
	}

	zap.L().Error("unexpected error",
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	Internal(c, "Internal server error")
}
