package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Ka-few/Beauty-parlor-app/internal/httperr"
	"github.com/Ka-few/Beauty-parlor-app/internal/middleware"
)

const msgInvalidRequest = "Invalid request"

// pathID reads a numeric route parameter. Anything else is answered like a
// missing row.
func pathID(c *gin.Context, name, notFoundMsg string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		httperr.NotFound(c, notFoundMsg)
		return 0, false
	}
	return uint(id), true
}

func currentCustomer(c *gin.Context) (uint, bool) {
	id, ok := middleware.CustomerID(c)
	if !ok {
		httperr.Unauthorized(c, "Invalid or expired token")
		return 0, false
	}
	return id, true
}

func bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httperr.BadRequest(c, msgInvalidRequest)
		return false
	}
	return true
}
