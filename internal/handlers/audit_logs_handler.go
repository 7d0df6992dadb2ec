package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Ka-few/Beauty-parlor-app/internal/audit"
	"github.com/Ka-few/Beauty-parlor-app/internal/httperr"
	"github.com/Ka-few/Beauty-parlor-app/internal/httpresp"
	ucAuditLog "github.com/Ka-few/Beauty-parlor-app/internal/usecase/auditlog"
)

type AuditLogsHandler struct {
	list *ucAuditLog.List
}

func NewAuditLogsHandler(list *ucAuditLog.List) *AuditLogsHandler {
	return &AuditLogsHandler{list: list}
}

// List supports ?action=&entity=&from=YYYY-MM-DD&to=YYYY-MM-DD&page=&limit=.
// Unparseable dates are ignored.
func (h *AuditLogsHandler) List(c *gin.Context) {
	f := audit.Filter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
	}
	f.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	f.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))

	if from, err := time.Parse("2006-01-02", c.Query("from")); err == nil {
		f.From = &from
	}
	if to, err := time.Parse("2006-01-02", c.Query("to")); err == nil {
		end := to.Add(24 * time.Hour)
		f.To = &end
	}

	out, err := h.list.Execute(c.Request.Context(), f)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, out)
}
