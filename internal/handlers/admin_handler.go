package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Ka-few/Beauty-parlor-app/internal/httperr"
	"github.com/Ka-few/Beauty-parlor-app/internal/httpresp"
	ucAnalytics "github.com/Ka-few/Beauty-parlor-app/internal/usecase/analytics"
	ucBooking "github.com/Ka-few/Beauty-parlor-app/internal/usecase/booking"
	ucCustomer "github.com/Ka-few/Beauty-parlor-app/internal/usecase/customer"
)

// AdminHandler serves the /admin group; AdminMiddleware guards every route.
type AdminHandler struct {
	summary  *ucAnalytics.Summary
	users    *ucCustomer.ListCustomers
	bookings *ucBooking.ListAllBookings
}

func NewAdminHandler(
	summary *ucAnalytics.Summary,
	users *ucCustomer.ListCustomers,
	bookings *ucBooking.ListAllBookings,
) *AdminHandler {
	return &AdminHandler{summary: summary, users: users, bookings: bookings}
}

func (h *AdminHandler) Summary(c *gin.Context) {
	out, err := h.summary.Execute(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, out)
}

func (h *AdminHandler) Users(c *gin.Context) {
	out, err := h.users.Execute(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, out)
}

func (h *AdminHandler) Bookings(c *gin.Context) {
	out, err := h.bookings.Execute(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, out)
}
