package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Ka-few/Beauty-parlor-app/internal/httperr"
	"github.com/Ka-few/Beauty-parlor-app/internal/httpresp"
	ucBooking "github.com/Ka-few/Beauty-parlor-app/internal/usecase/booking"
)

type BookingHandler struct {
	create *ucBooking.CreateBooking
	list   *ucBooking.ListBookings
}

func NewBookingHandler(create *ucBooking.CreateBooking, list *ucBooking.ListBookings) *BookingHandler {
	return &BookingHandler{create: create, list: list}
}

type CreateBookingRequest struct {
	StylistID       uint   `json:"stylist_id"`
	ServiceID       uint   `json:"service_id"`
	AppointmentTime string `json:"appointment_time"`
}

func (h *BookingHandler) List(c *gin.Context) {
	customerID, ok := currentCustomer(c)
	if !ok {
		return
	}

	out, err := h.list.Execute(c.Request.Context(), customerID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, out)
}

func (h *BookingHandler) Create(c *gin.Context) {
	customerID, ok := currentCustomer(c)
	if !ok {
		return
	}

	var req CreateBookingRequest
	if !bind(c, &req) {
		return
	}

	out, err := h.create.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		CustomerID:      customerID,
		StylistID:       req.StylistID,
		ServiceID:       req.ServiceID,
		AppointmentTime: req.AppointmentTime,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.Created(c, gin.H{"booking": out})
}
