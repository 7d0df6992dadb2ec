package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ka-few/Beauty-parlor-app/internal/httperr"
	ucPayment "github.com/Ka-few/Beauty-parlor-app/internal/usecase/payment"
)

type PaymentHandler struct {
	initiate *ucPayment.InitiatePayment
	callback *ucPayment.ReceiveCallback
}

func NewPaymentHandler(initiate *ucPayment.InitiatePayment, callback *ucPayment.ReceiveCallback) *PaymentHandler {
	return &PaymentHandler{initiate: initiate, callback: callback}
}

type InitiatePaymentRequest struct {
	Amount      any    `json:"amount"`
	PhoneNumber string `json:"phone_number" binding:"omitempty,phone"`
	BookingID   uint   `json:"booking_id"`
}

// Initiate relays the gateway's status and body as received.
func (h *PaymentHandler) Initiate(c *gin.Context) {
	customerID, ok := currentCustomer(c)
	if !ok {
		return
	}

	var req InitiatePaymentRequest
	if !bind(c, &req) {
		return
	}

	resp, err := h.initiate.Execute(c.Request.Context(), ucPayment.InitiatePaymentInput{
		CustomerID:  customerID,
		Amount:      req.Amount,
		PhoneNumber: req.PhoneNumber,
		BookingID:   req.BookingID,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	contentType := resp.ContentType
	if contentType == "" {
		contentType = "application/json"
	}
	c.Data(resp.StatusCode, contentType, resp.Body)
}

// Callback is hit by the gateway and always acknowledges.
func (h *PaymentHandler) Callback(c *gin.Context) {
	payload, _ := c.GetRawData()
	h.callback.Execute(c.Request.Context(), payload)

	c.JSON(http.StatusOK, gin.H{"ResultCode": 0, "ResultDesc": "Accepted"})
}
