package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Ka-few/Beauty-parlor-app/internal/httperr"
	"github.com/Ka-few/Beauty-parlor-app/internal/httpresp"
	ucReview "github.com/Ka-few/Beauty-parlor-app/internal/usecase/review"
)

type ReviewHandler struct {
	create *ucReview.CreateReview
}

func NewReviewHandler(create *ucReview.CreateReview) *ReviewHandler {
	return &ReviewHandler{create: create}
}

type CreateReviewRequest struct {
	StylistID uint   `json:"stylist_id"`
	Rating    *int   `json:"rating"`
	Comment   string `json:"comment"`
}

func (h *ReviewHandler) Create(c *gin.Context) {
	customerID, ok := currentCustomer(c)
	if !ok {
		return
	}

	var req CreateReviewRequest
	if !bind(c, &req) {
		return
	}

	out, err := h.create.Execute(c.Request.Context(), ucReview.CreateReviewInput{
		CustomerID: customerID,
		StylistID:  req.StylistID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.Created(c, out)
}
