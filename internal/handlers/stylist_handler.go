package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Ka-few/Beauty-parlor-app/internal/httperr"
	"github.com/Ka-few/Beauty-parlor-app/internal/httpresp"
	ucCatalog "github.com/Ka-few/Beauty-parlor-app/internal/usecase/catalog"
	ucReview "github.com/Ka-few/Beauty-parlor-app/internal/usecase/review"
)

type StylistHandler struct {
	list    *ucCatalog.ListStylists
	get     *ucCatalog.GetStylist
	create  *ucCatalog.CreateStylist
	update  *ucCatalog.UpdateStylist
	remove  *ucCatalog.DeleteStylist
	reviews *ucReview.ListStylistReviews
}

func NewStylistHandler(
	list *ucCatalog.ListStylists,
	get *ucCatalog.GetStylist,
	create *ucCatalog.CreateStylist,
	update *ucCatalog.UpdateStylist,
	remove *ucCatalog.DeleteStylist,
	reviews *ucReview.ListStylistReviews,
) *StylistHandler {
	return &StylistHandler{
		list:    list,
		get:     get,
		create:  create,
		update:  update,
		remove:  remove,
		reviews: reviews,
	}
}

// --------- Requests ---------

type CreateStylistRequest struct {
	Name       string `json:"name"`
	Bio        string `json:"bio"`
	ServiceIDs []uint `json:"service_ids"`
}

// A null or missing service_ids keeps the current services.
type UpdateStylistRequest struct {
	Name       *string `json:"name"`
	Bio        *string `json:"bio"`
	ServiceIDs *[]uint `json:"service_ids"`
}

// --------- Handlers ---------

func (h *StylistHandler) List(c *gin.Context) {
	out, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, out)
}

func (h *StylistHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id", "Stylist not found")
	if !ok {
		return
	}

	out, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, out)
}

func (h *StylistHandler) Create(c *gin.Context) {
	var req CreateStylistRequest
	if !bind(c, &req) {
		return
	}

	out, err := h.create.Execute(c.Request.Context(), ucCatalog.CreateStylistInput{
		Name:       req.Name,
		Bio:        req.Bio,
		ServiceIDs: req.ServiceIDs,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.Created(c, out)
}

func (h *StylistHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id", "Stylist not found")
	if !ok {
		return
	}

	var req UpdateStylistRequest
	if !bind(c, &req) {
		return
	}

	out, err := h.update.Execute(c.Request.Context(), ucCatalog.UpdateStylistInput{
		ID:         id,
		Name:       req.Name,
		Bio:        req.Bio,
		ServiceIDs: req.ServiceIDs,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, out)
}

func (h *StylistHandler) Delete(c *gin.Context) {
	customerID, ok := currentCustomer(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "Stylist not found")
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), customerID, id); err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.Message(c, "Stylist deleted")
}

func (h *StylistHandler) Reviews(c *gin.Context) {
	id, ok := pathID(c, "id", "Stylist not found")
	if !ok {
		return
	}

	out, err := h.reviews.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, out)
}
