package review

import (
	"context"
	"errors"

	"github.com/Ka-few/Beauty-parlor-app/internal/audit"
	"github.com/Ka-few/Beauty-parlor-app/internal/domain"
	"github.com/Ka-few/Beauty-parlor-app/internal/domain/booking"
	"github.com/Ka-few/Beauty-parlor-app/internal/domain/catalog"
	"github.com/Ka-few/Beauty-parlor-app/internal/domain/customer"
	"github.com/Ka-few/Beauty-parlor-app/internal/domain/review"
	"github.com/Ka-few/Beauty-parlor-app/internal/dto"
	"github.com/Ka-few/Beauty-parlor-app/internal/httperr"
	"github.com/Ka-few/Beauty-parlor-app/internal/models"
)

type CreateReviewInput struct {
	CustomerID uint
	StylistID  uint
	Rating     *int
	Comment    string
}

type CreateReview struct {
	reviews   review.Repository
	bookings  booking.Repository
	catalog   catalog.Repository
	customers customer.Repository
	audit     audit.Sink
}

func NewCreateReview(
	reviews review.Repository,
	bookings booking.Repository,
	catalog catalog.Repository,
	customers customer.Repository,
	audit audit.Sink,
) *CreateReview {
	return &CreateReview{
		reviews:   reviews,
		bookings:  bookings,
		catalog:   catalog,
		customers: customers,
		audit:     audit,
	}
}

// Execute lets a customer review any stylist they have ever booked. Admins
// get no exemption.
func (uc *CreateReview) Execute(ctx context.Context, in CreateReviewInput) (*dto.ReviewDTO, error) {
	if in.StylistID == 0 {
		return nil, httperr.Validation("Stylist is required")
	}
	if err := review.ValidateRating(in.Rating); err != nil {
		return nil, err
	}

	if _, err := uc.catalog.GetStylist(ctx, in.StylistID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.NotFoundErr("Stylist not found")
		}
		return nil, err
	}

	booked, err := uc.bookings.ExistsForCustomerAndStylist(ctx, in.CustomerID, in.StylistID)
	if err != nil {
		return nil, err
	}
	if !booked {
		return nil, httperr.Forbidden("You can only review stylists you have booked")
	}

	r := &models.Review{
		CustomerID: in.CustomerID,
		StylistID:  in.StylistID,
		Rating:     *in.Rating,
		Comment:    in.Comment,
	}
	if err := uc.reviews.Create(ctx, r); err != nil {
		return nil, err
	}

	if c, err := uc.customers.GetByID(ctx, in.CustomerID); err == nil {
		r.Customer = *c
	}

	uc.audit.Dispatch(ctx, audit.Event{
		CustomerID: &in.CustomerID,
		Action:     audit.ActionReviewCreated,
		Entity:     "review",
		EntityID:   &r.ID,
		Metadata:   map[string]any{"stylist_id": in.StylistID, "rating": r.Rating},
	})

	out := dto.Review(r)
	return &out, nil
}
