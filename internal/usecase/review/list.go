package review

import (
	"context"
	"errors"

	"github.com/Ka-few/Beauty-parlor-app/internal/domain"
	"github.com/Ka-few/Beauty-parlor-app/internal/domain/catalog"
	"github.com/Ka-few/Beauty-parlor-app/internal/domain/review"
	"github.com/Ka-few/Beauty-parlor-app/internal/dto"
	"github.com/Ka-few/Beauty-parlor-app/internal/httperr"
)

type ListStylistReviews struct {
	reviews review.Repository
	catalog catalog.Repository
}

func NewListStylistReviews(reviews review.Repository, catalog catalog.Repository) *ListStylistReviews {
	return &ListStylistReviews{reviews: reviews, catalog: catalog}
}

func (uc *ListStylistReviews) Execute(ctx context.Context, stylistID uint) ([]dto.ReviewDTO, error) {
	if _, err := uc.catalog.GetStylist(ctx, stylistID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.NotFoundErr("Stylist not found")
		}
		return nil, err
	}

	list, err := uc.reviews.ListForStylist(ctx, stylistID)
	if err != nil {
		return nil, err
	}
	return dto.Reviews(list), nil
}
