package catalog

import (
	"context"
	"strings"

	"github.com/Ka-few/Beauty-parlor-app/internal/domain"
	"github.com/Ka-few/Beauty-parlor-app/internal/domain/catalog"
	"github.com/Ka-few/Beauty-parlor-app/internal/dto"
	"github.com/Ka-few/Beauty-parlor-app/internal/httperr"
)

// UpdateServiceInput carries only the fields the client sent; nil keeps
// the stored value.
type UpdateServiceInput struct {
	ID          uint
	Title       *string
	Description *string
	Price       any
	ImageURL    *string
}

type UpdateService struct {
	repo catalog.Repository
	tx   domain.Transactor
}

func NewUpdateService(repo catalog.Repository, tx domain.Transactor) *UpdateService {
	return &UpdateService{repo: repo, tx: tx}
}

func (uc *UpdateService) Execute(ctx context.Context, in UpdateServiceInput) (*dto.ServiceDTO, error) {
	var out dto.ServiceDTO

	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		s, err := uc.repo.GetService(ctx, in.ID)
		if err != nil {
			return notFound(err, msgServiceNotFound)
		}

		if in.Title != nil {
			title := strings.TrimSpace(*in.Title)
			if title == "" {
				return httperr.Validation("Title cannot be empty")
			}
			s.Title = title
		}
		if in.Description != nil {
			s.Description = *in.Description
		}
		if in.Price != nil {
			price, err := catalog.ParsePrice(in.Price)
			if err != nil {
				return err
			}
			s.Price = price
		}
		if in.ImageURL != nil {
			s.ImageURL = strings.TrimSpace(*in.ImageURL)
		}

		if err := uc.repo.SaveService(ctx, s); err != nil {
			return notFound(err, msgServiceNotFound)
		}
		out = dto.Service(s)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
