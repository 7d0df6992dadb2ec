package catalog

import (
	"context"
	"strings"

	"github.com/Ka-few/Beauty-parlor-app/internal/domain/catalog"
	"github.com/Ka-few/Beauty-parlor-app/internal/dto"
	"github.com/Ka-few/Beauty-parlor-app/internal/httperr"
	"github.com/Ka-few/Beauty-parlor-app/internal/models"
)

type CreateServiceInput struct {
	Title       string
	Description string
	// Price is a JSON number or a numeric string.
	Price    any
	ImageURL string
}

type CreateService struct {
	repo catalog.Repository
}

func NewCreateService(repo catalog.Repository) *CreateService {
	return &CreateService{repo: repo}
}

func (uc *CreateService) Execute(ctx context.Context, in CreateServiceInput) (*dto.ServiceDTO, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, httperr.Validation("Title and price are required")
	}

	price, err := catalog.ParsePrice(in.Price)
	if err != nil {
		return nil, err
	}

	s := &models.Service{
		Title:       title,
		Description: in.Description,
		Price:       price,
		ImageURL:    strings.TrimSpace(in.ImageURL),
	}
	if err := uc.repo.CreateService(ctx, s); err != nil {
		return nil, err
	}

	out := dto.Service(s)
	return &out, nil
}
