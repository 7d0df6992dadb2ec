package catalog

import (
	"context"

	"github.com/Ka-few/Beauty-parlor-app/internal/domain/catalog"
	"github.com/Ka-few/Beauty-parlor-app/internal/dto"
)

type ListStylists struct {
	repo catalog.Repository
}

func NewListStylists(repo catalog.Repository) *ListStylists {
	return &ListStylists{repo: repo}
}

func (uc *ListStylists) Execute(ctx context.Context) ([]dto.StylistDTO, error) {
	list, err := uc.repo.ListStylists(ctx)
	if err != nil {
		return nil, err
	}
	return dto.Stylists(list), nil
}

type GetStylist struct {
	repo catalog.Repository
}

func NewGetStylist(repo catalog.Repository) *GetStylist {
	return &GetStylist{repo: repo}
}

func (uc *GetStylist) Execute(ctx context.Context, id uint) (*dto.StylistDTO, error) {
	s, err := uc.repo.GetStylist(ctx, id)
	if err != nil {
		return nil, notFound(err, msgStylistNotFound)
	}
	out := dto.Stylist(s)
	return &out, nil
}
