package catalog

import (
	"context"

	"github.com/Ka-few/Beauty-parlor-app/internal/domain/catalog"
	"github.com/Ka-few/Beauty-parlor-app/internal/dto"
)

type ListServices struct {
	repo catalog.Repository
}

func NewListServices(repo catalog.Repository) *ListServices {
	return &ListServices{repo: repo}
}

func (uc *ListServices) Execute(ctx context.Context) ([]dto.ServiceDTO, error) {
	list, err := uc.repo.ListServices(ctx)
	if err != nil {
		return nil, err
	}
	return dto.Services(list), nil
}

type GetService struct {
	repo catalog.Repository
}

func NewGetService(repo catalog.Repository) *GetService {
	return &GetService{repo: repo}
}

func (uc *GetService) Execute(ctx context.Context, id uint) (*dto.ServiceDTO, error) {
	s, err := uc.repo.GetService(ctx, id)
	if err != nil {
		return nil, notFound(err, msgServiceNotFound)
	}
	out := dto.Service(s)
	return &out, nil
}
