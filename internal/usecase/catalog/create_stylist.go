package catalog

import (
	"context"
	"strings"

	"github.com/Ka-few/Beauty-parlor-app/internal/domain"
	"github.com/Ka-few/Beauty-parlor-app/internal/domain/catalog"
	"github.com/Ka-few/Beauty-parlor-app/internal/dto"
	"github.com/Ka-few/Beauty-parlor-app/internal/httperr"
	"github.com/Ka-few/Beauty-parlor-app/internal/models"
)

type CreateStylistInput struct {
	Name       string
	Bio        string
	ServiceIDs []uint
}

type CreateStylist struct {
	repo catalog.Repository
	tx   domain.Transactor
}

func NewCreateStylist(repo catalog.Repository, tx domain.Transactor) *CreateStylist {
	return &CreateStylist{repo: repo, tx: tx}
}

// Execute links the stylist to every listed service that exists. Unknown
// ids are skipped.
func (uc *CreateStylist) Execute(ctx context.Context, in CreateStylistInput) (*dto.StylistDTO, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, httperr.Validation("Name is required")
	}

	var out dto.StylistDTO
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		services, err := uc.repo.FindServicesByIDs(ctx, catalog.DedupeIDs(in.ServiceIDs))
		if err != nil {
			return err
		}

		st := &models.Stylist{Name: name, Bio: in.Bio}
		if err := uc.repo.CreateStylist(ctx, st, services); err != nil {
			return err
		}

		created, err := uc.repo.GetStylist(ctx, st.ID)
		if err != nil {
			return err
		}
		out = dto.Stylist(created)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
