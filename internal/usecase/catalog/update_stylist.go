package catalog

import (
	"context"
	"strings"

	"github.com/Ka-few/Beauty-parlor-app/internal/domain"
	"github.com/Ka-few/Beauty-parlor-app/internal/domain/catalog"
	"github.com/Ka-few/Beauty-parlor-app/internal/dto"
	"github.com/Ka-few/Beauty-parlor-app/internal/httperr"
)

// UpdateStylistInput is a partial update. A nil ServiceIDs keeps the current
// services; an empty slice removes them all.
type UpdateStylistInput struct {
	ID         uint
	Name       *string
	Bio        *string
	ServiceIDs *[]uint
}

type UpdateStylist struct {
	repo catalog.Repository
	tx   domain.Transactor
}

func NewUpdateStylist(repo catalog.Repository, tx domain.Transactor) *UpdateStylist {
	return &UpdateStylist{repo: repo, tx: tx}
}

func (uc *UpdateStylist) Execute(ctx context.Context, in UpdateStylistInput) (*dto.StylistDTO, error) {
	var out dto.StylistDTO

	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		st, err := uc.repo.GetStylist(ctx, in.ID)
		if err != nil {
			return notFound(err, msgStylistNotFound)
		}

		if in.Name != nil {
			name := strings.TrimSpace(*in.Name)
			if name == "" {
				return httperr.Validation("Name is required")
			}
			st.Name = name
		}
		if in.Bio != nil {
			st.Bio = *in.Bio
		}

		if err := uc.repo.SaveStylist(ctx, st); err != nil {
			return notFound(err, msgStylistNotFound)
		}

		if in.ServiceIDs != nil {
			services, err := uc.repo.FindServicesByIDs(ctx, catalog.DedupeIDs(*in.ServiceIDs))
			if err != nil {
				return err
			}
			if err := uc.repo.ReplaceStylistServices(ctx, st.ID, services); err != nil {
				return err
			}
		}

		updated, err := uc.repo.GetStylist(ctx, st.ID)
		if err != nil {
			return err
		}
		out = dto.Stylist(updated)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
