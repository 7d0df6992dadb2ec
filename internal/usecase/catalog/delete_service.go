package catalog

import (
	"context"

	"github.com/Ka-few/Beauty-parlor-app/internal/audit"
	"github.com/Ka-few/Beauty-parlor-app/internal/domain"
	"github.com/Ka-few/Beauty-parlor-app/internal/domain/catalog"
)

type DeleteService struct {
	repo  catalog.Repository
	tx    domain.Transactor
	audit audit.Sink
}

func NewDeleteService(repo catalog.Repository, tx domain.Transactor, audit audit.Sink) *DeleteService {
	return &DeleteService{repo: repo, tx: tx, audit: audit}
}

// Execute removes the service together with its bookings and stylist links.
func (uc *DeleteService) Execute(ctx context.Context, actorID, id uint) error {
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		return uc.repo.DeleteService(ctx, id)
	})
	if err != nil {
		return notFound(err, msgServiceNotFound)
	}

	uc.audit.Dispatch(ctx, audit.Event{
		CustomerID: &actorID,
		Action:     audit.ActionServiceDeleted,
		Entity:     "service",
		EntityID:   &id,
	})
	return nil
}
