package catalog

import (
	"context"

	"github.com/Ka-few/Beauty-parlor-app/internal/audit"
	"github.com/Ka-few/Beauty-parlor-app/internal/domain"
	"github.com/Ka-few/Beauty-parlor-app/internal/domain/catalog"
)

type DeleteStylist struct {
	repo  catalog.Repository
	tx    domain.Transactor
	audit audit.Sink
}

func NewDeleteStylist(repo catalog.Repository, tx domain.Transactor, audit audit.Sink) *DeleteStylist {
	return &DeleteStylist{repo: repo, tx: tx, audit: audit}
}

func (uc *DeleteStylist) Execute(ctx context.Context, actorID, id uint) error {
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		return uc.repo.DeleteStylist(ctx, id)
	})
	if err != nil {
		return notFound(err, msgStylistNotFound)
	}

	uc.audit.Dispatch(ctx, audit.Event{
		CustomerID: &actorID,
		Action:     audit.ActionStylistDeleted,
		Entity:     "stylist",
		EntityID:   &id,
	})
	return nil
}
