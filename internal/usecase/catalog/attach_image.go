package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/Ka-few/Beauty-parlor-app/internal/domain/catalog"
	"github.com/Ka-few/Beauty-parlor-app/internal/dto"
	"github.com/Ka-few/Beauty-parlor-app/internal/httperr"
	"github.com/Ka-few/Beauty-parlor-app/internal/imaging"
	"github.com/Ka-few/Beauty-parlor-app/internal/storage"
)

type AttachServiceImageInput struct {
	ServiceID uint
	Image     io.Reader
}

// AttachServiceImage converts an upload to WebP, stores it and points the
// service's image_url at it. A nil store disables uploads.
type AttachServiceImage struct {
	repo     catalog.Repository
	store    storage.ObjectStore
	maxWidth int
}

func NewAttachServiceImage(repo catalog.Repository, store storage.ObjectStore) *AttachServiceImage {
	return &AttachServiceImage{repo: repo, store: store, maxWidth: imaging.DefaultMaxWidth}
}

func (uc *AttachServiceImage) Execute(ctx context.Context, in AttachServiceImageInput) (*dto.ServiceDTO, error) {
	s, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, notFound(err, msgServiceNotFound)
	}

	if uc.store == nil {
		return nil, httperr.InternalErr("Image storage is not configured")
	}

	body, err := imaging.ToWebP(in.Image, uc.maxWidth)
	if err != nil {
		if errors.Is(err, imaging.ErrUnsupportedImage) {
			return nil, httperr.Validation("Unsupported image format")
		}
		return nil, err
	}

	key := fmt.Sprintf("services/%d/%s.webp", s.ID, uuid.NewString())
	url, err := uc.store.Put(ctx, key, imaging.ContentType, body)
	if err != nil {
		return nil, err
	}

	s.ImageURL = url
	if err := uc.repo.SaveService(ctx, s); err != nil {
		return nil, notFound(err, msgServiceNotFound)
	}

	out := dto.Service(s)
	return &out, nil
}
