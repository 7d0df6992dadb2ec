package catalog

import (
	"errors"

	"github.com/Ka-few/Beauty-parlor-app/internal/domain"
	"github.com/Ka-few/Beauty-parlor-app/internal/httperr"
)

const (
	msgServiceNotFound = "Service not found"
	msgStylistNotFound = "Stylist not found"
)

func notFound(err error, msg string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return httperr.NotFoundErr(msg)
	}
	return err
}
