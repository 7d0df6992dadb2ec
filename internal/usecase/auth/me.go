package auth

import (
	"context"
	"errors"

	"github.com/Ka-few/Beauty-parlor-app/internal/domain"
	"github.com/Ka-few/Beauty-parlor-app/internal/domain/customer"
	"github.com/Ka-few/Beauty-parlor-app/internal/dto"
	"github.com/Ka-few/Beauty-parlor-app/internal/httperr"
)

type CurrentCustomer struct {
	customers customer.Repository
}

func NewCurrentCustomer(customers customer.Repository) *CurrentCustomer {
	return &CurrentCustomer{customers: customers}
}

func (uc *CurrentCustomer) Execute(ctx context.Context, customerID uint) (*dto.CustomerDTO, error) {
	c, err := uc.customers.GetByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.NotFoundErr("Customer not found")
		}
		return nil, err
	}
	out := dto.Customer(c)
	return &out, nil
}
