package customer

import (
	"context"

	"github.com/Ka-few/Beauty-parlor-app/internal/domain/customer"
	"github.com/Ka-few/Beauty-parlor-app/internal/dto"
)

type ListCustomers struct {
	customers customer.Repository
}

func NewListCustomers(customers customer.Repository) *ListCustomers {
	return &ListCustomers{customers: customers}
}

func (uc *ListCustomers) Execute(ctx context.Context) ([]dto.CustomerDTO, error) {
	list, err := uc.customers.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.Customers(list), nil
}
