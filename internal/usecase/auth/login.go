package auth

import (
	"context"
	"errors"
	"strings"

	pwd "github.com/Ka-few/Beauty-parlor-app/internal/auth"
	"github.com/Ka-few/Beauty-parlor-app/internal/domain"
	"github.com/Ka-few/Beauty-parlor-app/internal/domain/customer"
	"github.com/Ka-few/Beauty-parlor-app/internal/dto"
	"github.com/Ka-few/Beauty-parlor-app/internal/httperr"
)

type LoginInput struct {
	Phone    string
	Password string
}

type Login struct {
	customers customer.Repository
	tokens    TokenIssuer
}

func NewLogin(customers customer.Repository, tokens TokenIssuer) *Login {
	return &Login{customers: customers, tokens: tokens}
}

// Execute answers the same way for an unknown phone and a wrong password.
func (uc *Login) Execute(ctx context.Context, in LoginInput) (*dto.AuthDTO, error) {
	c, err := uc.customers.GetByPhone(ctx, strings.TrimSpace(in.Phone))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.Unauthenticated("Invalid credentials")
		}
		return nil, err
	}

	if err := pwd.ComparePassword(c.PasswordHash, in.Password); err != nil {
		return nil, httperr.Unauthenticated("Invalid credentials")
	}

	token, err := uc.tokens.Issue(c.ID)
	if err != nil {
		return nil, err
	}

	return &dto.AuthDTO{Customer: dto.Customer(c), AccessToken: token}, nil
}
