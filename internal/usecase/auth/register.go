package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/Ka-few/Beauty-parlor-app/internal/audit"
	pwd "github.com/Ka-few/Beauty-parlor-app/internal/auth"
	"github.com/Ka-few/Beauty-parlor-app/internal/domain"
	"github.com/Ka-few/Beauty-parlor-app/internal/domain/customer"
	"github.com/Ka-few/Beauty-parlor-app/internal/dto"
	"github.com/Ka-few/Beauty-parlor-app/internal/httperr"
	"github.com/Ka-few/Beauty-parlor-app/internal/models"
)

// TokenIssuer mints an access token for a customer id.
type TokenIssuer interface {
	Issue(customerID uint) (string, error)
}

// ======================================================
// INPUT
// ======================================================

type RegisterInput struct {
	Name     string
	Phone    string
	Password string
	IsAdmin  bool
}

// ======================================================
// USE CASE
// ======================================================

type Register struct {
	customers customer.Repository
	tokens    TokenIssuer
	audit     audit.Sink
}

func NewRegister(
	customers customer.Repository,
	tokens TokenIssuer,
	audit audit.Sink,
) *Register {
	return &Register{
		customers: customers,
		tokens:    tokens,
		audit:     audit,
	}
}

func (uc *Register) Execute(ctx context.Context, in RegisterInput) (*dto.AuthDTO, error) {
	name := strings.TrimSpace(in.Name)
	phone := strings.TrimSpace(in.Phone)
	if name == "" || phone == "" || in.Password == "" {
		return nil, httperr.Validation("Name, phone and password are required")
	}

	if _, err := uc.customers.GetByPhone(ctx, phone); err == nil {
		return nil, httperr.Conflict("Phone already registered")
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hash, err := pwd.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	c := &models.Customer{
		Name:         name,
		Phone:        phone,
		PasswordHash: hash,
		IsAdmin:      in.IsAdmin,
	}
	if err := uc.customers.Create(ctx, c); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, httperr.Conflict("Phone already registered")
		}
		return nil, err
	}

	token, err := uc.tokens.Issue(c.ID)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(ctx, audit.Event{
		CustomerID: &c.ID,
		Action:     audit.ActionCustomerRegistered,
		Entity:     "customer",
		EntityID:   &c.ID,
	})

	return &dto.AuthDTO{Customer: dto.Customer(c), AccessToken: token}, nil
}
