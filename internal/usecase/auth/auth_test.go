package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ka-few/Beauty-parlor-app/internal/audit"
	pwd "github.com/Ka-few/Beauty-parlor-app/internal/auth"
	"github.com/Ka-few/Beauty-parlor-app/internal/httperr"
	"github.com/Ka-few/Beauty-parlor-app/internal/infra/memory"
)

func TestRegisterLoginMe(t *testing.T) {
	store := memory.NewStore()
	tokens := pwd.NewManager("secret", time.Hour)
	sink := audit.NewMemory()
	ctx := context.Background()

	reg, err := NewRegister(store.Customers(), tokens, sink).Execute(ctx, RegisterInput{
		Name:     "Alice Johnson",
		Phone:    "0765235645",
		Password: "pw",
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice Johnson", reg.Customer.Name)
	assert.False(t, reg.Customer.IsAdmin)
	assert.Equal(t, []string{audit.ActionCustomerRegistered}, sink.Actions())

	id, err := tokens.Parse(reg.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, reg.Customer.ID, id)

	login := NewLogin(store.Customers(), tokens)
	out, err := login.Execute(ctx, LoginInput{Phone: "0765235645", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, reg.Customer.ID, out.Customer.ID)

	_, err = login.Execute(ctx, LoginInput{Phone: "0765235645", Password: "nope"})
	assert.True(t, httperr.IsBusiness(err, httperr.KindUnauthenticated))
	_, err = login.Execute(ctx, LoginInput{Phone: "0700000000", Password: "pw"})
	assert.EqualError(t, err, "Invalid credentials")

	me, err := NewCurrentCustomer(store.Customers()).Execute(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "0765235645", me.Phone)

	_, err = NewCurrentCustomer(store.Customers()).Execute(ctx, 404)
	assert.True(t, httperr.IsBusiness(err, httperr.KindNotFound))
}

func TestRegisterRejectsDuplicatesAndMissingFields(t *testing.T) {
	store := memory.NewStore()
	uc := NewRegister(store.Customers(), pwd.NewManager("secret", time.Hour), audit.NewMemory())
	ctx := context.Background()

	_, err := uc.Execute(ctx, RegisterInput{Name: "A", Phone: "0711111111", Password: "pw"})
	require.NoError(t, err)

	_, err = uc.Execute(ctx, RegisterInput{Name: "B", Phone: "0711111111", Password: "pw"})
	assert.True(t, httperr.IsBusiness(err, httperr.KindConflict))
	assert.EqualError(t, err, "Phone already registered")

	_, err = uc.Execute(ctx, RegisterInput{Name: "C", Phone: "0722222222"})
	assert.True(t, httperr.IsBusiness(err, httperr.KindValidation))
}
