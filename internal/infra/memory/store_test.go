package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ka-few/Beauty-parlor-app/internal/domain"
	"github.com/Ka-few/Beauty-parlor-app/internal/models"
)

func TestWithinTxRollsBack(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	boom := errors.New("boom")
	err := s.WithinTx(ctx, func(ctx context.Context) error {
		require.NoError(t, s.Customers().Create(ctx, &models.Customer{Name: "A", Phone: "1"}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	list, err := s.Customers().List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	// Ids handed out inside a rolled back unit of work are not reused.
	c := &models.Customer{Name: "B", Phone: "2"}
	require.NoError(t, s.Customers().Create(ctx, c))
	assert.Equal(t, uint(2), c.ID)
}

func TestWithinTxRollbackKeepsOutsideWrites(t *testing.T) {
	s := NewStore()
	outer := context.Background()

	err := s.WithinTx(outer, func(ctx context.Context) error {
		require.NoError(t, s.Customers().Create(outer, &models.Customer{Name: "Walk-in", Phone: "0711111111"}))
		require.NoError(t, s.Customers().Create(ctx, &models.Customer{Name: "Doomed", Phone: "0722222222"}))
		return errors.New("does not offer")
	})
	require.Error(t, err)

	got, err := s.Customers().GetByPhone(outer, "0711111111")
	require.NoError(t, err)
	assert.Equal(t, "Walk-in", got.Name)

	_, err = s.Customers().GetByPhone(outer, "0722222222")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWithinTxRollbackRestoresDeletedRows(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	cat := s.Catalog()

	cust := &models.Customer{Name: "A", Phone: "1"}
	require.NoError(t, s.Customers().Create(ctx, cust))
	sv := &models.Service{Title: "Haircut", Price: 30}
	require.NoError(t, cat.CreateService(ctx, sv))
	st := &models.Stylist{Name: "Sophie"}
	require.NoError(t, cat.CreateStylist(ctx, st, []models.Service{*sv}))
	b := &models.Booking{CustomerID: cust.ID, StylistID: st.ID, ServiceID: sv.ID}
	require.NoError(t, s.Bookings().Create(ctx, b))

	err := s.WithinTx(ctx, func(ctx context.Context) error {
		require.NoError(t, s.Bookings().SetPaymentIntent(ctx, b.ID, "ws_CO_1"))
		require.NoError(t, cat.DeleteStylist(ctx, st.ID))
		return errors.New("boom")
	})
	require.Error(t, err)

	got, err := s.Bookings().GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Empty(t, got.PaymentIntentID)

	ok, err := cat.StylistOffersService(ctx, st.ID, sv.ID)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCustomerPhoneUnique(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	require.NoError(t, s.Customers().Create(ctx, &models.Customer{Name: "A", Phone: "1"}))
	err := s.Customers().Create(ctx, &models.Customer{Name: "B", Phone: "1"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestDeleteStylistCascades(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	cat := s.Catalog()

	cust := &models.Customer{Name: "A", Phone: "1"}
	require.NoError(t, s.Customers().Create(ctx, cust))
	sv := &models.Service{Title: "Haircut", Price: 30}
	require.NoError(t, cat.CreateService(ctx, sv))
	st := &models.Stylist{Name: "Sophie"}
	require.NoError(t, cat.CreateStylist(ctx, st, []models.Service{*sv}))

	b := &models.Booking{CustomerID: cust.ID, StylistID: st.ID, ServiceID: sv.ID}
	require.NoError(t, s.Bookings().Create(ctx, b))
	require.NoError(t, s.Reviews().Create(ctx, &models.Review{CustomerID: cust.ID, StylistID: st.ID, Rating: 5}))

	require.NoError(t, cat.DeleteStylist(ctx, st.ID))

	_, err := s.Bookings().GetByID(ctx, b.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	reviews, err := s.Reviews().ListForStylist(ctx, st.ID)
	require.NoError(t, err)
	assert.Empty(t, reviews)

	got, err := cat.GetService(ctx, sv.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Stylists)

	assert.ErrorIs(t, cat.DeleteStylist(ctx, st.ID), domain.ErrNotFound)
}

func TestBookingReadsCarryRelations(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	cust := &models.Customer{Name: "Alice", Phone: "1"}
	require.NoError(t, s.Customers().Create(ctx, cust))
	sv := &models.Service{Title: "Manicure", Price: 25}
	require.NoError(t, s.Catalog().CreateService(ctx, sv))
	st := &models.Stylist{Name: "David"}
	require.NoError(t, s.Catalog().CreateStylist(ctx, st, nil))

	b := &models.Booking{CustomerID: cust.ID, StylistID: st.ID, ServiceID: sv.ID}
	require.NoError(t, s.Bookings().Create(ctx, b))
	assert.Equal(t, "pending", b.PaymentStatus)

	got, err := s.Bookings().GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Customer.Name)
	assert.Equal(t, "David", got.Stylist.Name)
	assert.Equal(t, 25.0, got.Service.Price)
}
