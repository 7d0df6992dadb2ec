package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ka-few/Beauty-parlor-app/internal/infra/memory"
	"github.com/Ka-few/Beauty-parlor-app/internal/models"
	"github.com/Ka-few/Beauty-parlor-app/internal/seed"
)

func TestSummary(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	require.NoError(t, seed.Run(ctx, seed.Repos{
		Customers: store.Customers(),
		Catalog:   store.Catalog(),
		Bookings:  store.Bookings(),
		Tx:        store,
	}, "secret", time.Now()))

	// A second manicure with David puts him ahead.
	require.NoError(t, store.Bookings().Create(ctx, &models.Booking{CustomerID: 1, StylistID: 2, ServiceID: 3}))

	out, err := NewSummary(store.Analytics()).Execute(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(2), out.Summary.TotalUsers)
	assert.Equal(t, int64(3), out.Summary.TotalBookings)
	assert.Equal(t, int64(2), out.Summary.TotalStylists)
	assert.Equal(t, "80.00", out.Summary.TotalRevenue)

	require.Len(t, out.BookingsPerService, 2)
	assert.Equal(t, "Manicure", out.BookingsPerService[0].ServiceName)
	assert.Equal(t, int64(2), out.BookingsPerService[0].Count)

	require.Len(t, out.BookingsPerStylist, 2)
	assert.Equal(t, "David Kim", out.BookingsPerStylist[0].StylistName)
}

func TestFormatRevenue(t *testing.T) {
	assert.Equal(t, "0.00", FormatRevenue(0))
	assert.Equal(t, "105.50", FormatRevenue(105.5))
	assert.Equal(t, "0.30", FormatRevenue(0.1+0.2))
}
