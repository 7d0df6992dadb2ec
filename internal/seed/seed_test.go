package seed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ka-few/Beauty-parlor-app/internal/infra/memory"
)

func TestRunLoadsDemoSalon(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	err := Run(ctx, Repos{
		Customers: store.Customers(),
		Catalog:   store.Catalog(),
		Bookings:  store.Bookings(),
		Tx:        store,
	}, "secret", time.Now())
	require.NoError(t, err)

	customers, err := store.Customers().List(ctx)
	require.NoError(t, err)
	assert.Len(t, customers, 2)

	stylists, err := store.Catalog().ListStylists(ctx)
	require.NoError(t, err)
	require.Len(t, stylists, 2)
	assert.Equal(t, "David Kim", stylists[1].Name)
	assert.Len(t, stylists[1].Services, 2)

	totals, err := store.Analytics().Totals(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), totals.Bookings)
	assert.Equal(t, 55.0, totals.Revenue)
}
