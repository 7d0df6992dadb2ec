package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ka-few/Beauty-parlor-app/internal/httperr"
)

func TestParseAppointmentTime(t *testing.T) {
	nairobi := time.FixedZone("EAT", 3*60*60)

	cases := []struct {
		raw  string
		want time.Time
	}{
		{"2025-07-01T10:00:00", time.Date(2025, 7, 1, 10, 0, 0, 0, nairobi)},
		{"2025-07-01 10:00", time.Date(2025, 7, 1, 10, 0, 0, 0, nairobi)},
		{"2025-07-01T10:00:00.250000", time.Date(2025, 7, 1, 10, 0, 0, 250000000, nairobi)},
		{"2025-07-01", time.Date(2025, 7, 1, 0, 0, 0, 0, nairobi)},
		{"2025-07-01T10:00:00Z", time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)},
		{"2025-07-01T10:00:00+03:00", time.Date(2025, 7, 1, 7, 0, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		got, err := ParseAppointmentTime(tc.raw, nairobi)
		require.NoError(t, err, tc.raw)
		assert.True(t, tc.want.Equal(got), "%s: got %s", tc.raw, got)
	}
}

func TestParseAppointmentTimeRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"", "tomorrow", "2025-13-01T10:00", "01/07/2025 10:00"} {
		_, err := ParseAppointmentTime(raw, time.UTC)
		assert.True(t, httperr.IsBusiness(err, httperr.KindValidation), raw)
	}
}
