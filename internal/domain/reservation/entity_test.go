//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"room-reserve/internal/domain/reservation"
	"room-reserve/internal/pkg/clock"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var entityCmpOpts = []cmp.Option{
	cmp.AllowUnexported(reservation.Reservation{}, reservation.Interval{}),
}

func TestFactoryCreateReservation(t *testing.T) {
	now := time.Date(2030, 3, 15, 12, 0, 30, 250_000_000, time.UTC)
	factory := reservation.NewFactory(clock.NewMockClock(now))

	start, err := reservation.ParseInstant("2030-03-15T13:00:00Z")
	require.NoError(t, err)
	end, err := reservation.ParseInstant("2030-03-15T14:30:00Z")
	require.NoError(t, err)
	iv := reservation.ReconstructInterval(start, end)

	actual := factory.CreateReservation(42, iv)

	expected := reservation.ReconstructReservation(42, iv, "2030-03-15T12:00:30.250Z")
	if diff := cmp.Diff(expected, actual, entityCmpOpts...); diff != "" {
		t.Errorf("Reservation mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, int64(42), actual.ID())
	assert.Equal(t, "2030-03-15T13:00:00.000Z", actual.StartDisplay())
	assert.Equal(t, "2030-03-15T14:30:00.000Z", actual.EndDisplay())
	// creation stamp keeps full millisecond precision, only the
	// interval bounds are minute-aligned
	assert.Equal(t, "2030-03-15T12:00:30.250Z", actual.CreatedAt())
}

func TestReservationAccessors(t *testing.T) {
	start := reservation.InstantFromTime(time.Date(2030, 3, 15, 13, 0, 0, 0, time.UTC))
	end := reservation.InstantFromTime(time.Date(2030, 3, 15, 14, 0, 0, 0, time.UTC))
	r := reservation.ReconstructReservation(3, reservation.ReconstructInterval(start, end), "2030-03-15T09:00:00.000Z")

	assert.Equal(t, start, r.Start())
	assert.Equal(t, end, r.End())
	assert.Equal(t, time.Hour, r.Interval().Duration())
}
