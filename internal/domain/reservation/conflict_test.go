//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"room-reserve/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storedReservation(id int64, start, end time.Time) *reservation.Reservation {
	iv := reservation.ReconstructInterval(
		reservation.InstantFromTime(start),
		reservation.InstantFromTime(end),
	)
	return reservation.ReconstructReservation(id, iv, "2030-03-15T09:00:00.000Z")
}

func TestFindConflict(t *testing.T) {
	at := func(h, m int) time.Time {
		return time.Date(2030, 3, 15, h, m, 0, 0, time.UTC)
	}
	candidate := func(sh, sm, eh, em int) reservation.Interval {
		return reservation.ReconstructInterval(
			reservation.InstantFromTime(at(sh, sm)),
			reservation.InstantFromTime(at(eh, em)),
		)
	}

	t.Run("empty room has no conflict", func(t *testing.T) {
		assert.Nil(t, reservation.FindConflict(candidate(13, 0, 14, 0), nil))
	})

	t.Run("back-to-back reservation is admissible", func(t *testing.T) {
		existing := []*reservation.Reservation{storedReservation(1, at(13, 0), at(13, 30))}
		assert.Nil(t, reservation.FindConflict(candidate(13, 30, 14, 0), existing))
		assert.Nil(t, reservation.FindConflict(candidate(12, 30, 13, 0), existing))
	})

	t.Run("contained candidate reports the blocking reservation", func(t *testing.T) {
		existing := []*reservation.Reservation{storedReservation(7, at(13, 20), at(14, 20))}

		conflict := reservation.FindConflict(candidate(13, 30, 13, 50), existing)
		require.NotNil(t, conflict)
		assert.Equal(t, int64(7), conflict.ReservationID)
		assert.Equal(t, "2030-03-15T13:20:00.000Z", conflict.Start)
		assert.Equal(t, "2030-03-15T14:20:00.000Z", conflict.End)
	})

	t.Run("candidate spanning several reservations reports the first in stored order", func(t *testing.T) {
		// stored order differs from temporal order on purpose
		existing := []*reservation.Reservation{
			storedReservation(4, at(14, 0), at(14, 30)),
			storedReservation(2, at(13, 0), at(13, 30)),
		}

		conflict := reservation.FindConflict(candidate(12, 0, 16, 0), existing)
		require.NotNil(t, conflict)
		assert.Equal(t, int64(4), conflict.ReservationID)
	})
}
