package reservation

import "room-reserve/internal/pkg/clock"

// Factory builds persisted reservation records. It performs no
// validation; callers must have run interval validation and conflict
// detection first.
type Factory struct {
	Clock clock.Clock
}

func NewFactory(clk clock.Clock) *Factory {
	return &Factory{Clock: clk}
}

// CreateReservation stamps the record with the creation time at full
// millisecond precision; only the interval bounds are minute-aligned.
func (f *Factory) CreateReservation(id int64, interval Interval) *Reservation {
	return &Reservation{
		id:        id,
		interval:  interval,
		createdAt: InstantFromTime(f.Clock.Now()).Display(),
	}
}
