package reservation

// Reservation is a confirmed booking of a room for a half-open time
// interval. Instances are only ever built by the Factory, after the
// interval has passed validation and conflict detection, so the entity
// itself carries no checks.
type Reservation struct {
	id        int64
	interval  Interval
	createdAt string
}

// ReconstructReservation rebuilds an entity from stored fields.
func ReconstructReservation(id int64, interval Interval, createdAt string) *Reservation {
	return &Reservation{
		id:        id,
		interval:  interval,
		createdAt: createdAt,
	}
}

func (r *Reservation) ID() int64          { return r.id }
func (r *Reservation) Interval() Interval { return r.interval }
func (r *Reservation) Start() Instant     { return r.interval.Start() }
func (r *Reservation) End() Instant       { return r.interval.End() }

// StartDisplay and EndDisplay are the canonical textual forms of the
// minute-aligned bounds; the integer instants never leave the process.
func (r *Reservation) StartDisplay() string { return r.interval.Start().Display() }
func (r *Reservation) EndDisplay() string   { return r.interval.End().Display() }

func (r *Reservation) CreatedAt() string { return r.createdAt }
