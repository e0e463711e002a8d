package reservation

import "fmt"

// ConflictError reports the first existing reservation whose interval
// overlaps a candidate. When the candidate spans a gap-free run of
// existing reservations more than one may conflict; only the first in
// stored order is reported.
type ConflictError struct {
	ReservationID int64
	Start         string
	End           string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflicts with reservation %d (%s to %s)", e.ReservationID, e.Start, e.End)
}

// FindConflict scans existing reservations in stored order and returns
// the first one overlapping the candidate, or nil when the candidate
// is free. Existing reservations are assumed pairwise non-overlapping.
func FindConflict(candidate Interval, existing []*Reservation) *ConflictError {
	for _, r := range existing {
		if candidate.Overlaps(r.Interval()) {
			return &ConflictError{
				ReservationID: r.ID(),
				Start:         r.StartDisplay(),
				End:           r.EndDisplay(),
			}
		}
	}
	return nil
}
