package reservation

import (
	"errors"
	"time"
)

var (
	ErrMalformedTime   = errors.New("malformed time")
	ErrInvalidInterval = errors.New("invalid interval")
	ErrPastStart       = errors.New("start is in the past")
	ErrTooLong         = errors.New("interval exceeds maximum duration")
)

// Policy holds the admissibility constants applied to a candidate
// interval. Injected so business-rule changes never touch the checks
// themselves.
type Policy struct {
	MaxDuration time.Duration
}

func DefaultPolicy() Policy {
	return Policy{MaxDuration: 12 * time.Hour}
}

// Interval is a half-open time range [start, end) with minute-aligned
// bounds.
type Interval struct {
	start Instant
	end   Instant
}

// NewInterval parses and validates a candidate interval. Checks run in
// a fixed order and stop at the first failure:
//
//  1. both bounds parse and end > start at full precision
//  2. both bounds are truncated to the minute
//  3. end > start is re-checked on the truncated bounds, so a
//     sub-minute interval that collapses under truncation is rejected
//  4. the truncated start is not before the truncated now (equality
//     is allowed)
//  5. the truncated duration does not exceed pol.MaxDuration
func NewInterval(startRaw, endRaw string, now time.Time, pol Policy) (Interval, error) {
	start, err := ParseInstant(startRaw)
	if err != nil {
		return Interval{}, err
	}
	end, err := ParseInstant(endRaw)
	if err != nil {
		return Interval{}, err
	}
	if end <= start {
		return Interval{}, ErrInvalidInterval
	}

	start = start.TruncateToMinute()
	end = end.TruncateToMinute()
	if end <= start {
		return Interval{}, ErrInvalidInterval
	}

	if start < InstantFromTime(now).TruncateToMinute() {
		return Interval{}, ErrPastStart
	}

	if int64(end-start) > pol.MaxDuration.Milliseconds() {
		return Interval{}, ErrTooLong
	}

	return Interval{start: start, end: end}, nil
}

// ReconstructInterval rebuilds an interval from already-validated
// minute-aligned bounds. No checks are performed.
func ReconstructInterval(start, end Instant) Interval {
	return Interval{start: start, end: end}
}

func (iv Interval) Start() Instant { return iv.start }
func (iv Interval) End() Instant   { return iv.end }

func (iv Interval) Duration() time.Duration {
	return time.Duration(iv.end-iv.start) * time.Millisecond
}

// Overlaps reports whether two half-open intervals share any instant.
// Back-to-back intervals (one's end equals the other's start) do not
// overlap, which is what makes dense scheduling possible.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.start < other.end && other.start < iv.end
}
