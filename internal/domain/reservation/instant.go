package reservation

import (
	"time"
)

// Instant is a point in time expressed as milliseconds since the Unix
// epoch. All stored reservation bounds are minute-aligned Instants so
// that downstream comparisons are plain integer comparisons.
type Instant int64

const minuteMillis = 60_000

// displayLayout is RFC 3339 with millisecond precision in UTC,
// matching the textual form exposed on the wire.
const displayLayout = "2006-01-02T15:04:05.000Z"

// ParseInstant converts an RFC 3339 timestamp into an Instant.
// Failure is reported as ErrMalformedTime, never a panic.
func ParseInstant(text string) (Instant, error) {
	t, err := time.Parse(time.RFC3339, text)
	if err != nil {
		return 0, ErrMalformedTime
	}
	return Instant(t.UnixMilli()), nil
}

func InstantFromTime(t time.Time) Instant {
	return Instant(t.UnixMilli())
}

// TruncateToMinute floors the instant to the start of its minute.
func (i Instant) TruncateToMinute() Instant {
	m := i % minuteMillis
	if m < 0 {
		m += minuteMillis
	}
	return i - m
}

func (i Instant) Time() time.Time {
	return time.UnixMilli(int64(i)).UTC()
}

// Display renders the instant in the canonical wire form.
func (i Instant) Display() string {
	return i.Time().Format(displayLayout)
}
