package clock

import "time"

// Clock is a source of the current time. Production code uses System; tests
// substitute a Fixed clock so persisted timestamps are deterministic.
type Clock interface {
	Now() time.Time
}

type System struct{}

func (System) Now() time.Time {
	return time.Now().UTC()
}

// Fixed always reports the same instant.
type Fixed struct {
	Time time.Time
}

func (f Fixed) Now() time.Time {
	return f.Time
}
