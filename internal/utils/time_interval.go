package utils

import (
	"fmt"
	"time"
)

// ErrEndBeforeStart is the error message for when a TimeInterval's end time
// would be before its start.
const ErrEndBeforeStart = "end time before start time"

// TimeInterval represents a window of time in UTC with inclusive bounds.
// Either bound may be absent (the zero time.Time), which leaves that side of
// the window unbounded. Regardless of what timezone(s) are used for the
// beginning and end times, they will be converted to UTC and methods will
// return them as such.
type TimeInterval struct {
	start time.Time
	end   time.Time
}

// NewTimeInterval creates a new TimeInterval for a given start and end. A
// zero start or end leaves that bound open. If both bounds are set and end is
// a time.Time before start, then an error is returned.
func NewTimeInterval(start, end time.Time) (*TimeInterval, error) {
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		return nil, fmt.Errorf(ErrEndBeforeStart)
	}
	return &TimeInterval{start.UTC(), end.UTC()}, nil
}

// Contains reports whether t falls within the interval. Both bounds are
// inclusive; an open bound admits everything on that side.
func (ti *TimeInterval) Contains(t time.Time) bool {
	if !ti.start.IsZero() && t.Before(ti.start) {
		return false
	}
	if !ti.end.IsZero() && t.After(ti.end) {
		return false
	}
	return true
}

// Bounded reports whether at least one side of the interval is closed.
func (ti *TimeInterval) Bounded() bool {
	return !ti.start.IsZero() || !ti.end.IsZero()
}

// Start returns the starting time in UTC. The zero time means the interval
// has no lower bound.
func (ti *TimeInterval) Start() time.Time {
	return ti.start
}

// End returns the end time in UTC. The zero time means the interval has no
// upper bound.
func (ti *TimeInterval) End() time.Time {
	return ti.end
}

// StartString formats the start of the TimeInterval according to RFC3339.
func (ti *TimeInterval) StartString() string {
	return ti.start.Format(time.RFC3339)
}

// EndString formats the end of the TimeInterval according to RFC3339.
func (ti *TimeInterval) EndString() string {
	return ti.end.Format(time.RFC3339)
}
