package core

import "time"

// DefaultChordTimeout is the window within which the second key of a
// chord must arrive.
const DefaultChordTimeout = 500 * time.Millisecond

// Clock abstracts time so chord timing is deterministic under test.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock reads the wall clock.
var SystemClock Clock = systemClock{}

// ChordState records the first key of a pending multi-key command and
// the deadline by which its second key must arrive. At most one chord
// is pending at a time; arming a new chord replaces any prior one.
type ChordState struct {
	Key      KeyEvent
	Deadline time.Time
}

// Expired reports whether the chord window has closed at now.
func (c ChordState) Expired(now time.Time) bool {
	return !now.Before(c.Deadline)
}
