package domain

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// clock stamps summaries and times pipeline runs.
var clock = clockwork.NewRealClock()

// SetClock replaces the time source for the whole module; tests pass a
// clockwork fake. nil restores the real clock.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}

// Now reads the current time from the configured clock.
func Now() time.Time { return clock.Now() }
