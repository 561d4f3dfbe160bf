package domain

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
)

func TestSetClock(t *testing.T) {
	at := time.Date(2021, 7, 1, 12, 0, 0, 0, time.UTC)
	fake := clockwork.NewFakeClockAt(at)
	SetClock(fake)
	t.Cleanup(func() { SetClock(nil) })

	assert.Equal(t, at, Now())
	fake.Advance(90 * time.Second)
	assert.Equal(t, at.Add(90*time.Second), Now())

	SetClock(nil)
	assert.WithinDuration(t, time.Now(), Now(), time.Minute)
}
