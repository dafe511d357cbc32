package services

import (
	"time"

	"github.com/missiontracker/core/internal/ports"
)

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time { return time.Now() }

var _ ports.Clock = SystemClock{}

// storedNow is the clock reading as persisted: UTC, microsecond precision.
func storedNow(clock ports.Clock) time.Time {
	return clock.Now().UTC().Truncate(time.Microsecond)
}
