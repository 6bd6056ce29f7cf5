// Package biztime provides the service clock and display timezone.
// Storage and transport use UTC. The display zone only applies when a time
// is formatted for a person and the event carries no zone of its own.
package biztime

import (
	"sync/atomic"
	"time"
)

var display atomic.Pointer[time.Location]

// Init sets the display timezone from an IANA name. Empty means UTC.
func Init(tz string) error {
	if tz == "" {
		display.Store(time.UTC)
		return nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return err
	}
	display.Store(loc)
	return nil
}

// Location returns the display timezone, UTC until Init runs.
func Location() *time.Location {
	if loc := display.Load(); loc != nil {
		return loc
	}
	return time.UTC
}

// NowUTC is the current time in UTC at millisecond precision, the
// precision timestamps are persisted with.
func NowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// Clock yields the current time. Use cases hold one so tests can pin it.
type Clock func() time.Time
