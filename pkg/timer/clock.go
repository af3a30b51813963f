package timer

//go:generate mockgen -source=clock.go -destination=clock_mock.go -package=timer

import "time"

// Clock supplies the instants a Timer measures between.
//
// Implementations must be monotonic: successive Now values never go
// backwards, whatever happens to the wall clock.
type Clock interface {
	// Now returns the current instant.
	Now() time.Time
}

// SystemClock reads the runtime clock. time.Now carries a monotonic reading
// and Time.Sub uses it, so elapsed values are immune to wall-clock changes.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ClockFunc adapts a plain function to the Clock interface.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time {
	return f()
}
