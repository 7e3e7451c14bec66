package session

import "time"

// Clock abstracts time so the state machine can be driven deterministically in tests.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

// Now keeps the monotonic reading, so elapsed times survive wall clock jumps.
func (SystemClock) Now() time.Time {
	return time.Now()
}
