package ports

import "time"

// Clock abstracts time for components with time-based behavior, so tests can
// inject a fixed or stepped clock.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock backed by time.Now.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
