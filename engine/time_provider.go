package engine

import "time"

// Clock supplies wall time and tick-boundary waits to the scheduler
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

// TimeProvider provides the real system time with monotonic clock readings
type TimeProvider struct{}

// NewTimeProvider creates a new monotonic time provider
func NewTimeProvider() *TimeProvider {
	return &TimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *TimeProvider) Now() time.Time {
	return time.Now()
}

// After waits for d on the real clock
func (p *TimeProvider) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}
