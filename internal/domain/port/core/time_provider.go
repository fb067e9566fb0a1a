package core

import "time"

// TimeProvider abstracts time operations so use cases can be tested with fixed clocks
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}
