// Package clock provides time utilities for the application
package clock

import "time"

// Clock provides time functionality. Repositories stamp saves with it so
// tests can pin the time.
type Clock interface {
	Now() time.Time
}

// Real implements Clock using actual system time
type Real struct{}

// Now returns the current time in UTC
func (c *Real) Now() time.Time {
	return time.Now().UTC()
}

// New returns a new real clock
func New() Clock {
	return &Real{}
}

// Fixed is a Clock that always returns the same instant
type Fixed struct {
	At time.Time
}

// Now returns the fixed time
func (c *Fixed) Now() time.Time {
	return c.At
}
