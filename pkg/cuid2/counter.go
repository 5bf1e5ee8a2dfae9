package cuid2

import "sync/atomic"

// Counter is a monotonically increasing counter safe for concurrent use.
type Counter struct {
	value atomic.Int64
}

// NewCounter returns a counter whose first Next call yields initial+1.
func NewCounter(initial int64) *Counter {
	c := &Counter{}
	c.value.Store(initial)
	return c
}

// Next advances the counter and returns the new value.
func (c *Counter) Next() int64 {
	return c.value.Add(1)
}

// CreateCounter returns the Next method of a new Counter seeded with initial.
func CreateCounter(initial int64) CounterFunc {
	return NewCounter(initial).Next
}
