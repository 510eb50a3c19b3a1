package wasmframe

import "sync/atomic"

// Counter is the frame index. It wraps on overflow.
type Counter struct {
	v atomic.Uint32
}

// Next returns the current index and advances it by one.
func (c *Counter) Next() uint32 {
	return c.v.Add(1) - 1
}

// Load returns the index the next render will capture.
func (c *Counter) Load() uint32 {
	return c.v.Load()
}

// Reset sets the index the next render will capture.
func (c *Counter) Reset(frame uint32) {
	c.v.Store(frame)
}
