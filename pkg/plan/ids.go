package plan

import "sync/atomic"

// NodeID uniquely identifies a plan node within a compilation run.
type NodeID int64

// IDSource allocates plan node identifiers. It is always supplied by
// the caller of Lower; there is no ambient or global source. A source
// shared across concurrent compilations must be safe for concurrent
// use, as Counter is.
type IDSource interface {
	NextID() NodeID
}

// Counter is the stock IDSource: a monotonic counter starting at 1.
type Counter struct {
	n atomic.Int64
}

// NewCounter creates a Counter.
func NewCounter() *Counter {
	return &Counter{}
}

// NextID implements IDSource.
func (c *Counter) NextID() NodeID {
	return NodeID(c.n.Add(1))
}
