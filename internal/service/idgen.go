package service

import (
	"sync/atomic"
	"time"
)

// IDGenerator hands out clothing item ids.
type IDGenerator interface {
	NextID() int64
}

// Sequence yields strictly increasing ids that track wall-clock milliseconds
// when creation is slow and fall back to last+1 when it is fast, so two items
// never share an id within a process.
type Sequence struct {
	last atomic.Int64
	now  func() time.Time
}

func NewSequence() *Sequence {
	return &Sequence{now: time.Now}
}

// NewFixedSequence starts counting from start; the clock is ignored.
func NewFixedSequence(start int64) *Sequence {
	s := &Sequence{now: func() time.Time { return time.UnixMilli(0) }}
	s.last.Store(start - 1)
	return s
}

func (s *Sequence) NextID() int64 {
	for {
		last := s.last.Load()
		next := s.now().UnixMilli()
		if next <= last {
			next = last + 1
		}
		if s.last.CompareAndSwap(last, next) {
			return next
		}
	}
}
