package adapter

import (
	"sync"
)

// Stamper produces strictly increasing millisecond timestamps. Two calls
// within the same wall-clock millisecond still return distinct, ordered
// values, so a stamp can serve as a total order over settlements.
//
//go:generate mockgen -source=stamp.go -destination=../mocks/stamp.go -package=mocks -mock_names=Stamper=MockStamper
type Stamper interface {
	// Next returns a millisecond timestamp strictly greater than any
	// previously returned value.
	Next() int64
}

type monotonicStamper struct {
	mu    sync.Mutex
	clock Clock
	last  int64
}

// NewStamper creates a stamper backed by the given clock
func NewStamper(clock Clock) Stamper {
	return &monotonicStamper{clock: clock}
}

func (s *monotonicStamper) Next() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now().UnixMilli()
	if now <= s.last {
		now = s.last + 1
	}
	s.last = now
	return now
}
