package memory

import (
	"go.uber.org/atomic"
)

// PNRFloor keeps issued reference numbers above any reserved range; the
// first issued PNR is PNRFloor+1.
const PNRFloor = 1000

// PNRSequence hands out reference numbers: strictly increasing, never
// reused within a session. Safe for concurrent callers.
type PNRSequence struct {
	counter atomic.Int64
}

func NewPNRSequence() *PNRSequence {
	s := &PNRSequence{}
	s.counter.Store(PNRFloor)
	return s
}

func (s *PNRSequence) Next() int {
	return int(s.counter.Add(1))
}
