// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bounded

import (
	"sync"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// acquireSpins bounds the optimistic spin in Acquire before the caller parks.
const acquireSpins = 64

// Semaphore is a counting semaphore.
//
// Acquire first spins on the count for a short while and then parks the
// goroutine on a condition variable until Release hands it a unit. There
// is no timeout, no cancellation, and no ordering among parked waiters.
//
// A Semaphore must not be copied after first use.
type Semaphore struct {
	_       pad
	count   atomix.Int64
	_       padShort
	waiters atomix.Int64
	_       padShort
	mu      sync.Mutex
	cond    sync.Cond
}

// NewSemaphore creates a semaphore holding n units.
// Panics if n < 0.
func NewSemaphore(n int64) *Semaphore {
	s := &Semaphore{}
	s.setup(n)
	return s
}

func (s *Semaphore) setup(n int64) {
	if n < 0 {
		panic("bounded: semaphore count must be >= 0")
	}
	s.cond.L = &s.mu
	s.count.Store(n)
}

// TryAcquire takes one unit if one is available and reports whether it did.
func (s *Semaphore) TryAcquire() bool {
	for {
		// Sequentially consistent load: pairs with the waiter
		// registration in Acquire and the increment in Release.
		c := s.count.Load()
		if c <= 0 {
			return false
		}
		if s.count.CompareAndSwapAcqRel(c, c-1) {
			return true
		}
	}
}

// Acquire takes one unit, blocking until one is available.
func (s *Semaphore) Acquire() {
	sw := spin.Wait{}
	for range acquireSpins {
		if s.TryAcquire() {
			return
		}
		sw.Once()
	}

	s.mu.Lock()
	s.waiters.Add(1)
	for !s.TryAcquire() {
		s.cond.Wait()
	}
	s.waiters.Add(-1)
	s.mu.Unlock()
}

// Release returns one unit and wakes one parked waiter, if any.
func (s *Semaphore) Release() {
	s.count.Add(1)
	if s.waiters.Load() > 0 {
		s.mu.Lock()
		s.cond.Signal()
		s.mu.Unlock()
	}
}

// Value returns the number of units currently available.
func (s *Semaphore) Value() int64 {
	return s.count.Load()
}
