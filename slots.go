// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bounded

import "code.hybscloud.com/atomix"

// slotStore is the circular item array with its per-slot checker.
//
// items and the two cursors are guarded by the owning Buffer's cursor
// lock. checker[i] is zero while slot i is empty and holds the published
// identifier otherwise; it is stored with release ordering after the item
// write and loaded with acquire ordering before the item read, so the
// item handoff does not depend on the lock for visibility.
type slotStore struct {
	items   []uint64
	checker []atomix.Uint64
	w       int // next slot to publish into
	r       int // next slot to drain
}

func newSlotStore(capacity int) slotStore {
	return slotStore{
		items:   make([]uint64, capacity),
		checker: make([]atomix.Uint64, capacity),
	}
}

func (s *slotStore) next(i int) int {
	i++
	if i == len(s.items) {
		return 0
	}
	return i
}

// publish writes id into the write slot and releases it to readers.
// It reports whether the slot still carried a marker, which means an
// undrained item was overwritten.
func (s *slotStore) publish(id uint64) (overwrote bool) {
	idx := s.w
	overwrote = s.checker[idx].LoadRelaxed() != 0
	s.items[idx] = id
	s.checker[idx].StoreRelease(id)
	s.w = s.next(idx)
	return overwrote
}

// observe drains the read slot. seen is the marker observed before the
// read; zero means the slot had not been published.
func (s *slotStore) observe() (item, seen uint64) {
	idx := s.r
	seen = s.checker[idx].LoadAcquire()
	item = s.items[idx]
	s.checker[idx].StoreRelaxed(0)
	s.r = s.next(idx)
	return item, seen
}

// marker returns the checker value of slot i.
func (s *slotStore) marker(i int) uint64 {
	return s.checker[i].LoadAcquire()
}
