// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bounded

import (
	"log/slog"
	"sync"

	"code.hybscloud.com/atomix"
)

// Buffer is a bounded multi-producer multi-consumer transfer buffer.
//
// Producers and consumers are admitted by a pair of counting semaphores
// (free and filled slots). A short cursor lock serializes slot and cursor
// mutation, and each slot carries a release/acquire published marker
// that hands the written item to the reader. Every produced item is the
// next identifier of the buffer's Sequence, and every consumed item is
// checked against the buffer's Validator.
//
// Produce draws its identifier before waiting for a free slot. With more
// than one producer, a producer holding a larger identifier can therefore
// publish ahead of one holding a smaller identifier, and the Validator
// reports the inversion.
//
// Memory: O(capacity), two words per slot
type Buffer struct {
	gate gate

	_     pad
	mu    sync.Mutex // cursor lock
	store slotStore

	seq Sequence
	val Validator

	overwrites atomix.Uint64
	emptyReads atomix.Uint64
	tornReads  atomix.Uint64

	metrics *bufferMetrics
	logger  *slog.Logger
}

// NewBuffer creates a Buffer with default options.
// Panics if capacity < 1.
func NewBuffer(capacity int) *Buffer {
	return New(capacity).Build()
}

func newBuffer(o Options) *Buffer {
	b := &Buffer{
		store:   newSlotStore(o.capacity),
		metrics: o.metrics,
		logger:  o.logger,
	}
	b.gate.setup(o.capacity)

	handler := o.onViolation
	if handler == nil {
		handler = Abort
	}
	b.val.setup(func(v *IntegrityViolation) {
		b.logger.Error("sequence integrity violation",
			"got", v.Got, "want", v.Want, "capacity", o.capacity)
		b.metrics.recordViolation()
		handler(v)
	})

	b.logger.Debug("buffer created", "capacity", o.capacity)
	return b
}

// Produce runs one producer iteration and returns the identifier it
// published. It blocks while the buffer is full.
func (b *Buffer) Produce() uint64 {
	id := b.seq.Next()
	b.gate.admitProducer()
	b.put(id)
	return id
}

// TryProduce publishes the next identifier if a slot is free.
// Returns (0, ErrWouldBlock) if the buffer is full.
//
// Unlike Produce, the slot is claimed before the identifier is drawn,
// so a failed attempt leaves the sequence untouched.
func (b *Buffer) TryProduce() (uint64, error) {
	if !b.gate.tryAdmitProducer() {
		return 0, ErrWouldBlock
	}
	id := b.seq.Next()
	b.put(id)
	return id, nil
}

// Consume runs one consumer iteration and returns the identifier it
// drained. It blocks while the buffer is empty.
func (b *Buffer) Consume() uint64 {
	b.gate.admitConsumer()
	item := b.take()
	b.val.ExpectAndAdvance(item)
	return item
}

// TryConsume drains one item if any is available.
// Returns (0, ErrWouldBlock) if the buffer is empty.
func (b *Buffer) TryConsume() (uint64, error) {
	if !b.gate.tryAdmitConsumer() {
		return 0, ErrWouldBlock
	}
	item := b.take()
	b.val.ExpectAndAdvance(item)
	return item, nil
}

// RunProducer calls Produce forever.
func (b *Buffer) RunProducer() {
	for {
		b.Produce()
	}
}

// RunConsumer calls Consume forever.
func (b *Buffer) RunConsumer() {
	for {
		b.Consume()
	}
}

// put publishes id into a slot the caller has already claimed.
func (b *Buffer) put(id uint64) {
	b.mu.Lock()
	overwrote := b.store.publish(id)
	b.mu.Unlock()

	if overwrote {
		b.overwrites.Add(1)
	}
	// Raise the filled gauge before any consumer can be admitted.
	b.metrics.recordProduce()
	b.gate.signalFilled()
}

// take drains a slot the caller has already claimed.
func (b *Buffer) take() uint64 {
	b.mu.Lock()
	item, seen := b.store.observe()
	b.mu.Unlock()
	b.gate.signalFree()

	switch {
	case seen == 0:
		b.emptyReads.Add(1)
	case seen != item:
		b.tornReads.Add(1)
	}
	b.metrics.recordConsume()
	return item
}

// Cap returns the buffer capacity.
func (b *Buffer) Cap() int {
	return len(b.store.items)
}

// Len returns the number of filled slots not yet claimed by a consumer.
func (b *Buffer) Len() int {
	return int(b.gate.filled.Value())
}

// SlotState returns the externally observable state of slot i.
// Panics if i is out of range.
func (b *Buffer) SlotState(i int) SlotState {
	if b.store.marker(i) != 0 {
		return SlotPublished
	}
	return SlotEmpty
}

// Stats returns a snapshot of the buffer counters. Fields are read
// independently and may not be mutually consistent under load.
func (b *Buffer) Stats() Stats {
	return Stats{
		Capacity:   b.Cap(),
		Produced:   b.seq.Current(),
		Consumed:   b.val.Consumed(),
		Free:       int(b.gate.free.Value()),
		Filled:     int(b.gate.filled.Value()),
		Overwrites: b.overwrites.Load(),
		EmptyReads: b.emptyReads.Load(),
		TornReads:  b.tornReads.Load(),
	}
}
