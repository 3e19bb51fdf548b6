// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bounded

// Producer is the producing side of a Buffer.
type Producer interface {
	// Produce publishes the next identifier, blocking while the buffer
	// is full, and returns it.
	Produce() uint64

	// TryProduce publishes the next identifier without blocking.
	// Returns (0, ErrWouldBlock) if the buffer is full.
	TryProduce() (uint64, error)
}

// Consumer is the consuming side of a Buffer.
type Consumer interface {
	// Consume drains the oldest published item, blocking while the
	// buffer is empty, checks it against the issue order and returns it.
	Consume() uint64

	// TryConsume is the non-blocking form of Consume.
	// Returns (0, ErrWouldBlock) if the buffer is empty.
	TryConsume() (uint64, error)
}

// Queue is the combined producer-consumer interface.
type Queue interface {
	Producer
	Consumer
	Cap() int
}

var _ Queue = (*Buffer)(nil)

// SlotState is the lifecycle state of a single slot.
//
//	Empty → Publishing → Published → Draining → Empty
//
// Publishing and Draining exist only while the cursor lock is held, so
// SlotState observed from outside is always Empty or Published.
type SlotState uint8

const (
	SlotEmpty SlotState = iota
	SlotPublishing
	SlotPublished
	SlotDraining
)

func (s SlotState) String() string {
	switch s {
	case SlotEmpty:
		return "Empty"
	case SlotPublishing:
		return "Publishing"
	case SlotPublished:
		return "Published"
	case SlotDraining:
		return "Draining"
	default:
		return "Unknown"
	}
}

// Stats is a point-in-time snapshot of buffer counters.
type Stats struct {
	Capacity int
	Produced uint64 // identifiers issued
	Consumed uint64 // items checked by the validator
	Free     int    // free slots not yet claimed
	Filled   int    // filled slots not yet claimed

	// Protocol anomaly counters. All three stay zero while the gate and
	// checker uphold the handoff.
	Overwrites uint64 // publishes into a slot still carrying a marker
	EmptyReads uint64 // drains of a slot with no marker
	TornReads  uint64 // drains whose item differs from its marker
}
