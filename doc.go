// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package bounded provides a blocking bounded buffer for any number of
// producer and consumer goroutines, with a built-in sequence integrity
// check.
//
// # Quick Start
//
//	b := bounded.New(12).Build()
//
//	for range producers {
//	    go b.RunProducer()
//	}
//	for range consumers {
//	    go b.RunConsumer()
//	}
//
// Each produced item is the next identifier of the buffer's [Sequence]
// (1, 2, 3, ...). Each consumed item is checked by the buffer's
// [Validator]: the k-th consumption must carry identifier k.
//
// # Transfer Protocol
//
// A producer iteration:
//
//	id := seq.Next()          // draw identifier
//	free.Acquire()            // wait for a free slot
//	lock
//	items[w] = id             // write
//	checker[w] ← id (release) // publish
//	w = (w + 1) mod N
//	unlock
//	filled.Release()          // wake one consumer
//
// A consumer iteration:
//
//	filled.Acquire()          // wait for a filled slot
//	lock
//	seen := checker[r] (acquire)
//	item := items[r]
//	checker[r] ← 0
//	r = (r + 1) mod N
//	unlock
//	free.Release()            // wake one producer
//	validator.ExpectAndAdvance(item)
//
// The only suspension points are the two Acquire calls. Neither has a
// timeout or cancellation: a consumer with no producer blocks forever.
// There is no close or drain protocol.
//
// # Slot Lifecycle
//
// Every slot moves through
//
//	Empty → Publishing → Published → Draining → Empty
//
// driven by the single producer and the single consumer that own the item
// in it. The semaphores keep producers off slots that are not Empty and
// consumers off slots that are not Published; the per-slot checker is what
// the consumer uses to observe the producer's write.
//
// [Stats] counts three protocol anomalies (Overwrites, EmptyReads,
// TornReads). They stay zero for every interleaving.
//
// # Integrity Violations
//
// A consumed identifier that differs from the expected position is a
// sequence integrity violation. The violation is passed to the
// [ViolationHandler] set with [Builder.OnViolation]; the default, [Abort],
// panics with an [*IntegrityViolation], which terminates the process when
// raised on a producer or consumer goroutine. Violations are never
// returned as errors.
//
// With a single producer, identifiers are published in issue order and the
// check never fires. With several producers it can: Produce draws its
// identifier before it wins a free slot, so two producers may publish
// their identifiers in the opposite order. This is observable behavior of
// the buffer, not a fault of the transfer protocol.
//
// # Non-blocking Variants
//
// [Buffer.TryProduce] and [Buffer.TryConsume] return [ErrWouldBlock]
// instead of waiting. TryProduce claims its slot before it draws the
// identifier, so a failed attempt does not leave a gap in the sequence.
//
//	backoff := iox.Backoff{}
//	for {
//	    if _, err := b.TryProduce(); err == nil {
//	        backoff.Reset()
//	        continue
//	    }
//	    backoff.Wait()
//	}
//
// # Observability
//
// [Builder.Metrics] registers Prometheus collectors (bounded_produced_total,
// bounded_consumed_total, bounded_filled_slots,
// bounded_integrity_violations_total) and [Builder.Logger] routes
// construction and violation records to a [log/slog] logger.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/atomix] for the checker and
// counters with explicit memory ordering, [code.hybscloud.com/spin] for
// the semaphore's spin phase, [code.hybscloud.com/iox] for semantic
// errors, and [github.com/prometheus/client_golang] for metrics.
package bounded
