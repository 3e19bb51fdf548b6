// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bounded

import (
	"fmt"

	"code.hybscloud.com/atomix"
)

// Sequence issues 1-based, strictly increasing identifiers.
// The zero value is ready to use and safe for concurrent callers.
type Sequence struct {
	_     pad
	value atomix.Uint64
	_     padShort
}

// Next returns the next identifier.
func (s *Sequence) Next() uint64 {
	return s.value.AddAcqRel(1)
}

// Current returns the last identifier issued, or 0 if none was.
func (s *Sequence) Current() uint64 {
	return s.value.LoadAcquire()
}

// IntegrityViolation describes an item consumed out of issue order.
//
// It is delivered to the violation handler and, by default, raised as a
// panic. It is never returned as an error from a Buffer operation.
type IntegrityViolation struct {
	Got  uint64 // identifier that was consumed
	Want uint64 // identifier expected at this position
}

func (v *IntegrityViolation) Error() string {
	return fmt.Sprintf("bounded: sequence integrity violation: consumed %d, want %d", v.Got, v.Want)
}

// ViolationHandler is called when a consumed item breaks issue order.
type ViolationHandler func(v *IntegrityViolation)

// Abort is the default ViolationHandler. It panics with v; on a producer
// or consumer goroutine this terminates the process.
func Abort(v *IntegrityViolation) {
	panic(v)
}

// Validator checks that consumed identifiers arrive in issue order.
// The zero value reports mismatches to Abort.
type Validator struct {
	_         pad
	consumed  atomix.Uint64
	_         padShort
	onViolate ViolationHandler
}

// NewValidator creates a Validator reporting mismatches to h.
// A nil h selects Abort.
func NewValidator(h ViolationHandler) *Validator {
	v := &Validator{}
	v.setup(h)
	return v
}

func (v *Validator) setup(h ViolationHandler) {
	v.onViolate = h
}

// ExpectAndAdvance counts one consumption and requires id to equal the
// count. A mismatch is handed to the violation handler; the count still
// advances.
func (v *Validator) ExpectAndAdvance(id uint64) {
	want := v.consumed.AddAcqRel(1)
	if id == want {
		return
	}
	h := v.onViolate
	if h == nil {
		h = Abort
	}
	h(&IntegrityViolation{Got: id, Want: want})
}

// Consumed returns the number of consumptions checked so far.
func (v *Validator) Consumed() uint64 {
	return v.consumed.LoadAcquire()
}
