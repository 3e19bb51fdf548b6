// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bounded_test

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"code.hybscloud.com/bounded"
	"code.hybscloud.com/iox"
)

func TestIsWouldBlock(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"ErrWouldBlock", bounded.ErrWouldBlock, true},
		{"wrapped", fmt.Errorf("produce: %w", bounded.ErrWouldBlock), true},
		{"other error", errors.New("other"), false},
	}

	for tt := range slices.Values(tests) {
		t.Run(tt.name, func(t *testing.T) {
			if got := bounded.IsWouldBlock(tt.err); got != tt.want {
				t.Errorf("IsWouldBlock(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsSemantic(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"ErrWouldBlock", bounded.ErrWouldBlock, true},
		{"iox.ErrWouldBlock", iox.ErrWouldBlock, true},
		{"other error", errors.New("other"), false},
	}

	for tt := range slices.Values(tests) {
		t.Run(tt.name, func(t *testing.T) {
			if got := bounded.IsSemantic(tt.err); got != tt.want {
				t.Errorf("IsSemantic(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsNonFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, true},
		{"ErrWouldBlock", bounded.ErrWouldBlock, true},
		{"iox.ErrWouldBlock", iox.ErrWouldBlock, true},
		{"other error", errors.New("failure"), false},
	}

	for tt := range slices.Values(tests) {
		t.Run(tt.name, func(t *testing.T) {
			if got := bounded.IsNonFailure(tt.err); got != tt.want {
				t.Errorf("IsNonFailure(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

// TestIntegrityViolationIsNotWouldBlock guards against violations being
// mistaken for control flow by callers that classify panics as errors.
func TestIntegrityViolationIsNotWouldBlock(t *testing.T) {
	var err error = &bounded.IntegrityViolation{Got: 2, Want: 1}
	if bounded.IsNonFailure(err) {
		t.Fatal("IsNonFailure(IntegrityViolation) = true")
	}
	want := "bounded: sequence integrity violation: consumed 2, want 1"
	if err.Error() != want {
		t.Fatalf("Error: got %q, want %q", err.Error(), want)
	}
}
