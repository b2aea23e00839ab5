// Package testutil provides reusable test helper functions for waveform DSP tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance = 1e-10
	LargeTauDrift    = 1e-6
)

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertAllNaNFrom verifies that every element at index >= from is NaN
// and every element before it is not.
func AssertAllNaNFrom(t *testing.T, s []float64, from int, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if i >= from && !math.IsNaN(v) {
			return assert.Fail(t, "expected NaN", "s[%d]=%v, want NaN", i, v)
		}
		if i < from && math.IsNaN(v) {
			return assert.Fail(t, "unexpected NaN", "s[%d] is NaN", i)
		}
	}
	return true
}

// AssertSameBits verifies two slices are bit-identical, treating NaN as
// equal to NaN. Use for dispatch-path equivalence checks where ordinary
// float comparison would reject the NaN-poisoned samples.
func AssertSameBits(t *testing.T, want, got []float64, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Len(t, got, len(want), msgAndArgs...) {
		return false
	}
	for i := range want {
		if math.Float64bits(want[i]) != math.Float64bits(got[i]) {
			return assert.Fail(t, "bit mismatch",
				"index %d: want %v (%#x), got %v (%#x)",
				i, want[i], math.Float64bits(want[i]), got[i], math.Float64bits(got[i]))
		}
	}
	return true
}

// AssertSameBits32 is AssertSameBits for float32 slices.
func AssertSameBits32(t *testing.T, want, got []float32, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Len(t, got, len(want), msgAndArgs...) {
		return false
	}
	for i := range want {
		if math.Float32bits(want[i]) != math.Float32bits(got[i]) {
			return assert.Fail(t, "bit mismatch",
				"index %d: want %v, got %v", i, want[i], got[i])
		}
	}
	return true
}

// Constant returns a waveform of n samples all equal to v.
func Constant(n int, v float64) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = v
	}
	return s
}

// Ramp returns a waveform of n samples rising linearly from 0.
func Ramp(n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = float64(i)
	}
	return s
}

// Decay returns a step at index t0 decaying exponentially with time
// constant tau, the canonical preamplifier-style test waveform.
func Decay(n, t0 int, amp, tau float64) []float64 {
	s := make([]float64, n)
	for i := t0; i < n; i++ {
		s[i] = amp * math.Exp(-float64(i-t0)/tau)
	}
	return s
}
