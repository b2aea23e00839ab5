// Package kernels implements the signal-processing operations exposed
// through the ufunc dispatch runtime and registers them at startup.
//
// Every kernel consumes baseline-relative samples and writes its results
// in place through caller-owned views. Non-finite inputs are never
// errors: they poison the first output sample with NaN, which the
// recursive filters then propagate forward on their own.
package kernels

import (
	"math"

	"github.com/tphakala/go-waveform-dsp/internal/ufunc"
)

// nan returns a quiet NaN in the waveform's element type.
func nan[T ufunc.Float]() T {
	return T(math.NaN())
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// rowFinite reports whether every sample of row r is finite.
func rowFinite[T ufunc.Float](w ufunc.Block[T], r int) bool {
	for c := 0; c < w.Cols(); c++ {
		if !isFinite(float64(w.At(r, c))) {
			return false
		}
	}
	return true
}

// roundInt rounds a window length parameter to the nearest integer
// number of samples.
func roundInt(v float64) int {
	return int(math.Round(v))
}
