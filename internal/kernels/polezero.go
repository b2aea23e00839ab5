package kernels

import (
	"math"

	"github.com/tphakala/go-waveform-dsp/internal/ufunc"
)

const poleZeroDoc = `Applies a pole-zero correction using time constant tau.

Parameters
----------
w_in : waveform to apply pole-zero correction to; needs to be baseline subtracted
t_tau : time constant of exponential decay to be deconvolved
w_out : pole-zero corrected waveform

Processing Chain Example
------------------------
"wf_pz": {
    "function": "pole_zero",
    "module": "wavedsp",
    "args": ["wf_blsub", "db.pz.tau", "wf_pz"],
    "prereqs": ["wf_blsub"],
    "unit": "ADC",
    "defaults": { "db.pz.tau": "74*us" }
}`

// poleZero deconvolves a single exponential decay of time constant tau
// from each row: out[i] = out[i-1] + in[i] - in[i-1]*exp(-1/tau).
// A non-finite sample or tau poisons out[0] with NaN; the recurrence
// carries the poison through the rest of the row without further checks.
func poleZero[T ufunc.Float](win ufunc.Block[T], tau ufunc.Scalars[T], wout ufunc.Block[T]) {
	n := win.Cols()
	for r := 0; r < win.Rows(); r++ {
		t := float64(tau.At(r))
		decay := T(math.Exp(-1.0 / t))
		if isFinite(t) && rowFinite(win, r) {
			wout.Set(r, 0, win.At(r, 0))
		} else {
			wout.Set(r, 0, nan[T]())
		}
		for i := 1; i < n; i++ {
			wout.Set(r, i, wout.At(r, i-1)+win.At(r, i)-win.At(r, i-1)*decay)
		}
	}
}

func poleZeroVariant[T ufunc.Float]() ufunc.Variant {
	k := func(c *ufunc.Call, seq, rows int) {
		poleZero(
			ufunc.MapBlock[T](c, 0, seq, rows),
			ufunc.MapScalars[T](c, 1, seq, rows),
			ufunc.MapBlock[T](c, 2, seq, rows),
		)
	}
	return ufunc.Variant{
		Args:     []ufunc.ArgSpec{ufunc.SeqIn[T](), ufunc.ScalarIn[T](), ufunc.SeqOut[T]()},
		Aligned:  k,
		Fallback: k,
	}
}

func init() {
	ufunc.Register(ufunc.NewOp("pole_zero", "(n),()->(n)", poleZeroDoc,
		poleZeroVariant[float32](), poleZeroVariant[float64]()))
}
