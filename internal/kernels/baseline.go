package kernels

import "github.com/tphakala/go-waveform-dsp/internal/ufunc"

const blSubtractDoc = `Subtracts a baseline value from every sample of the waveform.

Parameters
----------
w_in : input waveform
a_baseline : baseline to subtract, one value per waveform or a single
             broadcast value
w_out : baseline-subtracted waveform

Processing Chain Example
------------------------
"wf_blsub": {
    "function": "bl_subtract",
    "module": "wavedsp",
    "args": ["waveform", "baseline", "wf_blsub"],
    "prereqs": ["waveform", "baseline"],
    "unit": "ADC"
}`

// blSubtract shifts each row by its baseline. A non-finite baseline or
// sample poisons out[0]; the remaining samples are computed elementwise,
// so the poison does not propagate the way it does for the recursive
// filters, but any non-finite input still yields non-finite output at
// the affected samples.
func blSubtract[T ufunc.Float](win ufunc.Block[T], bl ufunc.Scalars[T], wout ufunc.Block[T]) {
	n := win.Cols()
	for r := 0; r < win.Rows(); r++ {
		b := bl.At(r)
		if !isFinite(float64(b)) || !rowFinite(win, r) {
			wout.Set(r, 0, nan[T]())
		} else {
			wout.Set(r, 0, win.At(r, 0)-b)
		}
		for i := 1; i < n; i++ {
			wout.Set(r, i, win.At(r, i)-b)
		}
	}
}

func blSubtractVariant[T ufunc.Float]() ufunc.Variant {
	k := func(c *ufunc.Call, seq, rows int) {
		blSubtract(
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
	ufunc.Register(ufunc.NewOp("bl_subtract", "(n),()->(n)", blSubtractDoc,
		blSubtractVariant[float32](), blSubtractVariant[float64]()))
}
