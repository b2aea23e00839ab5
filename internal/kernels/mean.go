package kernels

import "github.com/tphakala/go-waveform-dsp/internal/ufunc"

const meanDoc = `Calculates the arithmetic mean of each waveform.

Parameters
----------
w_in : waveform to average
a_out : mean of w_in

Processing Chain Example
------------------------
"bl_mean": {
    "function": "mean",
    "module": "wavedsp",
    "args": ["wf_bl", "bl_mean"],
    "prereqs": ["wf_bl"],
    "unit": "ADC"
}`

// meanKernel averages the samples of each row. Accumulation runs in the
// waveform's own element type, in ascending sample order, so both
// dispatch forms produce identical bits.
func meanKernel[T ufunc.Float](win ufunc.Block[T], out ufunc.Scalars[T]) {
	n := win.Cols()
	for r := 0; r < win.Rows(); r++ {
		var sum T
		for c := 0; c < n; c++ {
			sum += win.At(r, c)
		}
		out.Set(r, sum/T(n))
	}
}

func meanVariant[T ufunc.Float]() ufunc.Variant {
	k := func(c *ufunc.Call, seq, rows int) {
		meanKernel(ufunc.MapBlock[T](c, 0, seq, rows), ufunc.MapScalars[T](c, 1, seq, rows))
	}
	return ufunc.Variant{
		Args:     []ufunc.ArgSpec{ufunc.SeqIn[T](), ufunc.ScalarOut[T]()},
		Aligned:  k,
		Fallback: k,
	}
}

func init() {
	ufunc.Register(ufunc.NewOp("mean", "(n)->()", meanDoc,
		meanVariant[float32](), meanVariant[float64]()))
}
