package kernels

import (
	"math"

	"github.com/tphakala/go-waveform-dsp/internal/ufunc"
)

const linearSlopeFitDoc = `Fits a least-squares line to the waveform over its sample index.

Useful for baseline characterization: the mean and sigma describe the
sample distribution, the slope flags a drifting baseline.

Parameters
----------
w_in : input waveform
a_mean : mean of the samples
a_sigma : sample standard deviation of the samples
a_slope : slope of the fitted line, per sample
a_intercept : value of the fitted line at sample 0

Processing Chain Example
------------------------
"bl_fit": {
    "function": "linear_slope_fit",
    "module": "wavedsp",
    "args": ["wf_bl", "bl_mean", "bl_sigma", "bl_slope", "bl_intercept"],
    "prereqs": ["wf_bl"],
    "unit": ["ADC", "ADC", "ADC/sample", "ADC"]
}`

// linearSlopeFit accumulates the running sums of the closed-form
// least-squares solution in float64 regardless of the waveform type,
// in ascending sample order on both dispatch forms.
func linearSlopeFit[T ufunc.Float](win ufunc.Block[T], mean, sigma, slope, intercept ufunc.Scalars[T]) {
	n := win.Cols()
	nf := float64(n)
	// Index sums have closed forms: sum i and sum i^2 over [0, n).
	sx := nf * (nf - 1) / 2
	sxx := nf * (nf - 1) * (2*nf - 1) / 6

	for r := 0; r < win.Rows(); r++ {
		var sy, syy, sxy float64
		for c := 0; c < n; c++ {
			v := float64(win.At(r, c))
			sy += v
			syy += v * v
			sxy += float64(c) * v
		}

		m := sy / nf
		mean.Set(r, T(m))

		if n > 1 {
			sigma.Set(r, T(math.Sqrt(math.Max(0, (syy-nf*m*m)/(nf-1)))))
			b := (nf*sxy - sx*sy) / (nf*sxx - sx*sx)
			slope.Set(r, T(b))
			intercept.Set(r, T((sy-b*sx)/nf))
		} else {
			sigma.Set(r, 0)
			slope.Set(r, 0)
			intercept.Set(r, T(m))
		}
	}
}

func linearSlopeFitVariant[T ufunc.Float]() ufunc.Variant {
	k := func(c *ufunc.Call, seq, rows int) {
		linearSlopeFit(
			ufunc.MapBlock[T](c, 0, seq, rows),
			ufunc.MapScalars[T](c, 1, seq, rows),
			ufunc.MapScalars[T](c, 2, seq, rows),
			ufunc.MapScalars[T](c, 3, seq, rows),
			ufunc.MapScalars[T](c, 4, seq, rows),
		)
	}
	return ufunc.Variant{
		Args: []ufunc.ArgSpec{
			ufunc.SeqIn[T](),
			ufunc.ScalarOut[T](), ufunc.ScalarOut[T](),
			ufunc.ScalarOut[T](), ufunc.ScalarOut[T](),
		},
		Aligned:  k,
		Fallback: k,
	}
}

func init() {
	ufunc.Register(ufunc.NewOp("linear_slope_fit", "(n)->(),(),(),()", linearSlopeFitDoc,
		linearSlopeFitVariant[float32](), linearSlopeFitVariant[float64]()))
}
