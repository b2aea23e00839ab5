package kernels

import "github.com/tphakala/go-waveform-dsp/internal/ufunc"

const fixedTimePickoffDoc = `Picks off the waveform value at a fixed sample index.

Parameters
----------
w_in : input waveform
t_in : sample index to pick off, rounded to the nearest integer
a_out : w_in at the requested index, or NaN if the index is non-finite
        or outside the waveform

Processing Chain Example
------------------------
"trapEftp": {
    "function": "fixed_time_pickoff",
    "module": "wavedsp",
    "args": ["wf_trap", "tp_0+10*us", "trapEftp"],
    "prereqs": ["wf_trap", "tp_0"],
    "unit": "ADC"
}`

const minMaxDoc = `Finds the minimum and maximum sample of each waveform.

Parameters
----------
w_in : input waveform
t_min : index of the minimum sample (first occurrence)
t_max : index of the maximum sample (first occurrence)
a_min : minimum sample value
a_max : maximum sample value

Processing Chain Example
------------------------
"wf_extrema": {
    "function": "min_max",
    "module": "wavedsp",
    "args": ["waveform", "t_min", "t_max", "wf_min", "wf_max"],
    "prereqs": ["waveform"],
    "unit": "ADC"
}`

func fixedTimePickoff[T ufunc.Float](win ufunc.Block[T], t ufunc.Scalars[T], out ufunc.Scalars[T]) {
	n := win.Cols()
	for r := 0; r < win.Rows(); r++ {
		tv := float64(t.At(r))
		if !isFinite(tv) {
			out.Set(r, nan[T]())
			continue
		}
		idx := roundInt(tv)
		if idx < 0 || idx >= n {
			out.Set(r, nan[T]())
			continue
		}
		out.Set(r, win.At(r, idx))
	}
}

// minMax scans each row once, reporting the first occurrence of the
// extreme values. NaN samples never win a comparison, so a row with a
// stray NaN still reports its finite extrema.
func minMax[T ufunc.Float](win ufunc.Block[T], tMin, tMax ufunc.Scalars[int32], aMin, aMax ufunc.Scalars[T]) {
	n := win.Cols()
	for r := 0; r < win.Rows(); r++ {
		minVal, maxVal := win.At(r, 0), win.At(r, 0)
		minIdx, maxIdx := int32(0), int32(0)
		for c := 1; c < n; c++ {
			v := win.At(r, c)
			if v < minVal {
				minVal, minIdx = v, int32(c)
			}
			if v > maxVal {
				maxVal, maxIdx = v, int32(c)
			}
		}
		tMin.Set(r, minIdx)
		tMax.Set(r, maxIdx)
		aMin.Set(r, minVal)
		aMax.Set(r, maxVal)
	}
}

func fixedTimePickoffVariant[T ufunc.Float]() ufunc.Variant {
	k := func(c *ufunc.Call, seq, rows int) {
		fixedTimePickoff(
			ufunc.MapBlock[T](c, 0, seq, rows),
			ufunc.MapScalars[T](c, 1, seq, rows),
			ufunc.MapScalars[T](c, 2, seq, rows),
		)
	}
	return ufunc.Variant{
		Args:     []ufunc.ArgSpec{ufunc.SeqIn[T](), ufunc.ScalarIn[T](), ufunc.ScalarOut[T]()},
		Aligned:  k,
		Fallback: k,
	}
}

func minMaxVariant[T ufunc.Float]() ufunc.Variant {
	k := func(c *ufunc.Call, seq, rows int) {
		minMax(
			ufunc.MapBlock[T](c, 0, seq, rows),
			ufunc.MapScalars[int32](c, 1, seq, rows),
			ufunc.MapScalars[int32](c, 2, seq, rows),
			ufunc.MapScalars[T](c, 3, seq, rows),
			ufunc.MapScalars[T](c, 4, seq, rows),
		)
	}
	return ufunc.Variant{
		Args: []ufunc.ArgSpec{
			ufunc.SeqIn[T](),
			ufunc.ScalarOut[int32](), ufunc.ScalarOut[int32](),
			ufunc.ScalarOut[T](), ufunc.ScalarOut[T](),
		},
		Aligned:  k,
		Fallback: k,
	}
}

func init() {
	ufunc.Register(ufunc.NewOp("fixed_time_pickoff", "(n),()->()", fixedTimePickoffDoc,
		fixedTimePickoffVariant[float32](), fixedTimePickoffVariant[float64]()))
	ufunc.Register(ufunc.NewOp("min_max", "(n)->(),(),(),()", minMaxDoc,
		minMaxVariant[float32](), minMaxVariant[float64]()))
}
