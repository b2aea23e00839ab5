package kernels

import "github.com/tphakala/go-waveform-dsp/internal/ufunc"

// timeParam constrains the window-length parameter types accepted by the
// trapezoidal filters.
type timeParam interface {
	int32 | float64
}

const trapFilterDoc = `Applies a symmetric trapezoidal filter (rise = fall) to the waveform.

Parameters
----------
w_in : input waveform
rise : number of samples averaged in the rise and fall sections
flat : delay between the rise and fall sections, typically around 3us
       for ICPC energy estimation, lower for detectors with shorter
       drift times
w_out : waveform after trap filter applied

Processing Chain Example
------------------------
"wf_trap": {
    "function": "trap_filter",
    "module": "wavedsp",
    "args": ["wf_pz", "10*us", "3*us", "wf_trap"],
    "prereqs": ["wf_pz"],
    "unit": "ADC"
}`

const trapNormDoc = `Applies an amplitude-normalized symmetric trapezoidal filter.

Identical to trap_filter except every output sample is divided by the
rise parameter (the exact value supplied, not the rounded window
length), yielding a rate-like quantity. Rise and flat must be given in
consistent sample units.

Parameters
----------
w_in : input waveform
rise : number of samples averaged in the rise and fall sections
flat : delay between the rise and fall sections
w_out : waveform after normalized trap filter applied

Processing Chain Example
------------------------
"wf_trap": {
    "function": "trap_norm",
    "module": "wavedsp",
    "args": ["wf_pz", "10*us", "3*us", "wf_trap"],
    "prereqs": ["wf_pz"],
    "unit": "ADC"
}`

// trapFilter runs the four-segment recursive trapezoid over each row.
// rise and flat are rounded to whole samples for all window offsets and
// segment boundaries. Both must be non-negative and the waveform long
// enough for the windows; violations are a caller error.
func trapFilter[W ufunc.Float](win ufunc.Block[W], rise, flat float64, wout ufunc.Block[W]) {
	riseInt := roundInt(rise)
	flatInt := roundInt(flat)
	n := win.Cols()

	for r := 0; r < win.Rows(); r++ {
		if rowFinite(win, r) {
			wout.Set(r, 0, win.At(r, 0))
		} else {
			wout.Set(r, 0, nan[W]())
		}

		i := 1
		for ; i < min(riseInt, n); i++ {
			wout.Set(r, i, wout.At(r, i-1)+win.At(r, i))
		}
		for ; i < min(riseInt+flatInt, n); i++ {
			wout.Set(r, i, wout.At(r, i-1)+win.At(r, i)-win.At(r, i-riseInt))
		}
		for ; i < min(2*riseInt+flatInt, n); i++ {
			wout.Set(r, i, wout.At(r, i-1)+win.At(r, i)-win.At(r, i-riseInt)-win.At(r, i-riseInt-flatInt))
		}
		for ; i < n; i++ {
			wout.Set(r, i, wout.At(r, i-1)+win.At(r, i)-win.At(r, i-riseInt)-
				win.At(r, i-riseInt-flatInt)+win.At(r, i-2*riseInt-flatInt))
		}
	}
}

// trapNorm is trapFilter with every output sample divided by the
// unrounded rise parameter. The accumulation windows still use the
// rounded rise, so for fractional rise values the divisor and the
// window length intentionally disagree.
func trapNorm[W ufunc.Float](win ufunc.Block[W], rise, flat float64, wout ufunc.Block[W]) {
	trapFilter(win, rise, flat, wout)
	n := win.Cols()
	for r := 0; r < win.Rows(); r++ {
		for i := 0; i < n; i++ {
			wout.Set(r, i, W(float64(wout.At(r, i))/rise))
		}
	}
}

func trapVariant[W ufunc.Float, P timeParam](body func(ufunc.Block[W], float64, float64, ufunc.Block[W])) ufunc.Variant {
	k := func(c *ufunc.Call, seq, rows int) {
		body(
			ufunc.MapBlock[W](c, 0, seq, rows),
			float64(ufunc.MapParam[P](c, 1, seq)),
			float64(ufunc.MapParam[P](c, 2, seq)),
			ufunc.MapBlock[W](c, 3, seq, rows),
		)
	}
	return ufunc.Variant{
		Args: []ufunc.ArgSpec{
			ufunc.SeqIn[W](), ufunc.Param[P](), ufunc.Param[P](), ufunc.SeqOut[W](),
		},
		Aligned:  k,
		Fallback: k,
	}
}

func init() {
	ufunc.Register(ufunc.NewOp("trap_filter", "(n),(),()->(n)", trapFilterDoc,
		trapVariant[float32, int32](trapFilter[float32]),
		trapVariant[float64, int32](trapFilter[float64]),
		trapVariant[float32, float64](trapFilter[float32]),
		trapVariant[float64, float64](trapFilter[float64]),
	))
	ufunc.Register(ufunc.NewOp("trap_norm", "(n),(),()->(n)", trapNormDoc,
		trapVariant[float32, int32](trapNorm[float32]),
		trapVariant[float64, int32](trapNorm[float64]),
		trapVariant[float32, float64](trapNorm[float32]),
		trapVariant[float64, float64](trapNorm[float64]),
	))
}
