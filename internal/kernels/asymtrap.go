package kernels

import "github.com/tphakala/go-waveform-dsp/internal/ufunc"

const asymTrapDoc = `Applies an asymmetric trapezoidal filter to the waveform.

The rising and falling averaging sections have independent lengths and
each section is normalized by its own length, so the output is an
average rather than an integrated amplitude.

Parameters
----------
w_in : input waveform
rise : number of samples averaged in the rise section
flat : delay between the rise and fall sections
fall : number of samples averaged in the fall section
w_out : waveform after asymmetric trap filter applied

Processing Chain Example
------------------------
"wf_atrap": {
    "function": "asym_trap_filter",
    "module": "wavedsp",
    "args": ["wf_pz", "128", "64", "2*us", "wf_atrap"],
    "prereqs": ["wf_pz"],
    "unit": "ADC"
}`

// asymTrap runs the four-segment recurrence with independent rise and
// fall windows, normalizing rise-side samples by rise and fall-side
// samples by fall. NaN poisoning matches the symmetric filter.
func asymTrap[W ufunc.Float](win ufunc.Block[W], rise, flat, fall float64, wout ufunc.Block[W]) {
	riseInt := roundInt(rise)
	flatInt := roundInt(flat)
	fallInt := roundInt(fall)
	n := win.Cols()

	for r := 0; r < win.Rows(); r++ {
		if rowFinite(win, r) {
			wout.Set(r, 0, W(float64(win.At(r, 0))/rise))
		} else {
			wout.Set(r, 0, nan[W]())
		}

		i := 1
		for ; i < min(riseInt, n); i++ {
			wout.Set(r, i, wout.At(r, i-1)+W(float64(win.At(r, i))/rise))
		}
		for ; i < min(riseInt+flatInt, n); i++ {
			wout.Set(r, i, wout.At(r, i-1)+W(float64(win.At(r, i)-win.At(r, i-riseInt))/rise))
		}
		for ; i < min(riseInt+flatInt+fallInt, n); i++ {
			wout.Set(r, i, wout.At(r, i-1)+W(float64(win.At(r, i)-win.At(r, i-riseInt))/rise)-
				W(float64(win.At(r, i-riseInt-flatInt))/fall))
		}
		for ; i < n; i++ {
			wout.Set(r, i, wout.At(r, i-1)+W(float64(win.At(r, i)-win.At(r, i-riseInt))/rise)-
				W(float64(win.At(r, i-riseInt-flatInt)-win.At(r, i-riseInt-flatInt-fallInt))/fall))
		}
	}
}

func asymTrapVariant[W ufunc.Float, P timeParam]() ufunc.Variant {
	k := func(c *ufunc.Call, seq, rows int) {
		asymTrap(
			ufunc.MapBlock[W](c, 0, seq, rows),
			float64(ufunc.MapParam[P](c, 1, seq)),
			float64(ufunc.MapParam[P](c, 2, seq)),
			float64(ufunc.MapParam[P](c, 3, seq)),
			ufunc.MapBlock[W](c, 4, seq, rows),
		)
	}
	return ufunc.Variant{
		Args: []ufunc.ArgSpec{
			ufunc.SeqIn[W](), ufunc.Param[P](), ufunc.Param[P](), ufunc.Param[P](), ufunc.SeqOut[W](),
		},
		Aligned:  k,
		Fallback: k,
	}
}

func init() {
	ufunc.Register(ufunc.NewOp("asym_trap_filter", "(n),(),(),()->(n)", asymTrapDoc,
		asymTrapVariant[float32, int32](),
		asymTrapVariant[float64, int32](),
		asymTrapVariant[float32, float64](),
		asymTrapVariant[float64, float64](),
	))
}
