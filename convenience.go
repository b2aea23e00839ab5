package wavedsp

import (
	"fmt"

	"github.com/tphakala/go-waveform-dsp/internal/simdops"
)

// mustOp fetches a built-in operation; a miss is a startup bug.
func mustOp(name string) *Op {
	op, ok := Lookup(name)
	if !ok {
		panic(fmt.Sprintf("wavedsp: built-in operation %q not registered", name))
	}
	return op
}

// seqToSeq runs a (n),...->(n) operation over wfs with the given
// parameter buffers between the input and output positions.
func seqToSeq[T Float](name string, wfs [][]T, params ...Buffer) ([][]T, error) {
	in, err := NewAlignedCollection(wfs)
	if err != nil {
		return nil, err
	}
	out := in.NewLike()

	bufs := make([]Buffer, 0, len(params)+2)
	bufs = append(bufs, in.Buffer())
	bufs = append(bufs, params...)
	bufs = append(bufs, out.Buffer())

	if err := mustOp(name).Call(bufs, in.Seqs(), in.Samples()); err != nil {
		return nil, err
	}
	return out.Waveforms(), nil
}

func meanGeneric[T Float](wfs [][]T) ([]T, error) {
	in, err := NewAlignedCollection(wfs)
	if err != nil {
		return nil, err
	}
	out := AlignedSlice[T](in.Seqs())
	if err := mustOp("mean").Call(
		[]Buffer{in.Buffer(), ScalarBuffer(out)}, in.Seqs(), in.Samples()); err != nil {
		return nil, err
	}
	return out, nil
}

// Mean returns the arithmetic mean of each waveform.
func Mean(wfs [][]float64) ([]float64, error) { return meanGeneric(wfs) }

// MeanFloat32 is like Mean for float32 samples.
func MeanFloat32(wfs [][]float32) ([]float32, error) { return meanGeneric(wfs) }

func poleZeroGeneric[T Float](wfs [][]T, tau T) ([][]T, error) {
	return seqToSeq("pole_zero", wfs, BroadcastBuffer(&tau))
}

// PoleZero deconvolves a single exponential decay of time constant tau
// (in samples) from each baseline-subtracted waveform.
func PoleZero(wfs [][]float64, tau float64) ([][]float64, error) {
	return poleZeroGeneric(wfs, tau)
}

// PoleZeroFloat32 is like PoleZero for float32 samples.
func PoleZeroFloat32(wfs [][]float32, tau float32) ([][]float32, error) {
	return poleZeroGeneric(wfs, tau)
}

func trapGeneric[T Float](name string, wfs [][]T, rise, flat float64) ([][]T, error) {
	return seqToSeq(name, wfs, BroadcastBuffer(&rise), BroadcastBuffer(&flat))
}

// TrapFilter applies the symmetric trapezoidal filter with the given
// rise and flat-top lengths in samples.
func TrapFilter(wfs [][]float64, rise, flat float64) ([][]float64, error) {
	return trapGeneric("trap_filter", wfs, rise, flat)
}

// TrapFilterFloat32 is like TrapFilter for float32 samples.
func TrapFilterFloat32(wfs [][]float32, rise, flat float64) ([][]float32, error) {
	return trapGeneric("trap_filter", wfs, rise, flat)
}

// TrapNorm applies the amplitude-normalized trapezoidal filter: the
// trap_filter output divided elementwise by the exact rise parameter.
func TrapNorm(wfs [][]float64, rise, flat float64) ([][]float64, error) {
	return trapGeneric("trap_norm", wfs, rise, flat)
}

// TrapNormFloat32 is like TrapNorm for float32 samples.
func TrapNormFloat32(wfs [][]float32, rise, flat float64) ([][]float32, error) {
	return trapGeneric("trap_norm", wfs, rise, flat)
}

// AsymTrapFilter applies the asymmetric trapezoidal filter with
// independent rise and fall lengths, each section normalized by its own
// length.
func AsymTrapFilter(wfs [][]float64, rise, flat, fall float64) ([][]float64, error) {
	return seqToSeq("asym_trap_filter", wfs,
		BroadcastBuffer(&rise), BroadcastBuffer(&flat), BroadcastBuffer(&fall))
}

// BaselineSubtract estimates each waveform's baseline as the mean of
// its first blSamples samples and subtracts it. Returns the corrected
// waveforms and the per-waveform baselines.
func BaselineSubtract[T Float](wfs [][]T, blSamples int) ([][]T, []T, error) {
	if blSamples < 1 {
		return nil, nil, fmt.Errorf("%w: baseline window must be at least 1 sample", ErrShape)
	}
	ops := simdops.For[T]()
	baselines := make([]T, len(wfs))
	for i, wf := range wfs {
		if len(wf) < blSamples {
			return nil, nil, fmt.Errorf("%w: waveform %d has %d samples, baseline window is %d",
				ErrShape, i, len(wf), blSamples)
		}
		baselines[i] = ops.Sum(wf[:blSamples]) / T(blSamples)
	}
	out, err := seqToSeq("bl_subtract", wfs, ScalarBuffer(baselines))
	if err != nil {
		return nil, nil, err
	}
	return out, baselines, nil
}
