package kernels

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-waveform-dsp/internal/testutil"
	"github.com/tphakala/go-waveform-dsp/internal/ufunc"
)

// equivalenceBatch builds eight distinct waveforms, the exact float64
// block width, so the sample-major runs qualify for the vectorized path.
func equivalenceBatch(samples int) [][]float64 {
	in := make([][]float64, ufunc.Lanes[float64]())
	for i := range in {
		in[i] = testutil.Decay(samples, i+2, float64(50*(i+1)), 20+float64(3*i))
	}
	return in
}

func TestDispatchEquivalencePoleZero(t *testing.T) {
	in := equivalenceBatch(48)
	tau := 33.0

	fallback := runRows(t, "pole_zero", in, ufunc.Broadcast(&tau))
	aligned := runRowsAligned(t, "pole_zero", in, ufunc.Broadcast(&tau))

	for i := range in {
		testutil.AssertSameBits(t, fallback[i], aligned[i], "waveform %d", i)
	}
}

func TestDispatchEquivalenceTrapNorm(t *testing.T) {
	in := equivalenceBatch(48)
	rise, flat := 4.0, 3.0

	fallback := runRows(t, "trap_norm", in, ufunc.Broadcast(&rise), ufunc.Broadcast(&flat))
	aligned := runRowsAligned(t, "trap_norm", in, ufunc.Broadcast(&rise), ufunc.Broadcast(&flat))

	for i := range in {
		testutil.AssertSameBits(t, fallback[i], aligned[i], "waveform %d", i)
	}
}

func TestDispatchEquivalenceTrapNormWithNaN(t *testing.T) {
	in := equivalenceBatch(48)
	in[3][10] = math.NaN()
	rise, flat := 4.0, 3.0

	fallback := runRows(t, "trap_norm", in, ufunc.Broadcast(&rise), ufunc.Broadcast(&flat))
	aligned := runRowsAligned(t, "trap_norm", in, ufunc.Broadcast(&rise), ufunc.Broadcast(&flat))

	for i := range in {
		testutil.AssertSameBits(t, fallback[i], aligned[i], "waveform %d", i)
	}
}

func TestDispatchEquivalenceMean(t *testing.T) {
	in := equivalenceBatch(48)
	seqs, samples := len(in), len(in[0])

	fallbackOut := make([]float64, seqs)
	require.NoError(t, lookupOp(t, "mean").Call([]ufunc.Buffer{
		ufunc.Slice(flatten(in), samples),
		ufunc.ScalarSlice(fallbackOut),
	}, seqs, samples))

	flatIn := ufunc.AlignedSlice[float64](seqs * samples)
	for i, row := range in {
		for j, v := range row {
			flatIn[j*seqs+i] = v
		}
	}
	alignedOut := ufunc.AlignedSlice[float64](seqs)
	require.NoError(t, lookupOp(t, "mean").Call([]ufunc.Buffer{
		ufunc.SampleMajor(flatIn, seqs),
		ufunc.ScalarSlice(alignedOut),
	}, seqs, samples))

	testutil.AssertSameBits(t, fallbackOut, alignedOut)
}

func TestRegisteredOperations(t *testing.T) {
	for _, name := range []string{
		"asym_trap_filter", "bl_subtract", "fixed_time_pickoff",
		"linear_slope_fit", "mean", "min_max", "pole_zero",
		"trap_filter", "trap_norm",
	} {
		assert.Contains(t, ufunc.Names(), name)
	}
}
