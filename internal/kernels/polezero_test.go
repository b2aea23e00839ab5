package kernels

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tphakala/go-waveform-dsp/internal/testutil"
	"github.com/tphakala/go-waveform-dsp/internal/ufunc"
)

func runPoleZero(t *testing.T, in [][]float64, tau ufunc.Buffer) [][]float64 {
	t.Helper()
	return runRows(t, "pole_zero", in, tau)
}

func TestPoleZeroRecurrence(t *testing.T) {
	in := testutil.Decay(32, 4, 100, 20)
	tau := 35.0
	out := runPoleZero(t, [][]float64{in}, ufunc.Broadcast(&tau))[0]

	decay := math.Exp(-1.0 / tau)
	assert.Equal(t, in[0], out[0])
	for i := 1; i < len(in); i++ {
		want := out[i-1] + in[i] - in[i-1]*decay
		assert.Equal(t, want, out[i], "sample %d", i)
	}
}

func TestPoleZeroFlattensMatchingDecay(t *testing.T) {
	// Deconvolving a pure exponential with its own time constant turns
	// the decaying tail into a flat step.
	const amp, tau = 1000.0, 72.5
	in := testutil.Decay(128, 10, amp, tau)
	tv := tau
	out := runPoleZero(t, [][]float64{in}, ufunc.Broadcast(&tv))[0]

	for i := 10; i < len(in); i++ {
		assert.InDelta(t, amp, out[i], 1e-9, "sample %d", i)
	}
}

func TestPoleZeroLargeTau(t *testing.T) {
	// As tau grows the correction vanishes and the output tracks the
	// input to within accumulated rounding drift.
	in := testutil.Decay(64, 0, 500, 1e6)
	tau := 1e12
	out := runPoleZero(t, [][]float64{in}, ufunc.Broadcast(&tau))[0]

	for i := range in {
		assert.InDelta(t, in[i], out[i], testutil.LargeTauDrift, "sample %d", i)
	}
}

func TestPoleZeroNaNPoisonsWholeOutput(t *testing.T) {
	in := testutil.Ramp(16)
	in[5] = math.NaN()
	tau := 40.0
	out := runPoleZero(t, [][]float64{in}, ufunc.Broadcast(&tau))[0]
	testutil.AssertAllNaNFrom(t, out, 0)
}

func TestPoleZeroNonFiniteTau(t *testing.T) {
	for _, tau := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		tv := tau
		out := runPoleZero(t, [][]float64{testutil.Ramp(8)}, ufunc.Broadcast(&tv))[0]
		testutil.AssertAllNaNFrom(t, out, 0, "tau=%v", tau)
	}
}

func TestPoleZeroBroadcastEqualsExplicit(t *testing.T) {
	const seqs = 5
	in := make([][]float64, seqs)
	for i := range in {
		in[i] = testutil.Decay(32, i, float64(100*(i+1)), 25)
	}

	tau := 30.0
	broadcast := runPoleZero(t, in, ufunc.Broadcast(&tau))

	taus := []float64{30, 30, 30, 30, 30}
	explicit := runPoleZero(t, in, ufunc.ScalarSlice(taus))

	for i := range in {
		testutil.AssertSameBits(t, broadcast[i], explicit[i], "waveform %d", i)
	}
}
