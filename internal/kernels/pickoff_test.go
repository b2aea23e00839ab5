package kernels

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-waveform-dsp/internal/testutil"
	"github.com/tphakala/go-waveform-dsp/internal/ufunc"
)

func runPickoff(t *testing.T, wf []float64, pick float64) float64 {
	t.Helper()
	out := make([]float64, 1)
	bufs := []ufunc.Buffer{
		ufunc.Slice(wf, len(wf)),
		ufunc.Broadcast(&pick),
		ufunc.ScalarSlice(out),
	}
	require.NoError(t, lookupOp(t, "fixed_time_pickoff").Call(bufs, 1, len(wf)))
	return out[0]
}

func TestFixedTimePickoff(t *testing.T) {
	wf := []float64{10, 20, 30, 40, 50}

	assert.Equal(t, 30.0, runPickoff(t, wf, 2))
	assert.Equal(t, 40.0, runPickoff(t, wf, 2.6), "index rounds to nearest")
	assert.Equal(t, 10.0, runPickoff(t, wf, 0.4))
	assert.Equal(t, 50.0, runPickoff(t, wf, 4))
}

func TestFixedTimePickoffOutOfRange(t *testing.T) {
	wf := testutil.Ramp(5)
	for _, pick := range []float64{-1, 5, 4.6, math.NaN(), math.Inf(1)} {
		assert.True(t, math.IsNaN(runPickoff(t, wf, pick)), "pick=%v", pick)
	}
}

func runMinMax(t *testing.T, in [][]float64) (tMin, tMax []int32, aMin, aMax []float64) {
	t.Helper()
	seqs, samples := len(in), len(in[0])
	tMin = make([]int32, seqs)
	tMax = make([]int32, seqs)
	aMin = make([]float64, seqs)
	aMax = make([]float64, seqs)
	bufs := []ufunc.Buffer{
		ufunc.Slice(flatten(in), samples),
		ufunc.ScalarSlice(tMin), ufunc.ScalarSlice(tMax),
		ufunc.ScalarSlice(aMin), ufunc.ScalarSlice(aMax),
	}
	require.NoError(t, lookupOp(t, "min_max").Call(bufs, seqs, samples))
	return tMin, tMax, aMin, aMax
}

func TestMinMax(t *testing.T) {
	tMin, tMax, aMin, aMax := runMinMax(t, [][]float64{
		{3, -1, 4, -1, 5, 5, 0},
		{7, 7, 7, 7, 7, 7, 7},
	})

	assert.Equal(t, []int32{1, 0}, tMin, "first occurrence wins")
	assert.Equal(t, []int32{4, 0}, tMax)
	assert.Equal(t, []float64{-1, 7}, aMin)
	assert.Equal(t, []float64{5, 7}, aMax)
}

func TestMinMaxIgnoresNaN(t *testing.T) {
	tMin, tMax, aMin, aMax := runMinMax(t, [][]float64{
		{2, math.NaN(), -3, 8, math.NaN()},
	})

	assert.Equal(t, int32(2), tMin[0])
	assert.Equal(t, int32(3), tMax[0])
	assert.Equal(t, -3.0, aMin[0])
	assert.Equal(t, 8.0, aMax[0])
}

func TestMinMaxSignature(t *testing.T) {
	op := lookupOp(t, "min_max")
	assert.Equal(t, "(n)->(),(),(),()", op.Signature())
	assert.Equal(t, 1, op.NumIn())
	assert.Equal(t, 4, op.NumOut())
}
