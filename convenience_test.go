package wavedsp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decayWaveform(n, t0 int, amp, tau float64) []float64 {
	wf := make([]float64, n)
	for i := t0; i < n; i++ {
		wf[i] = amp * math.Exp(-float64(i-t0)/tau)
	}
	return wf
}

func TestMean(t *testing.T) {
	out, err := Mean([][]float64{
		{1, 2, 3, 4},
		{10, 10, 10, 10},
	})
	require.NoError(t, err)
	assert.Equal(t, []float64{2.5, 10}, out)
}

func TestMeanFloat32(t *testing.T) {
	out, err := MeanFloat32([][]float32{{2, 4, 6, 8}})
	require.NoError(t, err)
	assert.Equal(t, []float32{5}, out)
}

func TestMeanEmpty(t *testing.T) {
	_, err := Mean(nil)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestPoleZeroFlattensDecay(t *testing.T) {
	const amp, tau = 500.0, 60.0
	out, err := PoleZero([][]float64{decayWaveform(96, 8, amp, tau)}, tau)
	require.NoError(t, err)
	for i := 8; i < 96; i++ {
		assert.InDelta(t, amp, out[0][i], 1e-9, "sample %d", i)
	}
}

func TestPoleZeroFloat32(t *testing.T) {
	wf := make([]float32, 32)
	for i := range wf {
		wf[i] = float32(500 * math.Exp(-float64(i)/40))
	}
	out, err := PoleZeroFloat32([][]float32{wf}, 40)
	require.NoError(t, err)
	for i := range wf {
		assert.InDelta(t, 500, out[0][i], 1e-2, "sample %d", i)
	}
}

func TestTrapFilter(t *testing.T) {
	out, err := TrapFilter([][]float64{{1, 1, 1, 1, 1, 1, 1, 1}}, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 2, 2, 1, 0, 0, 0}, out[0])
}

func TestTrapNormIsScaledTrapFilter(t *testing.T) {
	wfs := [][]float64{decayWaveform(48, 4, 120, 30)}
	const rise, flat = 4.0, 2.0

	trap, err := TrapFilter(wfs, rise, flat)
	require.NoError(t, err)
	norm, err := TrapNorm(wfs, rise, flat)
	require.NoError(t, err)

	for i := range trap[0] {
		assert.Equal(t, trap[0][i]/rise, norm[0][i], "sample %d", i)
	}
}

func TestTrapFilterFloat32(t *testing.T) {
	out, err := TrapFilterFloat32([][]float32{{1, 1, 1, 1, 1, 1, 1, 1}}, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2, 2, 2, 1, 0, 0, 0}, out[0])
}

func TestAsymTrapFilter(t *testing.T) {
	out, err := AsymTrapFilter([][]float64{{1, 1, 1, 1, 1, 1, 1, 1, 1, 1}}, 2, 1, 3)
	require.NoError(t, err)

	want := []float64{0.5, 1, 1, 1 - 1.0/3, 1 - 2.0/3, 0, 0, 0, 0, 0}
	for i := range want {
		assert.InDelta(t, want[i], out[0][i], 1e-12, "sample %d", i)
	}
}

func TestBaselineSubtract(t *testing.T) {
	wfs := [][]float64{
		{10, 10, 10, 10, 15, 20, 15, 10},
		{-4, -4, -4, -4, 0, 4, 0, -4},
	}
	out, baselines, err := BaselineSubtract(wfs, 4)
	require.NoError(t, err)

	assert.Equal(t, []float64{10, -4}, baselines)
	assert.Equal(t, []float64{0, 0, 0, 0, 5, 10, 5, 0}, out[0])
	assert.Equal(t, []float64{0, 0, 0, 0, 4, 8, 4, 0}, out[1])
}

func TestBaselineSubtractWindowErrors(t *testing.T) {
	wfs := [][]float64{{1, 2, 3}}

	_, _, err := BaselineSubtract(wfs, 0)
	assert.ErrorIs(t, err, ErrShape)

	_, _, err = BaselineSubtract(wfs, 4)
	assert.ErrorIs(t, err, ErrShape, "window longer than the waveform")
}

func TestOperationsCatalog(t *testing.T) {
	names := Operations()
	for _, name := range []string{"mean", "pole_zero", "trap_filter", "trap_norm"} {
		assert.Contains(t, names, name)
	}

	op, ok := Lookup("pole_zero")
	require.True(t, ok)
	assert.Equal(t, "(n),()->(n)", op.Signature())
	assert.NotEmpty(t, op.Doc())
}

func TestRegisterCustomOp(t *testing.T) {
	negate := func(c *Call, seq, rows int) {
		in := MapBlock[float64](c, 0, seq, rows)
		out := MapBlock[float64](c, 1, seq, rows)
		for r := 0; r < rows; r++ {
			for j := 0; j < in.Cols(); j++ {
				out.Set(r, j, -in.At(r, j))
			}
		}
	}
	RegisterOp("test_negate", "(n)->(n)", "", Variant{
		Args:     []ArgSpec{SeqIn[float64](), SeqOut[float64]()},
		Aligned:  negate,
		Fallback: negate,
	})

	in := []float64{1, -2, 3}
	out := make([]float64, 3)
	op, ok := Lookup("test_negate")
	require.True(t, ok)
	require.NoError(t, op.Call([]Buffer{SliceBuffer(in, 3), SliceBuffer(out, 3)}, 1, 3))
	assert.Equal(t, []float64{-1, 2, -3}, out)
}
