package kernels

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tphakala/go-waveform-dsp/internal/ufunc"
)

// lookupOp fetches a registered operation or fails the test.
func lookupOp(t *testing.T, name string) *ufunc.Op {
	t.Helper()
	op, ok := ufunc.Lookup(name)
	require.True(t, ok, "operation %q not registered", name)
	return op
}

func flatten(rows [][]float64) []float64 {
	flat := make([]float64, 0, len(rows)*len(rows[0]))
	for _, r := range rows {
		flat = append(flat, r...)
	}
	return flat
}

func unflatten(flat []float64, samples int) [][]float64 {
	rows := make([][]float64, len(flat)/samples)
	for i := range rows {
		rows[i] = flat[i*samples : (i+1)*samples]
	}
	return rows
}

// runRows invokes a waveform-to-waveform operation over waveform-major
// rows, with mid supplying the buffers between the input and the output.
func runRows(t *testing.T, name string, in [][]float64, mid ...ufunc.Buffer) [][]float64 {
	t.Helper()
	seqs, samples := len(in), len(in[0])
	flatIn := flatten(in)
	flatOut := make([]float64, seqs*samples)

	bufs := make([]ufunc.Buffer, 0, len(mid)+2)
	bufs = append(bufs, ufunc.Slice(flatIn, samples))
	bufs = append(bufs, mid...)
	bufs = append(bufs, ufunc.Slice(flatOut, samples))

	require.NoError(t, lookupOp(t, name).Call(bufs, seqs, samples))
	return unflatten(flatOut, samples)
}

// runRowsAligned is runRows over aligned sample-major copies of the same
// data, exercising the vectorized dispatch path. mid buffers must
// themselves be alignment-compatible (broadcast params, aligned scalars).
func runRowsAligned(t *testing.T, name string, in [][]float64, mid ...ufunc.Buffer) [][]float64 {
	t.Helper()
	seqs, samples := len(in), len(in[0])
	flatIn := ufunc.AlignedSlice[float64](seqs * samples)
	flatOut := ufunc.AlignedSlice[float64](seqs * samples)
	for i, row := range in {
		for j, v := range row {
			flatIn[j*seqs+i] = v
		}
	}

	bufs := make([]ufunc.Buffer, 0, len(mid)+2)
	bufs = append(bufs, ufunc.SampleMajor(flatIn, seqs))
	bufs = append(bufs, mid...)
	bufs = append(bufs, ufunc.SampleMajor(flatOut, seqs))

	require.NoError(t, lookupOp(t, name).Call(bufs, seqs, samples))

	rows := make([][]float64, seqs)
	for i := range rows {
		rows[i] = make([]float64, samples)
		for j := range rows[i] {
			rows[i][j] = flatOut[j*seqs+i]
		}
	}
	return rows
}
