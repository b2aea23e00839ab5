package ufunc

import "unsafe"

// Block is a non-owning rows-by-cols view over a caller-owned buffer.
// Rows index sequences within the current batch, columns index samples.
// Strides are in bytes and may be arbitrary on the fallback path; the
// view never copies and must not outlive the call that built it.
type Block[T Element] struct {
	ptr       unsafe.Pointer
	rows      int
	cols      int
	rowStride int // bytes between consecutive sequences
	colStride int // bytes between consecutive samples
}

// Rows returns the number of sequences in the view.
func (b Block[T]) Rows() int { return b.rows }

// Cols returns the number of samples per sequence.
func (b Block[T]) Cols() int { return b.cols }

// At returns the sample at row r, column c.
func (b Block[T]) At(r, c int) T {
	return *(*T)(unsafe.Add(b.ptr, r*b.rowStride+c*b.colStride))
}

// Set stores v at row r, column c.
func (b Block[T]) Set(r, c int, v T) {
	*(*T)(unsafe.Add(b.ptr, r*b.rowStride+c*b.colStride)) = v
}

// Row returns the samples of row r as a slice when they are contiguous
// in memory (unit column stride). The second result reports success.
func (b Block[T]) Row(r int) ([]T, bool) {
	var zero T
	if b.colStride != int(unsafe.Sizeof(zero)) {
		return nil, false
	}
	p := (*T)(unsafe.Add(b.ptr, r*b.rowStride))
	return unsafe.Slice(p, b.cols), true
}

// Col returns all rows at sample index c as a slice when consecutive
// rows are contiguous in memory (unit row stride, the aligned layout).
func (b Block[T]) Col(c int) ([]T, bool) {
	var zero T
	if b.rowStride != int(unsafe.Sizeof(zero)) {
		return nil, false
	}
	p := (*T)(unsafe.Add(b.ptr, c*b.colStride))
	return unsafe.Slice(p, b.rows), true
}

// Scalars is a non-owning view of one value per sequence in the current
// batch. A zero stride replicates a single broadcast value across all
// rows; reads are then repeated, writes through a broadcast view are a
// caller error and not supported.
type Scalars[T Element] struct {
	ptr    unsafe.Pointer
	n      int
	stride int // bytes between consecutive values; 0 broadcasts
}

// Len returns the number of rows the view spans.
func (s Scalars[T]) Len() int { return s.n }

// Broadcast reports whether the view replicates a single value.
func (s Scalars[T]) Broadcast() bool { return s.stride == 0 }

// At returns the value for row i.
func (s Scalars[T]) At(i int) T {
	return *(*T)(unsafe.Add(s.ptr, i*s.stride))
}

// Set stores v for row i.
func (s Scalars[T]) Set(i int, v T) {
	*(*T)(unsafe.Add(s.ptr, i*s.stride)) = v
}
