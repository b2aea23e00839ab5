package ufunc

import "unsafe"

// Buffer describes one caller-owned argument buffer for a single call.
// The pointer and both strides are raw; the runtime never copies the
// data and never retains the buffer past the call.
type Buffer struct {
	// Ptr is the base address of the buffer.
	Ptr unsafe.Pointer

	// DType tags the element type; it must match a registered variant row.
	DType DType

	// Outer is the byte distance between consecutive sequences.
	// Zero marks a broadcast scalar read once and replicated.
	Outer int

	// Inner is the byte distance between consecutive samples within a
	// sequence. It is ignored for scalar-valued arguments.
	Inner int
}

// Slice builds a Buffer over a dense []T holding seqs sequences of
// samples each, laid out sequence-major (each sequence contiguous).
func Slice[T Element](data []T, samples int) Buffer {
	var zero T
	size := int(unsafe.Sizeof(zero))
	var p unsafe.Pointer
	if len(data) > 0 {
		p = unsafe.Pointer(&data[0])
	}
	return Buffer{Ptr: p, DType: DTypeOf[T](), Outer: samples * size, Inner: size}
}

// SampleMajor builds a Buffer over a dense []T holding seqs sequences
// laid out sample-major: element (i, j) lives at data[j*seqs+i]. This is
// the layout the aligned fast path requires.
func SampleMajor[T Element](data []T, seqs int) Buffer {
	var zero T
	size := int(unsafe.Sizeof(zero))
	var p unsafe.Pointer
	if len(data) > 0 {
		p = unsafe.Pointer(&data[0])
	}
	return Buffer{Ptr: p, DType: DTypeOf[T](), Outer: size, Inner: seqs * size}
}

// ScalarSlice builds a Buffer over one value per sequence.
func ScalarSlice[T Element](vals []T) Buffer {
	var zero T
	var p unsafe.Pointer
	if len(vals) > 0 {
		p = unsafe.Pointer(&vals[0])
	}
	return Buffer{Ptr: p, DType: DTypeOf[T](), Outer: int(unsafe.Sizeof(zero))}
}

// Broadcast builds a Buffer replicating a single value across all
// sequences (zero outer stride).
func Broadcast[T Element](v *T) Buffer {
	return Buffer{Ptr: unsafe.Pointer(v), DType: DTypeOf[T](), Outer: 0}
}

// Call is the frame handed to kernel adapters: the resolved argument
// buffers plus the loop dimensions shared by every sequence-valued
// argument. It is valid only for the duration of one invocation.
type Call struct {
	Bufs    []Buffer
	Seqs    int // number of sequences (outer dimension)
	Samples int // samples per sequence (shared core dimension)
}

// MapBlock builds a rows-wide Block view of argument arg starting at
// sequence index seq.
func MapBlock[T Element](c *Call, arg, seq, rows int) Block[T] {
	b := c.Bufs[arg]
	return Block[T]{
		ptr:       unsafe.Add(b.Ptr, seq*b.Outer),
		rows:      rows,
		cols:      c.Samples,
		rowStride: b.Outer,
		colStride: b.Inner,
	}
}

// MapScalars builds a rows-long Scalars view of argument arg starting at
// sequence index seq. A zero outer stride yields a broadcast view.
func MapScalars[T Element](c *Call, arg, seq, rows int) Scalars[T] {
	b := c.Bufs[arg]
	if b.Outer == 0 {
		return Scalars[T]{ptr: b.Ptr, n: rows, stride: 0}
	}
	return Scalars[T]{ptr: unsafe.Add(b.Ptr, seq*b.Outer), n: rows, stride: b.Outer}
}

// MapParam reads the plain scalar parameter arg for sequence index seq.
// A zero outer stride reads the same broadcast value for every sequence.
func MapParam[T Element](c *Call, arg, seq int) T {
	b := c.Bufs[arg]
	return *(*T)(unsafe.Add(b.Ptr, seq*b.Outer))
}
