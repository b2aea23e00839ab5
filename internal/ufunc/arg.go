package ufunc

import "unsafe"

// AlignBoundary is the byte alignment the vectorized path assumes for
// every buffer base address. One cache line on current targets.
const AlignBoundary = 64

// Lanes returns the required block size for sequence-valued arguments of
// element type T: the number of elements filling one aligned boundary.
func Lanes[T Element]() int {
	var zero T
	return AlignBoundary / int(unsafe.Sizeof(zero))
}

// ArgSpec is the immutable registration-time description of one kernel
// parameter: its element type, whether it carries the sample dimension,
// whether it is read-only, and the block size the vectorized form needs
// (0 for plain scalars, meaning any batch size).
type ArgSpec struct {
	DType    DType
	Sequence bool // carries the inner (sample) dimension
	Input    bool // read-only
	Block    int  // required block size; 0 for plain scalar parameters
}

// SeqIn describes a read-only waveform argument of element type T.
func SeqIn[T Element]() ArgSpec {
	return ArgSpec{DType: DTypeOf[T](), Sequence: true, Input: true, Block: Lanes[T]()}
}

// SeqOut describes a mutable waveform argument of element type T.
func SeqOut[T Element]() ArgSpec {
	return ArgSpec{DType: DTypeOf[T](), Sequence: true, Input: false, Block: Lanes[T]()}
}

// ScalarIn describes a read-only per-sequence scalar of element type T,
// processed block-wise on the aligned path and broadcastable via a zero
// outer stride.
func ScalarIn[T Element]() ArgSpec {
	return ArgSpec{DType: DTypeOf[T](), Input: true, Block: Lanes[T]()}
}

// ScalarOut describes a mutable per-sequence scalar of element type T.
func ScalarOut[T Element]() ArgSpec {
	return ArgSpec{DType: DTypeOf[T](), Input: false, Block: Lanes[T]()}
}

// Param describes a plain scalar parameter of element type T. On the
// aligned path it must be a pure broadcast (zero outer stride); the
// fallback path also accepts one value per sequence.
func Param[T Element]() ArgSpec {
	return ArgSpec{DType: DTypeOf[T](), Input: true, Block: 0}
}

// isAligned reports whether buf can be serviced by the vectorized form
// of this argument: base address on the alignment boundary, the sequence
// count an exact multiple of the required block size, and a dense outer
// stride of one element (sample-major layout). A broadcast scalar (zero
// outer stride) on a read-only argument is always aligned; a plain
// scalar parameter is aligned only as a broadcast.
func (a ArgSpec) isAligned(buf Buffer, seqs int) bool {
	if a.Block == 0 {
		return buf.Outer == 0
	}
	if a.Input && buf.Outer == 0 {
		return true
	}
	return uintptr(buf.Ptr)%AlignBoundary == 0 &&
		seqs%a.Block == 0 &&
		buf.Outer == a.DType.Size()
}
