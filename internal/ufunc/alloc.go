package ufunc

import "unsafe"

// AlignedSlice allocates a []T of length n whose backing array starts on
// an AlignBoundary address, so that views over it can pass the aligned
// dispatch test. Over-allocates by up to one boundary and reslices.
func AlignedSlice[T Element](n int) []T {
	if n == 0 {
		return nil
	}
	var zero T
	size := int(unsafe.Sizeof(zero))
	pad := AlignBoundary / size
	buf := make([]T, n+pad)
	addr := uintptr(unsafe.Pointer(&buf[0]))
	off := 0
	if rem := addr % AlignBoundary; rem != 0 {
		// Go slice allocations are element-aligned, so the distance to
		// the next boundary is a whole number of elements.
		off = int(AlignBoundary-rem) / size
	}
	return buf[off : off+n : off+n]
}
