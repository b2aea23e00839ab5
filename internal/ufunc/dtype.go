package ufunc

import "fmt"

// DType is a stable tag identifying the element type of a buffer.
// Tags are fixed at registration time and compared at call time to
// select the matching kernel variant.
type DType uint8

const (
	// Invalid is the zero DType. Buffers must always carry a real tag.
	Invalid DType = iota

	Bool
	Int8
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64
)

// dtypeSizes maps each tag to its element size in bytes.
var dtypeSizes = [...]int{
	Invalid: 0,
	Bool:    1,
	Int8:    1,
	Int16:   2,
	Int32:   4,
	Int64:   8,
	Uint8:   1,
	Uint16:  2,
	Uint32:  4,
	Uint64:  8,
	Float32: 4,
	Float64: 8,
}

var dtypeNames = [...]string{
	Invalid: "invalid",
	Bool:    "bool",
	Int8:    "int8",
	Int16:   "int16",
	Int32:   "int32",
	Int64:   "int64",
	Uint8:   "uint8",
	Uint16:  "uint16",
	Uint32:  "uint32",
	Uint64:  "uint64",
	Float32: "float32",
	Float64: "float64",
}

// Size returns the element size in bytes, or 0 for Invalid.
func (d DType) Size() int {
	if int(d) >= len(dtypeSizes) {
		return 0
	}
	return dtypeSizes[d]
}

// String returns the Go-style name of the element type.
func (d DType) String() string {
	if int(d) >= len(dtypeNames) {
		return fmt.Sprintf("dtype(%d)", uint8(d))
	}
	return dtypeNames[d]
}

// Element is the constraint covering every element type a buffer may
// carry. Exact types only: the dtype tag of a named type would not
// survive the round trip through a raw buffer.
type Element interface {
	bool |
		int8 | int16 | int32 | int64 |
		uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// Float is the constraint for floating-point waveform samples.
type Float interface {
	float32 | float64
}

// DTypeOf returns the tag for element type T.
// The type switch resolves at instantiation time, not in hot paths.
func DTypeOf[T Element]() DType {
	var zero T
	switch any(zero).(type) {
	case bool:
		return Bool
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case uint8:
		return Uint8
	case uint16:
		return Uint16
	case uint32:
		return Uint32
	case uint64:
		return Uint64
	case float32:
		return Float32
	case float64:
		return Float64
	default:
		panic("ufunc: unsupported element type")
	}
}
