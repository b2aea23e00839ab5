package wavedsp

import (
	"github.com/tphakala/go-waveform-dsp/internal/ufunc"

	// Register the built-in signal kernels.
	_ "github.com/tphakala/go-waveform-dsp/internal/kernels"
)

// Core runtime types, re-exported from the dispatch engine.
type (
	// DType tags the element type of a buffer.
	DType = ufunc.DType

	// Buffer describes one caller-owned argument for a single call.
	Buffer = ufunc.Buffer

	// Op is a named, shape-signed, multi-dtype operation.
	Op = ufunc.Op

	// Variant is one element-type-specialized kernel implementation.
	Variant = ufunc.Variant

	// ArgSpec describes one kernel parameter at registration time.
	ArgSpec = ufunc.ArgSpec

	// Call is the per-invocation frame handed to kernel forms.
	Call = ufunc.Call
)

// Block and Scalars are the non-owning strided views kernels read and
// write through (generic aliases, Go 1.24 feature).
type (
	Block[T ufunc.Element]   = ufunc.Block[T]
	Scalars[T ufunc.Element] = ufunc.Scalars[T]
)

// Element and Float mirror the dispatch engine's type constraints.
type (
	Element = ufunc.Element
	Float   = ufunc.Float
)

// Element type tags.
const (
	Bool    = ufunc.Bool
	Int8    = ufunc.Int8
	Int16   = ufunc.Int16
	Int32   = ufunc.Int32
	Int64   = ufunc.Int64
	Uint8   = ufunc.Uint8
	Uint16  = ufunc.Uint16
	Uint32  = ufunc.Uint32
	Uint64  = ufunc.Uint64
	Float32 = ufunc.Float32
	Float64 = ufunc.Float64
)

// AlignBoundary is the byte alignment the blocked fast path assumes.
const AlignBoundary = ufunc.AlignBoundary

// Call-time errors.
var (
	ErrArity     = ufunc.ErrArity
	ErrNoVariant = ufunc.ErrNoVariant
	ErrShape     = ufunc.ErrShape
)

// Lookup returns the operation registered under name.
func Lookup(name string) (*Op, bool) { return ufunc.Lookup(name) }

// Operations returns the sorted names of all registered operations.
func Operations() []string { return ufunc.Names() }

// RegisterOp builds an operation from its variants, validates their
// consistency (panicking on registration bugs), and adds it to the
// process-wide registry. Intended for callers extending the built-in
// kernel set; must happen before the first Call.
func RegisterOp(name, signature, doc string, variants ...Variant) *Op {
	return ufunc.Register(ufunc.NewOp(name, signature, doc, variants...))
}

// DTypeOf returns the element-type tag for T.
func DTypeOf[T Element]() DType { return ufunc.DTypeOf[T]() }

// Lanes returns the block size the fast path requires for sequence
// arguments of element type T.
func Lanes[T Element]() int { return ufunc.Lanes[T]() }

// SeqIn, SeqOut, ScalarIn, ScalarOut, and ParamIn build argument
// descriptors for custom kernel variants.
func SeqIn[T Element]() ArgSpec     { return ufunc.SeqIn[T]() }
func SeqOut[T Element]() ArgSpec    { return ufunc.SeqOut[T]() }
func ScalarIn[T Element]() ArgSpec  { return ufunc.ScalarIn[T]() }
func ScalarOut[T Element]() ArgSpec { return ufunc.ScalarOut[T]() }
func ParamIn[T Element]() ArgSpec   { return ufunc.Param[T]() }

// SliceBuffer builds a Buffer over a dense []T laid out waveform-major
// (each waveform's samples contiguous).
func SliceBuffer[T Element](data []T, samples int) Buffer {
	return ufunc.Slice(data, samples)
}

// SampleMajorBuffer builds a Buffer over a dense []T laid out
// sample-major, the layout the blocked fast path requires.
func SampleMajorBuffer[T Element](data []T, seqs int) Buffer {
	return ufunc.SampleMajor(data, seqs)
}

// ScalarBuffer builds a Buffer over one value per waveform.
func ScalarBuffer[T Element](vals []T) Buffer { return ufunc.ScalarSlice(vals) }

// BroadcastBuffer builds a Buffer replicating a single value across all
// waveforms (zero outer stride).
func BroadcastBuffer[T Element](v *T) Buffer { return ufunc.Broadcast(v) }

// AlignedSlice allocates a []T whose backing array starts on an
// AlignBoundary address, suitable for fast-path buffers.
func AlignedSlice[T Element](n int) []T { return ufunc.AlignedSlice[T](n) }

// MapBlock, MapScalars, and MapParam build views for custom kernel
// forms from the call frame.
func MapBlock[T Element](c *Call, arg, seq, rows int) Block[T] {
	return ufunc.MapBlock[T](c, arg, seq, rows)
}

func MapScalars[T Element](c *Call, arg, seq, rows int) Scalars[T] {
	return ufunc.MapScalars[T](c, arg, seq, rows)
}

func MapParam[T Element](c *Call, arg, seq int) T {
	return ufunc.MapParam[T](c, arg, seq)
}
