package ufunc

import (
	"errors"
	"fmt"
	"sort"
)

// Common errors returned when invoking an operation.
var (
	// ErrArity indicates the caller supplied the wrong number of buffers.
	ErrArity = errors.New("argument count mismatch")

	// ErrNoVariant indicates no registered kernel variant matches the
	// element types of the supplied buffers.
	ErrNoVariant = errors.New("no kernel variant for argument types")

	// ErrShape indicates invalid loop dimensions, such as a zero sample
	// count for an operation with sequence-valued arguments.
	ErrShape = errors.New("invalid shape")
)

// KernelFunc invokes one kernel form on the batch of rows sequences
// starting at sequence index seq, building its own views from the call
// frame. rows is the variant's block size on the aligned path and 1 on
// the fallback path.
type KernelFunc func(c *Call, seq, rows int)

// Variant is one element-type-specialized implementation of an
// operation, in its two forms: Aligned assumes the dense sample-major
// block layout, Fallback assumes nothing about strides and processes a
// single sequence per invocation.
type Variant struct {
	Args     []ArgSpec
	Aligned  KernelFunc
	Fallback KernelFunc
}

// Op is a named, shape-signed, documented aggregate of kernel variants,
// one per supported element-type row. Ops are built once at startup and
// immutable afterwards, so concurrent calls need no locking.
type Op struct {
	name      string
	signature string
	doc       string
	nin       int
	nout      int
	variants  []Variant
}

// NewOp aggregates variants into one operation and validates that they
// agree on argument count and on the positional sequence/scalar and
// input/output classification. Disagreement is a registration bug and
// panics; it cannot be recovered at call time.
func NewOp(name, signature, doc string, variants ...Variant) *Op {
	if len(variants) == 0 {
		panic(fmt.Sprintf("ufunc: op %q has no variants", name))
	}
	ref := variants[0].Args
	nin := 0
	for _, a := range ref {
		if a.Input {
			nin++
		}
	}
	for vi, v := range variants {
		if v.Aligned == nil || v.Fallback == nil {
			panic(fmt.Sprintf("ufunc: op %q variant %d is missing a kernel form", name, vi))
		}
		if len(v.Args) != len(ref) {
			panic(fmt.Sprintf("ufunc: op %q variant %d has %d arguments, want %d",
				name, vi, len(v.Args), len(ref)))
		}
		for ai, a := range v.Args {
			if a.DType == Invalid {
				panic(fmt.Sprintf("ufunc: op %q variant %d argument %d has no dtype", name, vi, ai))
			}
			if a.Sequence != ref[ai].Sequence || a.Input != ref[ai].Input {
				panic(fmt.Sprintf("ufunc: op %q variant %d argument %d role differs from variant 0",
					name, vi, ai))
			}
		}
	}
	return &Op{
		name:      name,
		signature: signature,
		doc:       doc,
		nin:       nin,
		nout:      len(ref) - nin,
		variants:  variants,
	}
}

// Name returns the operation's unique identifier.
func (op *Op) Name() string { return op.name }

// Signature returns the generalized shape signature, e.g. "(n),()->(n)".
func (op *Op) Signature() string { return op.signature }

// Doc returns the operation's documentation text.
func (op *Op) Doc() string { return op.doc }

// NumIn returns the number of read-only arguments.
func (op *Op) NumIn() int { return op.nin }

// NumOut returns the number of mutable arguments.
func (op *Op) NumOut() int { return op.nout }

// NumArgs returns the total argument count.
func (op *Op) NumArgs() int { return op.nin + op.nout }

// DTypes returns the per-variant element-type rows, in registration
// order. Row i lists the dtype of each argument of variant i.
func (op *Op) DTypes() [][]DType {
	rows := make([][]DType, len(op.variants))
	for i, v := range op.variants {
		row := make([]DType, len(v.Args))
		for j, a := range v.Args {
			row[j] = a.DType
		}
		rows[i] = row
	}
	return rows
}

// match returns the first variant whose dtype row equals the buffers'.
func (op *Op) match(bufs []Buffer) *Variant {
	for i := range op.variants {
		v := &op.variants[i]
		ok := true
		for j, a := range v.Args {
			if bufs[j].DType != a.DType {
				ok = false
				break
			}
		}
		if ok {
			return v
		}
	}
	return nil
}

// Call dispatches the operation over seqs sequences of samples samples
// each. Outputs are written in place through the supplied buffers; no
// memory is allocated or retained.
func (op *Op) Call(bufs []Buffer, seqs, samples int) error {
	if len(bufs) != op.NumArgs() {
		return fmt.Errorf("%w: %s takes %d arguments, got %d",
			ErrArity, op.name, op.NumArgs(), len(bufs))
	}
	v := op.match(bufs)
	if v == nil {
		return fmt.Errorf("%w: %s%v", ErrNoVariant, op.name, bufferDTypes(bufs))
	}
	if samples < 1 && hasSequenceArg(v.Args) {
		return fmt.Errorf("%w: %s needs at least one sample per sequence", ErrShape, op.name)
	}
	execute(v, &Call{Bufs: bufs, Seqs: seqs, Samples: samples})
	return nil
}

func hasSequenceArg(args []ArgSpec) bool {
	for _, a := range args {
		if a.Sequence {
			return true
		}
	}
	return false
}

func bufferDTypes(bufs []Buffer) []DType {
	ds := make([]DType, len(bufs))
	for i, b := range bufs {
		ds[i] = b.DType
	}
	return ds
}

// registry holds every registered operation. It is populated by init
// functions before first use and read-only afterwards.
var registry = make(map[string]*Op)

// Register adds op to the process-wide registry and returns it.
// Registering two operations under one name is a startup bug and panics.
func Register(op *Op) *Op {
	if _, dup := registry[op.name]; dup {
		panic(fmt.Sprintf("ufunc: duplicate registration of op %q", op.name))
	}
	registry[op.name] = op
	return op
}

// Lookup returns the operation registered under name.
func Lookup(name string) (*Op, bool) {
	op, ok := registry[name]
	return op, ok
}

// Names returns the sorted names of all registered operations.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
