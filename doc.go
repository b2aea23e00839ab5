// Package wavedsp provides a generalized array-operation runtime for
// digitizer waveform processing in pure Go.
//
// Signal kernels (pole-zero deconvolution, trapezoidal filtering,
// baseline handling, waveform statistics) are exposed as named,
// multi-dtype operations that work on batches of equal-length waveforms
// of arbitrary count, stride, and memory alignment. The runtime inspects
// the memory layout of every argument at call time and picks between a
// blocked fast path over dense, cache-line-aligned, sample-major batches
// and a stride-general fallback path that walks one waveform at a time.
// Both paths produce bit-identical results.
//
// # Quick Start
//
// One-shot helpers cover the common case of a slice of waveforms:
//
//	corrected, err := wavedsp.PoleZero(waveforms, 7400)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	trap, err := wavedsp.TrapNorm(corrected, 100, 30)
//
// # Operations
//
// Every kernel is registered under a unique name with a generalized
// shape signature such as "(n),()->(n)" and documentation that includes
// a processing-chain configuration example. Operations are looked up by
// name and invoked on raw buffers:
//
//	op, ok := wavedsp.Lookup("trap_filter")
//	if !ok {
//	    log.Fatal("unknown operation")
//	}
//	err := op.Call([]wavedsp.Buffer{in, rise, flat, out}, seqs, samples)
//
// Buffers carry a base pointer, an element-type tag, and outer/inner
// byte strides. A zero outer stride broadcasts a single scalar across
// all waveforms. The runtime never copies or retains caller memory;
// outputs are written in place through the supplied buffers.
//
// # Dispatch
//
// An operation aggregates one kernel variant per supported element-type
// row (float32 and float64 waveforms, with int32 or float64 window
// parameters for the filters). Each variant exists in two forms: a
// blocked form that assumes 64-byte-aligned sample-major memory and a
// waveform count that is an exact multiple of the block size, and a
// stride-general form with no layout assumptions. The alignment test is
// all-or-nothing; a call that fails it for any argument processes every
// waveform through the fallback form rather than splitting the batch.
//
// # Error Model
//
// Mis-registered operations (mismatched variant arity or argument
// roles) panic at startup. At call time, the only errors are argument
// count mismatches, unmatched element types, and invalid shapes.
// Non-finite samples or parameters are data, not errors: they poison
// the first output sample with NaN, and the recursive filters propagate
// the poison through the rest of the waveform.
//
// # Thread Safety
//
// The operation registry is populated during package initialization and
// immutable afterwards, so any number of goroutines may look up and
// call operations concurrently. Waveforms within one call are data
// independent; callers may also partition a batch across goroutines as
// long as output regions do not overlap.
package wavedsp
