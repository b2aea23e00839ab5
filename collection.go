package wavedsp

import (
	"errors"
	"fmt"
)

// Errors returned when packing waveform collections.
var (
	// ErrEmpty indicates a collection with no waveforms or no samples.
	ErrEmpty = errors.New("empty waveform collection")

	// ErrRagged indicates waveforms of unequal length.
	ErrRagged = errors.New("waveforms have unequal lengths")
)

// Collection owns a dense packed copy of a batch of equal-length
// waveforms, ready to hand to an operation as a single buffer. The
// aligned variant packs sample-major into cache-line-aligned memory so
// that calls can take the blocked fast path.
type Collection[T Element] struct {
	data        []T
	seqs        int
	samples     int
	sampleMajor bool
}

func checkShape[T Element](wfs [][]T) (seqs, samples int, err error) {
	if len(wfs) == 0 || len(wfs[0]) == 0 {
		return 0, 0, ErrEmpty
	}
	samples = len(wfs[0])
	for i, wf := range wfs {
		if len(wf) != samples {
			return 0, 0, fmt.Errorf("%w: waveform 0 has %d samples, waveform %d has %d",
				ErrRagged, samples, i, len(wf))
		}
	}
	return len(wfs), samples, nil
}

// NewCollection packs waveforms waveform-major: each waveform's samples
// contiguous. This layout always dispatches through the stride-general
// fallback path.
func NewCollection[T Element](wfs [][]T) (*Collection[T], error) {
	seqs, samples, err := checkShape(wfs)
	if err != nil {
		return nil, err
	}
	data := make([]T, seqs*samples)
	for i, wf := range wfs {
		copy(data[i*samples:(i+1)*samples], wf)
	}
	return &Collection[T]{data: data, seqs: seqs, samples: samples}, nil
}

// NewAlignedCollection packs waveforms sample-major into aligned memory,
// the layout the blocked fast path requires. The fast path additionally
// needs the waveform count to be a multiple of Lanes[T](); other counts
// still work, through the fallback path.
func NewAlignedCollection[T Element](wfs [][]T) (*Collection[T], error) {
	seqs, samples, err := checkShape(wfs)
	if err != nil {
		return nil, err
	}
	data := AlignedSlice[T](seqs * samples)
	for i, wf := range wfs {
		for j, v := range wf {
			data[j*seqs+i] = v
		}
	}
	return &Collection[T]{data: data, seqs: seqs, samples: samples, sampleMajor: true}, nil
}

// NewLike allocates a zeroed collection with the same shape and layout,
// typically used as an operation's output.
func (c *Collection[T]) NewLike() *Collection[T] {
	out := &Collection[T]{seqs: c.seqs, samples: c.samples, sampleMajor: c.sampleMajor}
	if c.sampleMajor {
		out.data = AlignedSlice[T](c.seqs * c.samples)
	} else {
		out.data = make([]T, c.seqs*c.samples)
	}
	return out
}

// Buffer returns the collection as an operation argument.
func (c *Collection[T]) Buffer() Buffer {
	if c.sampleMajor {
		return SampleMajorBuffer(c.data, c.seqs)
	}
	return SliceBuffer(c.data, c.samples)
}

// Seqs returns the number of waveforms in the collection.
func (c *Collection[T]) Seqs() int { return c.seqs }

// Samples returns the number of samples per waveform.
func (c *Collection[T]) Samples() int { return c.samples }

// Waveforms unpacks the collection into freshly allocated per-waveform
// slices.
func (c *Collection[T]) Waveforms() [][]T {
	wfs := make([][]T, c.seqs)
	for i := range wfs {
		wf := make([]T, c.samples)
		if c.sampleMajor {
			for j := range wf {
				wf[j] = c.data[j*c.seqs+i]
			}
		} else {
			copy(wf, c.data[i*c.samples:(i+1)*c.samples])
		}
		wfs[i] = wf
	}
	return wfs
}
