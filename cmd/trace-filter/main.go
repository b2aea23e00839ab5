// Command trace-filter runs a pole-zero plus trapezoidal filter chain
// over the frames of a WAV file, treating each fixed-length frame as one
// waveform in a batch.
//
// Usage:
//
//	trace-filter -tau 7400 -rise 100 -flat 30 input.wav output.wav
//	trace-filter -raw -frame 2048 input.wav output.wav   # unnormalized trap
//
// The chain is baseline subtraction (mean of the first -baseline
// samples), pole-zero correction with time constant -tau, and the
// normalized trapezoidal filter with -rise and -flat window lengths.
// All lengths are in samples. The output is peak-normalized 16-bit PCM.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/tphakala/go-waveform-dsp/internal/simdops"

	wavedsp "github.com/tphakala/go-waveform-dsp"
)

const (
	// CLI defaults, in samples.
	defaultTau      = 7400.0
	defaultRise     = 100.0
	defaultFlat     = 30.0
	defaultBaseline = 64
	defaultFrame    = 1024

	minRequiredArgs = 2

	// Conversion constants for 16-bit PCM output.
	bitsPerSample16 = 16
	maxInt16        = 32767.0
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	tau := flag.Float64("tau", defaultTau, "Pole-zero time constant in samples")
	rise := flag.Float64("rise", defaultRise, "Trapezoid rise length in samples")
	flat := flag.Float64("flat", defaultFlat, "Trapezoid flat-top length in samples")
	baseline := flag.Int("baseline", defaultBaseline, "Baseline window in samples")
	frame := flag.Int("frame", defaultFrame, "Frame length in samples (one waveform per frame)")
	raw := flag.Bool("raw", false, "Use the unnormalized trap_filter instead of trap_norm")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.wav output.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		return fmt.Errorf("insufficient arguments")
	}
	inputPath := args[0]
	outputPath := args[1]

	if *frame < 2*int(math.Round(*rise))+int(math.Round(*flat)) {
		return fmt.Errorf("frame length %d is shorter than the trapezoid windows", *frame)
	}
	if *baseline >= *frame {
		return fmt.Errorf("baseline window %d must be shorter than the frame length %d", *baseline, *frame)
	}

	input, err := readWAVChannels(inputPath, *verbose)
	if err != nil {
		return err
	}

	if *verbose {
		log.Printf("Chain: bl_subtract(%d) -> pole_zero(%.1f) -> %s(%.1f, %.1f)",
			*baseline, *tau, trapOpName(*raw), *rise, *flat)
	}

	start := time.Now()
	frames, framesPerChannel := chopFrames(input.channels, *frame)
	if len(frames) == 0 {
		return fmt.Errorf("input shorter than one frame (%d samples)", *frame)
	}

	filtered, err := runChain(frames, *tau, *rise, *flat, *baseline, *raw)
	if err != nil {
		return fmt.Errorf("filter chain failed: %w", err)
	}

	normalizePeak(filtered)
	channels := joinFrames(filtered, framesPerChannel, *frame)
	elapsed := time.Since(start)

	if err := writeWAVChannels(outputPath, channels, input.rate); err != nil {
		return err
	}

	fmt.Printf("Filtered %s -> %s\n", filepath.Base(inputPath), filepath.Base(outputPath))
	fmt.Printf("  %d channels, %d frames of %d samples\n",
		len(input.channels), len(frames), *frame)
	fmt.Printf("  Duration: %.3fs\n", elapsed.Seconds())
	return nil
}

func trapOpName(raw bool) string {
	if raw {
		return "trap_filter"
	}
	return "trap_norm"
}

// runChain applies the processing chain to the frame batch.
func runChain(frames [][]float64, tau, rise, flat float64, baseline int, raw bool) ([][]float64, error) {
	blsub, _, err := wavedsp.BaselineSubtract(frames, baseline)
	if err != nil {
		return nil, err
	}
	pz, err := wavedsp.PoleZero(blsub, tau)
	if err != nil {
		return nil, err
	}
	if raw {
		return wavedsp.TrapFilter(pz, rise, flat)
	}
	return wavedsp.TrapNorm(pz, rise, flat)
}

// normalizePeak scales all frames in place so the largest absolute
// sample becomes 1.0. Silent input is left untouched.
func normalizePeak(frames [][]float64) {
	peak := 0.0
	for _, f := range frames {
		for _, v := range f {
			if a := math.Abs(v); a > peak {
				peak = a
			}
		}
	}
	if peak == 0 {
		return
	}
	ops := simdops.For[float64]()
	inv := 1.0 / peak
	for _, f := range frames {
		ops.Scale(f, f, inv)
	}
}
