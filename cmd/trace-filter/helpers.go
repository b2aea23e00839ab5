package main

import (
	"fmt"
	"log"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// Sample format constants.
const (
	bitsPerSample24 = 24
	bitsPerSample32 = 32
	maxInt24        = 8388607.0
	maxInt32        = 2147483647.0

	wavAudioFormatPCM = 1
)

// wavInput holds decoded, deinterleaved input audio.
type wavInput struct {
	channels [][]float64 // normalized to [-1, 1]
	rate     int
}

// readWAVChannels decodes a WAV file into normalized per-channel
// float64 slices.
func readWAVChannels(path string, verbose bool) (*wavInput, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to read audio data: %w", err)
	}

	format := buf.Format
	bitDepth := int(decoder.BitDepth)
	if verbose {
		log.Printf("Input format: %d Hz, %d channels, %d-bit",
			format.SampleRate, format.NumChannels, bitDepth)
	}

	numChannels := format.NumChannels
	samplesPerChannel := len(buf.Data) / numChannels
	invMax := 1.0 / maxValueForBitDepth(bitDepth)

	channels := make([][]float64, numChannels)
	for ch := range channels {
		channels[ch] = make([]float64, samplesPerChannel)
	}
	for i := range samplesPerChannel {
		base := i * numChannels
		for ch := range numChannels {
			channels[ch][i] = float64(buf.Data[base+ch]) * invMax
		}
	}

	return &wavInput{channels: channels, rate: format.SampleRate}, nil
}

// writeWAVChannels interleaves the channels and writes 16-bit PCM.
func writeWAVChannels(path string, channels [][]float64, rate int) error {
	if len(channels) == 0 || len(channels[0]) == 0 {
		return fmt.Errorf("no audio data to write")
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = f.Close() }()

	numChannels := len(channels)
	samplesPerChannel := len(channels[0])

	data := make([]int, samplesPerChannel*numChannels)
	for i := range samplesPerChannel {
		base := i * numChannels
		for ch := range numChannels {
			s := channels[ch][i]
			if s > 1.0 {
				s = 1.0
			} else if s < -1.0 {
				s = -1.0
			}
			data[base+ch] = int(s * maxInt16)
		}
	}

	enc := wav.NewEncoder(f, rate, bitsPerSample16, numChannels, wavAudioFormatPCM)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: numChannels, SampleRate: rate},
		Data:           data,
		SourceBitDepth: bitsPerSample16,
	}
	if err := enc.Write(buf); err != nil {
		_ = enc.Close()
		return fmt.Errorf("failed to write audio data: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV file: %w", err)
	}
	return nil
}

func maxValueForBitDepth(bitDepth int) float64 {
	switch bitDepth {
	case bitsPerSample24:
		return maxInt24
	case bitsPerSample32:
		return maxInt32
	default:
		return maxInt16
	}
}

// chopFrames slices each channel into consecutive frames of frameLen
// samples, dropping any remainder, and concatenates the frames of all
// channels into one batch. The returned layout is the per-channel frame
// count needed to reassemble the channels.
func chopFrames(channels [][]float64, frameLen int) (frames [][]float64, framesPerChannel int) {
	if len(channels) == 0 || frameLen < 1 {
		return nil, 0
	}
	framesPerChannel = len(channels[0]) / frameLen
	frames = make([][]float64, 0, framesPerChannel*len(channels))
	for _, ch := range channels {
		for i := 0; i < framesPerChannel; i++ {
			frames = append(frames, ch[i*frameLen:(i+1)*frameLen])
		}
	}
	return frames, framesPerChannel
}

// joinFrames reassembles the per-channel sample streams from a frame
// batch produced by chopFrames.
func joinFrames(frames [][]float64, framesPerChannel, frameLen int) [][]float64 {
	if framesPerChannel == 0 {
		return nil
	}
	numChannels := len(frames) / framesPerChannel
	channels := make([][]float64, numChannels)
	for ch := range channels {
		stream := make([]float64, 0, framesPerChannel*frameLen)
		for i := 0; i < framesPerChannel; i++ {
			stream = append(stream, frames[ch*framesPerChannel+i]...)
		}
		channels[ch] = stream
	}
	return channels
}
