// ABOUTME: FLAC file audio source
// ABOUTME: Decodes FLAC frames to float64 samples via mewkiz/flac
package source

import (
	"fmt"
	"io"
	"os"

	"github.com/mewkiz/flac"
)

// FLACSource reads from a FLAC file
type FLACSource struct {
	file       *os.File
	stream     *flac.Stream
	sampleRate int
	channels   int
	bitDepth   int
	scale      float64
	pending    []float64
}

// NewFLAC creates a new FLAC audio source
func NewFLAC(path string) (*FLACSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open FLAC file: %w", err)
	}

	stream, err := flac.New(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to decode FLAC: %w", err)
	}

	info := stream.Info
	bits := int(info.BitsPerSample)
	return &FLACSource{
		file:       f,
		stream:     stream,
		sampleRate: int(info.SampleRate),
		channels:   int(info.NChannels),
		bitDepth:   bits,
		scale:      float64(int64(1) << (bits - 1)),
	}, nil
}

func (s *FLACSource) Read(buf []float64) (int, error) {
	total := 0
	for total < len(buf) {
		if len(s.pending) > 0 {
			n := copy(buf[total:], s.pending)
			s.pending = s.pending[n:]
			total += n
			continue
		}

		frame, err := s.stream.ParseNext()
		if err != nil {
			if err == io.EOF && total > 0 {
				return total, nil
			}
			return total, err
		}

		// Interleave the per-channel subframes
		for i := 0; i < int(frame.BlockSize); i++ {
			for ch := 0; ch < len(frame.Subframes); ch++ {
				s.pending = append(s.pending, float64(frame.Subframes[ch].Samples[i])/s.scale)
			}
		}
	}
	return total, nil
}

// SampleRate returns the sample rate of the audio
func (s *FLACSource) SampleRate() int { return s.sampleRate }

// Channels returns the number of channels
func (s *FLACSource) Channels() int { return s.channels }

// BitDepth returns the source bit depth
func (s *FLACSource) BitDepth() int { return s.bitDepth }

func (s *FLACSource) Close() error { return s.file.Close() }
