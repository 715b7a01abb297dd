// ABOUTME: WAV file audio source
// ABOUTME: Serves decoded RIFF/WAVE samples from memory
package source

import (
	"fmt"
	"io"
	"os"

	"github.com/lpcvox/lpcvox-go/pkg/audio/wav"
)

// WAVSource reads from a RIFF/WAVE file. The container is decoded up
// front; Read serves slices of the decoded buffer.
type WAVSource struct {
	samples []float64
	info    wav.Info
	pos     int
}

// NewWAV creates a new WAV audio source
func NewWAV(path string) (*WAVSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open WAV file: %w", err)
	}
	defer f.Close()

	samples, info, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode WAV: %w", err)
	}

	return &WAVSource{samples: samples, info: info}, nil
}

func (s *WAVSource) Read(buf []float64) (int, error) {
	if s.pos >= len(s.samples) {
		return 0, io.EOF
	}
	n := copy(buf, s.samples[s.pos:])
	s.pos += n
	return n, nil
}

func (s *WAVSource) SampleRate() int { return s.info.SampleRate }
func (s *WAVSource) Channels() int   { return s.info.Channels }
func (s *WAVSource) BitDepth() int   { return s.info.BitDepth }
func (s *WAVSource) Close() error    { return nil }
