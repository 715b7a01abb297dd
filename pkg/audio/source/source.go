// ABOUTME: Audio source abstraction for reading from container files
// ABOUTME: Dispatches WAV, MP3 and FLAC files by extension
package source

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/lpcvox/lpcvox-go/pkg/audio"
)

// Source provides interleaved float64 PCM samples at the container's
// native sample rate.
type Source interface {
	// Read fills buf with interleaved samples. Returns the number of
	// samples read; io.EOF once the stream is exhausted.
	Read(buf []float64) (int, error)
	// SampleRate returns the sample rate of the audio
	SampleRate() int
	// Channels returns the number of channels
	Channels() int
	// BitDepth returns the source bit depth
	BitDepth() int
	// Close closes the audio source
	Close() error
}

// Open creates a source for the given file path, picking the container
// by extension. Supported: .wav, .mp3, .flac.
func Open(path string) (Source, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("audio file not found: %s", path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".wav":
		return NewWAV(path)
	case ".mp3":
		return NewMP3(path)
	case ".flac":
		return NewFLAC(path)
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .wav, .mp3, .flac)", ext)
	}
}

// ReadAll drains a source into a single interleaved buffer.
func ReadAll(src Source) (*audio.Buffer, error) {
	var samples []float64
	buf := make([]float64, 8192)
	for {
		n, err := src.Read(buf)
		if n > 0 {
			samples = append(samples, buf[:n]...)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	return &audio.Buffer{
		Samples: samples,
		Format: audio.Format{
			SampleRate: src.SampleRate(),
			Channels:   src.Channels(),
			BitDepth:   src.BitDepth(),
		},
	}, nil
}
