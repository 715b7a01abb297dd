// ABOUTME: MP3 file audio source
// ABOUTME: Decodes MP3 frames to float64 samples via go-mp3
package source

import (
	"encoding/binary"
	"fmt"
	"os"

	mp3 "github.com/hajimehoshi/go-mp3"

	"github.com/lpcvox/lpcvox-go/pkg/audio"
)

// MP3Source reads from an MP3 file
type MP3Source struct {
	file    *os.File
	decoder *mp3.Decoder
}

// NewMP3 creates a new MP3 audio source
func NewMP3(path string) (*MP3Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open MP3 file: %w", err)
	}

	decoder, err := mp3.NewDecoder(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to decode MP3: %w", err)
	}

	return &MP3Source{file: f, decoder: decoder}, nil
}

func (s *MP3Source) Read(buf []float64) (int, error) {
	// The decoder outputs 16-bit little-endian stereo, 2 bytes per sample
	raw := make([]byte, len(buf)*2)
	n, err := s.decoder.Read(raw)

	count := n / 2
	for i := 0; i < count; i++ {
		sample16 := int16(binary.LittleEndian.Uint16(raw[i*2 : i*2+2]))
		buf[i] = audio.SampleFromInt16(sample16)
	}

	if count > 0 {
		// Deliver what we have; EOF surfaces on the next call
		return count, nil
	}
	return 0, err
}

// SampleRate returns the sample rate of the audio
func (s *MP3Source) SampleRate() int { return s.decoder.SampleRate() }

// Channels returns 2; the decoder always outputs stereo.
func (s *MP3Source) Channels() int { return 2 }

// BitDepth returns 16; the decoder always outputs 16-bit PCM.
func (s *MP3Source) BitDepth() int { return 16 }

func (s *MP3Source) Close() error { return s.file.Close() }
