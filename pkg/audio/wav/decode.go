// ABOUTME: RIFF/WAVE container reader
// ABOUTME: Decodes PCM integer and IEEE float streams to float64 samples
package wav

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/lpcvox/lpcvox-go/pkg/audio"
)

var (
	// ErrFormat reports a malformed RIFF/WAVE stream.
	ErrFormat = errors.New("wav: malformed RIFF/WAVE data")

	// ErrUnsupported reports a sample format the decoder cannot handle.
	ErrUnsupported = errors.New("wav: unsupported sample format")
)

const (
	formatPCM       = 1
	formatIEEEFloat = 3
)

// Info describes the parameters of a decoded stream.
type Info struct {
	SampleRate int
	Channels   int
	BitDepth   int
}

// Decode reads a RIFF/WAVE stream and returns interleaved float64 samples in
// [-1, 1) together with the stream parameters. Supported payloads: 16-bit and
// 24-bit integer PCM, 32-bit IEEE float. Unknown chunks are skipped; a fmt
// chunk must precede the data chunk.
func Decode(r io.Reader) ([]float64, Info, error) {
	var riff [12]byte
	if _, err := io.ReadFull(r, riff[:]); err != nil {
		return nil, Info{}, fmt.Errorf("%w: short RIFF header", ErrFormat)
	}
	if string(riff[0:4]) != "RIFF" || string(riff[8:12]) != "WAVE" {
		return nil, Info{}, fmt.Errorf("%w: not a RIFF/WAVE stream", ErrFormat)
	}

	var (
		info     Info
		audioFmt int
		haveFmt  bool
	)
	for {
		var hdr [8]byte
		if _, err := io.ReadFull(r, hdr[:]); err != nil {
			if err == io.EOF {
				return nil, Info{}, fmt.Errorf("%w: missing data chunk", ErrFormat)
			}
			return nil, Info{}, fmt.Errorf("%w: short chunk header", ErrFormat)
		}
		id := string(hdr[0:4])
		size := binary.LittleEndian.Uint32(hdr[4:8])

		switch id {
		case "fmt ":
			if size < 16 {
				return nil, Info{}, fmt.Errorf("%w: fmt chunk too small (%d bytes)", ErrFormat, size)
			}
			buf := make([]byte, size)
			if _, err := io.ReadFull(r, buf); err != nil {
				return nil, Info{}, fmt.Errorf("%w: fmt chunk truncated", ErrFormat)
			}
			audioFmt = int(binary.LittleEndian.Uint16(buf[0:2]))
			info.Channels = int(binary.LittleEndian.Uint16(buf[2:4]))
			info.SampleRate = int(binary.LittleEndian.Uint32(buf[4:8]))
			info.BitDepth = int(binary.LittleEndian.Uint16(buf[14:16]))
			if info.Channels <= 0 || info.SampleRate <= 0 {
				return nil, Info{}, fmt.Errorf("%w: fmt chunk declares %d channels at %d Hz",
					ErrFormat, info.Channels, info.SampleRate)
			}
			haveFmt = true
		case "data":
			if !haveFmt {
				return nil, Info{}, fmt.Errorf("%w: data chunk before fmt chunk", ErrFormat)
			}
			data := make([]byte, size)
			if _, err := io.ReadFull(r, data); err != nil {
				return nil, Info{}, fmt.Errorf("%w: data chunk truncated", ErrFormat)
			}
			samples, err := decodeSamples(data, audioFmt, info.BitDepth)
			if err != nil {
				return nil, Info{}, err
			}
			return samples, info, nil
		default:
			// Unknown chunk. RIFF pads odd-sized chunks to even length.
			skip := int64(size) + int64(size%2)
			if _, err := io.CopyN(io.Discard, r, skip); err != nil {
				return nil, Info{}, fmt.Errorf("%w: %q chunk truncated", ErrFormat, id)
			}
		}
	}
}

func decodeSamples(data []byte, audioFmt, bitDepth int) ([]float64, error) {
	switch {
	case audioFmt == formatPCM && bitDepth == 16:
		n := len(data) / 2
		out := make([]float64, n)
		for i := 0; i < n; i++ {
			out[i] = audio.SampleFromInt16(int16(binary.LittleEndian.Uint16(data[i*2:])))
		}
		return out, nil
	case audioFmt == formatPCM && bitDepth == 24:
		n := len(data) / 3
		out := make([]float64, n)
		for i := 0; i < n; i++ {
			v := int32(data[i*3]) | int32(data[i*3+1])<<8 | int32(data[i*3+2])<<16
			if v&0x800000 != 0 {
				v |= ^0xFFFFFF // sign extend
			}
			out[i] = float64(v) / 8388608.0
		}
		return out, nil
	case audioFmt == formatIEEEFloat && bitDepth == 32:
		n := len(data) / 4
		out := make([]float64, n)
		for i := 0; i < n; i++ {
			out[i] = float64(math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:])))
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: format %d at %d bits", ErrUnsupported, audioFmt, bitDepth)
	}
}
