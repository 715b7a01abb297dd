// ABOUTME: Import of the deprecated text stream format
// ABOUTME: Comma-separated header line and hex-encoded coefficient payloads
package lpc

import (
	"bufio"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ReadLegacyText parses the retired text format: a first line
// "window_size, sample_rate, overlap, order" in decimal, then one line
// per frame "pitch, gain, coefficients" with the coefficients
// hex-encoded as raw little-endian floats. Two payload widths exist
// historically, float32 and float64; both decode. There is no legacy
// writer.
func ReadLegacyText(r io.Reader) (*Stream, error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("lpc: read legacy stream: %w", err)
		}
		return nil, fmt.Errorf("%w: empty legacy stream", ErrFormat)
	}
	header, err := parseLegacyHeader(scanner.Text())
	if err != nil {
		return nil, err
	}

	stream := &Stream{Header: header}
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		frame, err := parseLegacyFrame(line, header.Order, len(stream.Frames))
		if err != nil {
			return nil, err
		}
		stream.Frames = append(stream.Frames, frame)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("lpc: read legacy stream: %w", err)
	}
	return stream, nil
}

func parseLegacyHeader(line string) (Header, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 4 {
		return Header{}, fmt.Errorf("%w: legacy header has %d fields, want 4", ErrFormat, len(fields))
	}

	vals := make([]int, 4)
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return Header{}, fmt.Errorf("%w: legacy header field %q", ErrFormat, strings.TrimSpace(f))
		}
		vals[i] = v
	}

	header := Header{
		WindowSize:     vals[0],
		SampleRate:     vals[1],
		OverlapPercent: vals[2],
		Order:          vals[3],
	}
	if err := header.Validate(); err != nil {
		return Header{}, err
	}
	return header, nil
}

func parseLegacyFrame(line string, order, index int) (Frame, error) {
	parts := strings.SplitN(line, ",", 3)
	if len(parts) != 3 {
		return Frame{}, fmt.Errorf("%w: legacy frame %d has %d fields, want 3", ErrFormat, index, len(parts))
	}

	pitch, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Frame{}, fmt.Errorf("%w: legacy frame %d pitch %q", ErrFormat, index, strings.TrimSpace(parts[0]))
	}
	gain, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Frame{}, fmt.Errorf("%w: legacy frame %d gain %q", ErrFormat, index, strings.TrimSpace(parts[1]))
	}
	payload, err := hex.DecodeString(strings.TrimSpace(parts[2]))
	if err != nil {
		return Frame{}, fmt.Errorf("%w: legacy frame %d coefficients: %v", ErrFormat, index, err)
	}
	coeffs, err := decodeLegacyCoefficients(payload, order)
	if err != nil {
		return Frame{}, fmt.Errorf("%w: legacy frame %d: %v", ErrFormat, index, err)
	}

	return Frame{Pitch: pitch, Gain: gain, Coefficients: coeffs}, nil
}

// decodeLegacyCoefficients rebuilds the polynomial from raw bytes. The
// historical writer emitted float64 while its matching reader assumed
// float32; the payload width tells the two variants apart.
func decodeLegacyCoefficients(payload []byte, order int) ([]float64, error) {
	count := order + 1
	out := make([]float64, count)
	switch len(payload) {
	case 4 * count:
		for i := 0; i < count; i++ {
			out[i] = float64(math.Float32frombits(binary.LittleEndian.Uint32(payload[i*4:])))
		}
	case 8 * count:
		for i := 0; i < count; i++ {
			out[i] = math.Float64frombits(binary.LittleEndian.Uint64(payload[i*8:]))
		}
	default:
		return nil, fmt.Errorf("coefficient payload is %d bytes, want %d or %d", len(payload), 4*count, 8*count)
	}
	return out, nil
}
