// ABOUTME: Binary stream serialization
// ABOUTME: Fixed-size little-endian header and frame records
package lpc

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Binary layout, little-endian throughout:
//
//	header: window size, sample rate, overlap percent, order (int32 each)
//	frame:  gain, pitch, order+1 coefficients (float64 each)
//
// Frames run from the end of the header to EOF; there is no frame
// count field.
const (
	headerSize      = 16
	frameFixedBytes = 16
)

// recordSize returns the per-frame record length for the given order.
func recordSize(order int) int { return frameFixedBytes + 8*(order+1) }

// WriteTo serializes the stream in the binary format. Serialization is
// bit-exact: reading the bytes back yields an identical stream.
func (s *Stream) WriteTo(w io.Writer) (int64, error) {
	if err := s.Header.Validate(); err != nil {
		return 0, err
	}

	var written int64
	hdr := make([]byte, headerSize)
	binary.LittleEndian.PutUint32(hdr[0:4], uint32(s.Header.WindowSize))
	binary.LittleEndian.PutUint32(hdr[4:8], uint32(s.Header.SampleRate))
	binary.LittleEndian.PutUint32(hdr[8:12], uint32(s.Header.OverlapPercent))
	binary.LittleEndian.PutUint32(hdr[12:16], uint32(s.Header.Order))
	n, err := w.Write(hdr)
	written += int64(n)
	if err != nil {
		return written, fmt.Errorf("lpc: write header: %w", err)
	}

	record := make([]byte, recordSize(s.Header.Order))
	for i, frame := range s.Frames {
		if len(frame.Coefficients) != s.Header.Order+1 {
			return written, fmt.Errorf("%w: frame %d has %d coefficients, want %d",
				ErrFormat, i, len(frame.Coefficients), s.Header.Order+1)
		}
		binary.LittleEndian.PutUint64(record[0:8], math.Float64bits(frame.Gain))
		binary.LittleEndian.PutUint64(record[8:16], math.Float64bits(frame.Pitch))
		for k, c := range frame.Coefficients {
			binary.LittleEndian.PutUint64(record[frameFixedBytes+8*k:], math.Float64bits(c))
		}
		n, err := w.Write(record)
		written += int64(n)
		if err != nil {
			return written, fmt.Errorf("lpc: write frame %d: %w", i, err)
		}
	}
	return written, nil
}

// ReadFrom replaces the stream with one parsed from r. The header is
// validated before any frame is read; a record cut short by EOF is a
// format error, never a silently shorter stream.
func (s *Stream) ReadFrom(r io.Reader) (int64, error) {
	var read int64
	hdr := make([]byte, headerSize)
	n, err := io.ReadFull(r, hdr)
	read += int64(n)
	if err != nil {
		return read, fmt.Errorf("%w: short header", ErrFormat)
	}

	header := Header{
		WindowSize:     int(int32(binary.LittleEndian.Uint32(hdr[0:4]))),
		SampleRate:     int(int32(binary.LittleEndian.Uint32(hdr[4:8]))),
		OverlapPercent: int(int32(binary.LittleEndian.Uint32(hdr[8:12]))),
		Order:          int(int32(binary.LittleEndian.Uint32(hdr[12:16]))),
	}
	if err := header.Validate(); err != nil {
		return read, err
	}

	s.Header = header
	s.Frames = nil
	record := make([]byte, recordSize(header.Order))
	for i := 0; ; i++ {
		n, err := io.ReadFull(r, record)
		read += int64(n)
		if err == io.EOF {
			break
		}
		if err != nil {
			return read, fmt.Errorf("%w: frame %d truncated: %w", ErrFormat, i, err)
		}

		frame := Frame{
			Gain:         math.Float64frombits(binary.LittleEndian.Uint64(record[0:8])),
			Pitch:        math.Float64frombits(binary.LittleEndian.Uint64(record[8:16])),
			Coefficients: make([]float64, header.Order+1),
		}
		for k := range frame.Coefficients {
			frame.Coefficients[k] = math.Float64frombits(binary.LittleEndian.Uint64(record[frameFixedBytes+8*k:]))
		}
		s.Frames = append(s.Frames, frame)
	}
	return read, nil
}
