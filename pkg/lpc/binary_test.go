// ABOUTME: Tests for binary stream serialization
// ABOUTME: Bit-exact round trips and truncation and header failures
package lpc

import (
	"bytes"
	"errors"
	"io"
	"reflect"
	"testing"
)

func sampleStream() *Stream {
	return &Stream{
		Header: Header{WindowSize: 256, SampleRate: 8000, OverlapPercent: 50, Order: 2},
		Frames: []Frame{
			{Pitch: 444.4444444444444, Gain: 1.234567890123456, Coefficients: []float64{1, -0.875, 0.3125}},
			{Pitch: Unvoiced, Gain: 0.001, Coefficients: []float64{1, 0.5, -0.25}},
			{Pitch: 0, Gain: 0, Coefficients: []float64{1, 0, 0}},
		},
	}
}

func TestBinaryRoundTrip(t *testing.T) {
	original := sampleStream()

	var buf bytes.Buffer
	written, err := original.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}

	wantSize := int64(16 + 3*(16+8*3))
	if written != wantSize {
		t.Errorf("expected %d bytes written, got %d", wantSize, written)
	}
	if int64(buf.Len()) != wantSize {
		t.Errorf("expected buffer of %d bytes, got %d", wantSize, buf.Len())
	}

	var decoded Stream
	read, err := decoded.ReadFrom(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("ReadFrom: %v", err)
	}
	if read != written {
		t.Errorf("expected %d bytes read, got %d", written, read)
	}
	if !reflect.DeepEqual(&decoded, original) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", decoded, *original)
	}
}

func TestBinaryRoundTripEmptyStream(t *testing.T) {
	original := &Stream{Header: Header{WindowSize: 256, SampleRate: 8000, OverlapPercent: 50, Order: 4}}

	var buf bytes.Buffer
	if _, err := original.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if buf.Len() != 16 {
		t.Errorf("expected header-only output, got %d bytes", buf.Len())
	}

	var decoded Stream
	if _, err := decoded.ReadFrom(&buf); err != nil {
		t.Fatalf("ReadFrom: %v", err)
	}
	if decoded.Header != original.Header {
		t.Errorf("expected header %+v, got %+v", original.Header, decoded.Header)
	}
	if len(decoded.Frames) != 0 {
		t.Errorf("expected no frames, got %d", len(decoded.Frames))
	}
}

func TestBinaryReadTruncatedRecord(t *testing.T) {
	var buf bytes.Buffer
	if _, err := sampleStream().WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}

	cut := buf.Bytes()[:buf.Len()-5]
	var decoded Stream
	_, err := decoded.ReadFrom(bytes.NewReader(cut))
	if !errors.Is(err, ErrFormat) {
		t.Errorf("expected ErrFormat, got %v", err)
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("expected io.ErrUnexpectedEOF in the chain, got %v", err)
	}
}

func TestBinaryReadShortHeader(t *testing.T) {
	var decoded Stream
	_, err := decoded.ReadFrom(bytes.NewReader([]byte{1, 2, 3}))
	if !errors.Is(err, ErrFormat) {
		t.Errorf("expected ErrFormat, got %v", err)
	}
}

func TestBinaryReadInvalidHeader(t *testing.T) {
	tests := []struct {
		name   string
		header Header
	}{
		{"zero order", Header{WindowSize: 256, SampleRate: 8000, OverlapPercent: 50}},
		{"overlap out of range", Header{WindowSize: 256, SampleRate: 8000, OverlapPercent: 100, Order: 10}},
		{"negative window", Header{WindowSize: -1, SampleRate: 8000, OverlapPercent: 50, Order: 10}},
		{"zero sample rate", Header{WindowSize: 256, OverlapPercent: 50, Order: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Serialize by hand; WriteTo refuses invalid headers.
			raw := make([]byte, 16)
			putHeaderField(raw[0:4], tt.header.WindowSize)
			putHeaderField(raw[4:8], tt.header.SampleRate)
			putHeaderField(raw[8:12], tt.header.OverlapPercent)
			putHeaderField(raw[12:16], tt.header.Order)

			var decoded Stream
			if _, err := decoded.ReadFrom(bytes.NewReader(raw)); !errors.Is(err, ErrHeader) {
				t.Errorf("expected ErrHeader, got %v", err)
			}
		})
	}
}

func putHeaderField(b []byte, v int) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}

func TestBinaryWriteRejectsInvalidHeader(t *testing.T) {
	s := &Stream{Header: Header{WindowSize: 256, SampleRate: 8000, OverlapPercent: 50}}
	if _, err := s.WriteTo(io.Discard); !errors.Is(err, ErrHeader) {
		t.Errorf("expected ErrHeader, got %v", err)
	}
}

func TestBinaryWriteRejectsBadFrame(t *testing.T) {
	s := sampleStream()
	s.Frames[1].Coefficients = []float64{1, 0}

	if _, err := s.WriteTo(io.Discard); !errors.Is(err, ErrFormat) {
		t.Errorf("expected ErrFormat, got %v", err)
	}
}

func TestBinaryLayout(t *testing.T) {
	// The header must land byte for byte where other implementations
	// expect it.
	s := &Stream{Header: Header{WindowSize: 256, SampleRate: 8000, OverlapPercent: 50, Order: 10}}
	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}

	want := []byte{
		0x00, 0x01, 0x00, 0x00, // window 256
		0x40, 0x1f, 0x00, 0x00, // rate 8000
		0x32, 0x00, 0x00, 0x00, // overlap 50
		0x0a, 0x00, 0x00, 0x00, // order 10
	}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("header bytes mismatch:\n got %x\nwant %x", buf.Bytes(), want)
	}
}

func TestStreamInterfaces(t *testing.T) {
	var _ io.WriterTo = (*Stream)(nil)
	var _ io.ReaderFrom = (*Stream)(nil)
}
