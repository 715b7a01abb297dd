// ABOUTME: Sentinel errors for the lpc package
// ABOUTME: Stream format and parameter validation failures
package lpc

import "errors"

var (
	// ErrFormat reports a malformed encoded stream.
	ErrFormat = errors.New("lpc: malformed stream")

	// ErrHeader reports header parameters violating the codec invariants.
	ErrHeader = errors.New("lpc: invalid header")

	// ErrExcitation reports an excitation request with a degenerate pitch.
	ErrExcitation = errors.New("lpc: invalid excitation pitch")
)
