package cipherhost

import (
	"errors"
	"fmt"

	"github.com/cipherhost/client-go/internal/hostapi"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrUnsupported is returned when the AEAD primitive is absent or the
	// requested buffer-aliasing mode is not supported by the host.
	ErrUnsupported = errors.New("operation not supported by host")

	// ErrInvalidParameters is returned when the host rejects malformed
	// lengths or missing-where-required arguments.
	ErrInvalidParameters = errors.New("invalid parameters")

	// ErrAuthenticationFailed is returned when decrypt tag verification
	// fails. Any buffer passed for in-place transformation must be
	// discarded.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrHostInternal is returned for any other host-reported failure.
	ErrHostInternal = errors.New("host internal failure")

	// ErrInvalidKeySize is returned when the key is not exactly 32 bytes.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidNonceSize is returned when the nonce is not exactly 12 bytes.
	ErrInvalidNonceSize = errors.New("invalid nonce size")

	// ErrInvalidTagSize is returned when a supplied tag is not exactly 16 bytes.
	ErrInvalidTagSize = errors.New("invalid tag size")

	// ErrNilCipher is returned when Decrypt is called with a nil cipher artifact.
	ErrNilCipher = errors.New("cipher is nil")

	// ErrInvalidEnvelope is returned when an envelope's structure or
	// encoding is invalid.
	ErrInvalidEnvelope = errors.New("invalid envelope")

	// ErrInvalidAlgorithm is returned when an envelope declares an
	// unrecognized or unsupported algorithm suite.
	ErrInvalidAlgorithm = errors.New("invalid algorithm")

	// ErrInvalidKeypair is returned when a keypair is nil or structurally
	// invalid.
	ErrInvalidKeypair = errors.New("invalid keypair")

	// ErrNilHost is returned when a nil host is injected at construction.
	ErrNilHost = errors.New("host is nil")
)

// CipherHostError is implemented by all SDK errors.
type CipherHostError interface {
	error
	CipherHostError() // marker method
}

// HostError represents a non-success status reported by the host
// collaborator. It preserves the raw status code for diagnostics while
// mapping onto the public sentinel errors via errors.Is.
type HostError struct {
	Op     string // "encrypt" or "decrypt"
	Status Status
}

func (e *HostError) Error() string {
	return fmt.Sprintf("host %s failed: %s (status %d)", e.Op, e.Status, uint32(e.Status))
}

// Is implements errors.Is for sentinel error matching. Unknown status codes
// collapse to ErrHostInternal.
func (e *HostError) Is(target error) bool {
	switch e.Status {
	case hostapi.StatusUnsupported:
		return target == ErrUnsupported
	case hostapi.StatusInvalidArgument:
		return target == ErrInvalidParameters
	case hostapi.StatusAuthFailed:
		return target == ErrAuthenticationFailed
	default:
		return target == ErrHostInternal
	}
}

// CipherHostError implements the CipherHostError interface.
func (e *HostError) CipherHostError() {}

// SizeError reports an argument whose length does not match the contract.
type SizeError struct {
	Field string
	Got   int
	Want  int
	Err   error // one of the size sentinels
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("%s: %v: got %d, want %d", e.Field, e.Err, e.Got, e.Want)
}

// Unwrap returns the underlying sentinel.
func (e *SizeError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is: size errors are a species of invalid parameters.
func (e *SizeError) Is(target error) bool {
	return target == ErrInvalidParameters || target == e.Err
}

// CipherHostError implements the CipherHostError interface.
func (e *SizeError) CipherHostError() {}

// EnvelopeError represents a failure to seal or open an envelope.
type EnvelopeError struct {
	Stage   string // "kem", "hkdf", "aead", "decode"
	Message string
	Err     error
}

func (e *EnvelopeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("envelope failed at %s: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("envelope failed at %s: %s", e.Stage, e.Message)
}

// Unwrap returns the underlying error.
func (e *EnvelopeError) Unwrap() error {
	return e.Err
}

// CipherHostError implements the CipherHostError interface.
func (e *EnvelopeError) CipherHostError() {}

// hostStatusError converts a non-OK host status into a HostError.
func hostStatusError(op string, status hostapi.Status) error {
	return &HostError{Op: op, Status: status}
}
