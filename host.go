package cipherhost

import (
	"github.com/cipherhost/client-go/internal/hostapi"
)

// Host is the delegation boundary to the trusted environment that performs
// the AES-256-GCM computation. Embedders running inside a real sandbox
// implement it over their platform's call mechanism and inject it with
// [WithHost]; see [github.com/cipherhost/client-go/internal/hostapi] for
// the full contract.
type Host = hostapi.Host

// EncryptParams is the flat parameter block passed to [Host.Encrypt].
type EncryptParams = hostapi.EncryptParams

// DecryptParams is the flat parameter block passed to [Host.Decrypt].
type DecryptParams = hostapi.DecryptParams

// Status is the opaque result code of a host primitive. Zero is success.
type Status = hostapi.Status

// Host status codes.
const (
	StatusOK              = hostapi.StatusOK
	StatusUnsupported     = hostapi.StatusUnsupported
	StatusInvalidArgument = hostapi.StatusInvalidArgument
	StatusAuthFailed      = hostapi.StatusAuthFailed
	StatusInternal        = hostapi.StatusInternal
)

// Capability bits in the mask returned by [Host.QuerySupport].
const (
	// SupportNoCopy marks support for distinct input and output buffers.
	SupportNoCopy = hostapi.SupportNoCopy
	// SupportInPlaceNoCopy marks support for transforming a single buffer
	// in place.
	SupportInPlaceNoCopy = hostapi.SupportInPlaceNoCopy
)
