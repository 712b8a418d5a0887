package hostapi

// Sizes fixed by the AES-256-GCM contract, in bytes.
const (
	KeySize   = 32
	NonceSize = 12
	TagSize   = 16
)

// Capability bits returned by [Host.QuerySupport]. Bit positions are part of
// the wire contract with the host and must not be reordered.
const (
	// SupportNoCopy is set when encrypt/decrypt work with distinct input and
	// output buffers.
	SupportNoCopy uint32 = 1 << 0

	// SupportInPlaceNoCopy is set when encrypt/decrypt work in place on a
	// single buffer, selected by a nil input slice.
	SupportInPlaceNoCopy uint32 = 1 << 1
)

// Status is the opaque result code of a host primitive. Zero is success.
type Status uint32

// Known status codes. Hosts may return codes outside this set; callers
// treat those as internal failures.
const (
	StatusOK              Status = 0
	StatusUnsupported     Status = 1
	StatusInvalidArgument Status = 2
	StatusAuthFailed      Status = 3
	StatusInternal        Status = 4
)

// String returns a short name for the status, for diagnostics.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusUnsupported:
		return "unsupported"
	case StatusInvalidArgument:
		return "invalid argument"
	case StatusAuthFailed:
		return "authentication failed"
	case StatusInternal:
		return "internal failure"
	}
	return "unknown"
}

// EncryptParams is the flat parameter block for [Host.Encrypt].
type EncryptParams struct {
	// Key is the AES-256 key, exactly 32 bytes.
	Key []byte
	// Nonce is the GCM nonce, exactly 12 bytes.
	Nonce []byte
	// AAD is the associated data, authenticated but not encrypted. May be
	// empty or nil.
	AAD []byte
	// Clear is the cleartext input. Nil selects in-place mode, in which case
	// CipherOut holds the cleartext on entry.
	Clear []byte
	// CipherOut receives the ciphertext. Must be exactly len(Clear) bytes
	// when Clear is non-nil; in in-place mode its full length is
	// transformed.
	CipherOut []byte
	// TagOut receives the 16-byte authentication tag.
	TagOut []byte
}

// DecryptParams is the flat parameter block for [Host.Decrypt].
type DecryptParams struct {
	// Key is the AES-256 key, exactly 32 bytes.
	Key []byte
	// Nonce is the GCM nonce, exactly 12 bytes.
	Nonce []byte
	// AAD is the associated data that was authenticated at encryption time.
	AAD []byte
	// Tag is the 16-byte authentication tag to verify.
	Tag []byte
	// Cipher is the ciphertext input. Nil selects in-place mode, in which
	// case ClearOut holds the ciphertext on entry.
	Cipher []byte
	// ClearOut receives the recovered cleartext. Must be exactly
	// len(Cipher) bytes when Cipher is non-nil. On any non-OK status its
	// contents are undefined and must be discarded.
	ClearOut []byte
}

// Host is the trusted collaborator that computes AES-256-GCM on behalf of
// the SDK. Implementations must be safe for use from a single goroutine per
// call; the SDK serializes nothing beyond that.
type Host interface {
	// QuerySupport reports the capability bitmask. An all-zero mask means
	// the AEAD primitive is absent.
	QuerySupport() uint32

	// Encrypt encrypts and authenticates per the parameter block, writing
	// ciphertext and tag into the out slices. It must not write any output
	// when returning a non-OK status, except that in-place buffers may hold
	// partially transformed data.
	Encrypt(p *EncryptParams) Status

	// Decrypt verifies the tag and recovers cleartext per the parameter
	// block. Tag comparison must be constant time. On verification failure
	// it returns StatusAuthFailed and must not expose cleartext, except
	// that in-place buffers may hold partially transformed data.
	Decrypt(p *DecryptParams) Status
}
