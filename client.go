package cipherhost

import (
	"github.com/cipherhost/client-go/internal/hostapi"
	"github.com/cipherhost/client-go/internal/softgcm"
)

// Sizes fixed by the AES-256-GCM contract, in bytes.
const (
	// KeySize is the required key length: AES-256 keys are 32 bytes.
	KeySize = hostapi.KeySize
	// NonceSize is the required nonce length.
	NonceSize = hostapi.NonceSize
	// TagSize is the length of the authentication tag.
	TagSize = hostapi.TagSize
)

// Support describes which buffer-aliasing modes the host handles.
//
// The descriptor is a snapshot taken when the client is created; it does
// not change during a session. A false flag does not forbid calling the
// corresponding mode — a host may support a superset of what it advertises —
// but a true flag guarantees the mode works for well-formed parameters.
type Support struct {
	// NoCopy reports that encrypt and decrypt work when input and output
	// buffers are distinct memory regions.
	NoCopy bool

	// InPlaceNoCopy reports that encrypt and decrypt work when input and
	// output share one buffer, transformed in place.
	InPlaceNoCopy bool
}

// Client performs AEAD operations by delegating to a host collaborator.
//
// A Client holds no mutable state and performs no locking; it is safe for
// concurrent use as long as the underlying host supports concurrent
// invocation. Buffers passed to an operation must remain exclusively
// accessible to that call for its duration.
type Client struct {
	host    Host
	support uint32
}

// New creates a client and queries the host's capabilities once. When no
// [WithHost] option is given, the built-in software host is used.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		host: softgcm.Host{},
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.host == nil {
		return nil, ErrNilHost
	}

	return &Client{
		host:    cfg.host,
		support: cfg.host.QuerySupport(),
	}, nil
}

// IsSupported reports whether the AEAD service exists at all. When the
// host's primitive is entirely absent the capability mask is all-zero and
// this returns false.
func (c *Client) IsSupported() bool {
	return c.support != 0
}

// Support reports the fine-grained buffer-aliasing capabilities recorded
// when the client was created.
func (c *Client) Support() Support {
	return Support{
		NoCopy:        c.support&hostapi.SupportNoCopy != 0,
		InPlaceNoCopy: c.support&hostapi.SupportInPlaceNoCopy != 0,
	}
}
