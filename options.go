package cipherhost

// clientConfig holds configuration for the client.
type clientConfig struct {
	host Host
}

// Option configures the client.
type Option func(*clientConfig)

// WithHost sets the host collaborator that performs the AES-256-GCM
// computation. When omitted, the built-in in-process software host is used.
func WithHost(h Host) Option {
	return func(c *clientConfig) {
		c.host = h
	}
}
