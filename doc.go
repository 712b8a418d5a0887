// Package cipherhost provides a Go client SDK for CipherHost, an
// authenticated-encryption (AEAD) service where the AES-256-GCM computation
// is delegated to a trusted host environment.
//
// The SDK is written for constrained callers — sandboxed applets, embedded
// applications, plugins — that must not (or cannot) run the cipher
// themselves. It covers capability negotiation, the copying and in-place
// buffer modes, and the encrypt/decrypt/authenticate failure paths.
//
// Basic usage:
//
//	client, err := cipherhost.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	key := make([]byte, cipherhost.KeySize)
//	nonce := make([]byte, cipherhost.NonceSize)
//	// ... fill key and nonce; the nonce MUST be unique per (key, message).
//
//	cipher, err := client.Encrypt(key, nonce, nil, []byte("hello"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	clear, err := client.Decrypt(key, nonce, nil, cipher)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Host Delegation
//
// By default the client uses a built-in software host that computes
// AES-256-GCM in process. Embedders running inside a real sandbox supply
// their own [Host] with [WithHost]; the host receives flat parameter blocks
// of borrowed slices and returns a status code per operation.
//
// Capabilities are queried once at [New] and cached for the client's
// lifetime. [Client.IsSupported] reports whether the AEAD primitive exists
// at all; [Client.Support] reports which buffer-aliasing modes the host
// handles.
//
// # Buffer Modes
//
// [Client.Encrypt] and [Client.Decrypt] allocate a fresh output buffer and
// leave their inputs untouched. [Client.EncryptInPlace] and
// [Client.DecryptInPlace] transform a caller buffer without a separate
// allocation; the buffer must remain exclusively accessible to the call for
// its duration, and its contents are undefined after any error return —
// discard it, never inspect it.
//
// # Security Notes
//
// Nonces MUST be unique for each encryption with the same key. Nonce reuse
// completely breaks the security of AES-GCM, allowing attackers to recover
// the authentication key and forge messages. The SDK does not enforce
// uniqueness; it is a caller obligation.
//
// Any non-nil error means no cryptographic guarantee holds for the
// operation's output. On [ErrAuthenticationFailed] in particular, no
// cleartext is ever returned; callers must never act on partially-decrypted
// data.
//
// # Sealed Envelopes
//
// For callers that hold a recipient's public key instead of a shared
// symmetric key, [Client.Seal] and [Client.Open] wrap the core AEAD
// operations in a per-message key establishment scheme
// (ML-KEM-768 + HKDF-SHA-512). The AEAD computation itself is still
// delegated to the host.
package cipherhost
