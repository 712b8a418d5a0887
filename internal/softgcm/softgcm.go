// Package softgcm provides an in-process software implementation of the
// host delegation contract, backed by the standard library's AES-256-GCM.
//
// It is the default host used when the SDK is constructed without an
// explicit one, and the deterministic fixture for the test suite. It
// advertises both buffer-aliasing modes.
package softgcm

import (
	"crypto/aes"
	"crypto/cipher"

	"github.com/cipherhost/client-go/internal/hostapi"
)

// Host computes AES-256-GCM locally. The zero value is ready to use.
type Host struct{}

// Compile-time check that Host satisfies the delegation contract.
var _ hostapi.Host = Host{}

// QuerySupport reports support for both distinct-buffer and in-place modes.
func (Host) QuerySupport() uint32 {
	return hostapi.SupportNoCopy | hostapi.SupportInPlaceNoCopy
}

// newGCM builds the AEAD for a 32-byte key.
func newGCM(key []byte) (cipher.AEAD, hostapi.Status) {
	if len(key) != hostapi.KeySize {
		return nil, hostapi.StatusInvalidArgument
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, hostapi.StatusInternal
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, hostapi.StatusInternal
	}
	return aead, hostapi.StatusOK
}

// Encrypt implements hostapi.Host.
func (Host) Encrypt(p *hostapi.EncryptParams) hostapi.Status {
	if p == nil || p.Nonce == nil || p.CipherOut == nil && len(p.Clear) > 0 {
		return hostapi.StatusInvalidArgument
	}
	if len(p.Nonce) != hostapi.NonceSize || len(p.TagOut) != hostapi.TagSize {
		return hostapi.StatusInvalidArgument
	}

	clear := p.Clear
	if clear == nil {
		// In-place mode: the output buffer holds the cleartext on entry.
		clear = p.CipherOut
	} else if len(p.CipherOut) != len(clear) {
		return hostapi.StatusInvalidArgument
	}

	aead, status := newGCM(p.Key)
	if status != hostapi.StatusOK {
		return status
	}

	// Seal appends ciphertext||tag; sealing into a fresh buffer keeps the
	// in-place aliasing between clear and CipherOut harmless.
	sealed := aead.Seal(nil, p.Nonce, clear, p.AAD)
	copy(p.CipherOut, sealed[:len(clear)])
	copy(p.TagOut, sealed[len(clear):])
	return hostapi.StatusOK
}

// Decrypt implements hostapi.Host.
func (Host) Decrypt(p *hostapi.DecryptParams) hostapi.Status {
	if p == nil || p.Nonce == nil || p.ClearOut == nil && len(p.Cipher) > 0 {
		return hostapi.StatusInvalidArgument
	}
	if len(p.Nonce) != hostapi.NonceSize || len(p.Tag) != hostapi.TagSize {
		return hostapi.StatusInvalidArgument
	}

	ciphertext := p.Cipher
	if ciphertext == nil {
		// In-place mode: the output buffer holds the ciphertext on entry.
		ciphertext = p.ClearOut
	} else if len(p.ClearOut) != len(ciphertext) {
		return hostapi.StatusInvalidArgument
	}

	aead, status := newGCM(p.Key)
	if status != hostapi.StatusOK {
		return status
	}

	sealed := make([]byte, 0, len(ciphertext)+hostapi.TagSize)
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, p.Tag...)

	// Open performs the constant-time tag comparison required by the
	// contract and returns no cleartext on mismatch.
	clear, err := aead.Open(nil, p.Nonce, sealed, p.AAD)
	if err != nil {
		return hostapi.StatusAuthFailed
	}
	copy(p.ClearOut, clear)
	return hostapi.StatusOK
}
