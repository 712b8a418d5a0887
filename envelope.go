package cipherhost

import (
	"crypto/rand"
	"fmt"

	"github.com/cipherhost/client-go/internal/crypto"
)

// Keypair is an ML-KEM-768 keypair used by the sealed envelope scheme.
type Keypair = crypto.Keypair

// GenerateKeypair creates a new ML-KEM-768 keypair for receiving envelopes.
func GenerateKeypair() (*Keypair, error) {
	return crypto.GenerateKeypair()
}

// KeypairFromSecretKey reconstructs a keypair from its secret key bytes.
func KeypairFromSecretKey(secretKey []byte) (*Keypair, error) {
	return crypto.KeypairFromSecretKey(secretKey)
}

// Algs is the canonical algorithm suite string carried by every envelope.
var Algs = crypto.AlgsCiphersuite

// Envelope is a sealed message: a fresh KEM encapsulation plus the
// host-encrypted payload. The JSON form uses URL-safe base64 without
// padding for all binary fields.
type Envelope struct {
	// Algs identifies the algorithm suite the envelope was sealed with.
	Algs string `json:"algs"`
	// CtKem is the ML-KEM-768 ciphertext carrying the encapsulated secret.
	CtKem crypto.B64Bytes `json:"ctKem"`
	// Nonce is the 12-byte AES-GCM nonce, drawn fresh per envelope.
	Nonce crypto.B64Bytes `json:"nonce"`
	// Text is the AES-256-GCM ciphertext.
	Text crypto.B64Bytes `json:"text"`
	// Tag is the 16-byte authentication tag.
	Tag crypto.B64Bytes `json:"tag"`
}

// Seal encrypts a cleartext to the holder of recipientPublicKey.
//
// A fresh ML-KEM-768 encapsulation establishes a per-message shared secret;
// the AES-256 key is derived from it with HKDF-SHA-512 bound to the AAD and
// the KEM ciphertext; encryption is then delegated to the host through the
// core encrypt path with a random nonce.
//
// Because each envelope uses a fresh encapsulation and nonce, Seal is safe
// to call repeatedly for the same recipient.
func (c *Client) Seal(recipientPublicKey, aad, clear []byte) (*Envelope, error) {
	ctKem, sharedSecret, err := crypto.Encapsulate(recipientPublicKey)
	if err != nil {
		return nil, &EnvelopeError{Stage: "kem", Err: err}
	}

	key, err := crypto.DeriveEnvelopeKey(sharedSecret, aad, ctKem)
	if err != nil {
		return nil, &EnvelopeError{Stage: "hkdf", Err: err}
	}

	nonce := make([]byte, NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, &EnvelopeError{Stage: "aead", Err: fmt.Errorf("generate nonce: %w", err)}
	}

	cipher, err := c.Encrypt(key, nonce, aad, clear)
	if err != nil {
		return nil, &EnvelopeError{Stage: "aead", Err: err}
	}

	return &Envelope{
		Algs:  Algs,
		CtKem: ctKem,
		Nonce: nonce,
		Text:  cipher.Text,
		Tag:   cipher.Tag,
	}, nil
}

// Open decapsulates and decrypts an envelope sealed to keypair. The AAD
// must match the one supplied to [Client.Seal]; tag verification happens on
// the host as part of the delegated decrypt.
func (c *Client) Open(keypair *Keypair, aad []byte, env *Envelope) ([]byte, error) {
	if !crypto.ValidateKeypair(keypair) {
		return nil, ErrInvalidKeypair
	}
	if env == nil {
		return nil, ErrInvalidEnvelope
	}
	if env.Algs != Algs {
		return nil, &EnvelopeError{Stage: "decode", Err: ErrInvalidAlgorithm}
	}
	if len(env.Nonce) != NonceSize || len(env.Tag) != TagSize {
		return nil, &EnvelopeError{Stage: "decode", Err: ErrInvalidEnvelope}
	}

	sharedSecret, err := keypair.Decapsulate(env.CtKem)
	if err != nil {
		return nil, &EnvelopeError{Stage: "kem", Err: err}
	}

	key, err := crypto.DeriveEnvelopeKey(sharedSecret, aad, env.CtKem)
	if err != nil {
		return nil, &EnvelopeError{Stage: "hkdf", Err: err}
	}

	clear, err := c.Decrypt(key, env.Nonce, aad, &Cipher{Text: env.Text, Tag: env.Tag})
	if err != nil {
		return nil, &EnvelopeError{Stage: "aead", Err: err}
	}

	return clear, nil
}
