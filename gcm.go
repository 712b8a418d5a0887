package cipherhost

// Cipher is the result of an encrypt operation: the ciphertext together
// with its authentication tag. Both parts are required to decrypt;
// truncating or splitting either invalidates the artifact.
type Cipher struct {
	// Text is the ciphertext, the same length as the cleartext it was
	// derived from.
	Text []byte
	// Tag is the 16-byte authentication tag binding key, nonce, AAD, and
	// ciphertext together.
	Tag []byte
}

// checkKeyNonce validates the key and nonce lengths shared by every
// operation. The host validates again; checking here gives callers a
// precise error before any buffer is touched.
func checkKeyNonce(key, nonce []byte) error {
	if len(key) != KeySize {
		return &SizeError{Field: "key", Got: len(key), Want: KeySize, Err: ErrInvalidKeySize}
	}
	if len(nonce) != NonceSize {
		return &SizeError{Field: "nonce", Got: len(nonce), Want: NonceSize, Err: ErrInvalidNonceSize}
	}
	return nil
}

// Encrypt encrypts and authenticates a cleartext, leaving it untouched and
// returning freshly allocated ciphertext and tag.
//
// The key must be exactly 32 bytes and the nonce exactly 12 bytes. The AAD
// is authenticated but not encrypted and may be nil or empty; so may the
// cleartext. The nonce must be unique per (key, message) pair.
func (c *Client) Encrypt(key, nonce, aad, clear []byte) (*Cipher, error) {
	if err := checkKeyNonce(key, nonce); err != nil {
		return nil, err
	}

	cipher := &Cipher{
		Text: make([]byte, len(clear)),
		Tag:  make([]byte, TagSize),
	}
	if clear == nil {
		// Keep copy mode distinct from in-place mode, which a nil input
		// slice would otherwise select at the host boundary.
		clear = []byte{}
	}

	status := c.host.Encrypt(&EncryptParams{
		Key:       key,
		Nonce:     nonce,
		AAD:       aad,
		Clear:     clear,
		CipherOut: cipher.Text,
		TagOut:    cipher.Tag,
	})
	if status != StatusOK {
		return nil, hostStatusError("encrypt", status)
	}

	return cipher, nil
}

// EncryptInPlace encrypts and authenticates a buffer in place, transforming
// it from cleartext to ciphertext without a separate allocation, and
// returns the 16-byte tag.
//
// The buffer is overwritten unconditionally: on error its contents are
// undefined and must be discarded.
func (c *Client) EncryptInPlace(key, nonce, aad, buffer []byte) ([]byte, error) {
	if err := checkKeyNonce(key, nonce); err != nil {
		return nil, err
	}

	tag := make([]byte, TagSize)
	status := c.host.Encrypt(&EncryptParams{
		Key:       key,
		Nonce:     nonce,
		AAD:       aad,
		Clear:     nil, // in-place: buffer is both input and output
		CipherOut: buffer,
		TagOut:    tag,
	})
	if status != StatusOK {
		return nil, hostStatusError("encrypt", status)
	}

	return tag, nil
}

// Decrypt verifies and decrypts a cipher artifact, returning freshly
// allocated cleartext. The key, nonce, and AAD must match the ones used at
// encryption time.
//
// On [ErrAuthenticationFailed] no cleartext is returned; there is no
// partially-decrypted output to observe.
func (c *Client) Decrypt(key, nonce, aad []byte, cipher *Cipher) ([]byte, error) {
	if err := checkKeyNonce(key, nonce); err != nil {
		return nil, err
	}
	if cipher == nil {
		return nil, ErrNilCipher
	}
	if len(cipher.Tag) != TagSize {
		return nil, &SizeError{Field: "tag", Got: len(cipher.Tag), Want: TagSize, Err: ErrInvalidTagSize}
	}

	clear := make([]byte, len(cipher.Text))
	text := cipher.Text
	if text == nil {
		text = []byte{}
	}

	status := c.host.Decrypt(&DecryptParams{
		Key:      key,
		Nonce:    nonce,
		AAD:      aad,
		Tag:      cipher.Tag,
		Cipher:   text,
		ClearOut: clear,
	})
	if status != StatusOK {
		return nil, hostStatusError("decrypt", status)
	}

	return clear, nil
}

// DecryptInPlace verifies and decrypts a buffer in place, transforming it
// from ciphertext to cleartext without a separate allocation. The tag is
// supplied standalone and must be exactly 16 bytes.
//
// On any error the buffer's contents are undefined — it may hold partially
// transformed data — and must be discarded, never inspected.
func (c *Client) DecryptInPlace(key, nonce, aad, tag, buffer []byte) error {
	if err := checkKeyNonce(key, nonce); err != nil {
		return err
	}
	if len(tag) != TagSize {
		return &SizeError{Field: "tag", Got: len(tag), Want: TagSize, Err: ErrInvalidTagSize}
	}

	status := c.host.Decrypt(&DecryptParams{
		Key:      key,
		Nonce:    nonce,
		AAD:      aad,
		Tag:      tag,
		Cipher:   nil, // in-place: buffer is both input and output
		ClearOut: buffer,
	})
	if status != StatusOK {
		return hostStatusError("decrypt", status)
	}

	return nil
}
