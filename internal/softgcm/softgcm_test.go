package softgcm

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/cipherhost/client-go/internal/hostapi"
)

func randomBytes(t *testing.T, n int) []byte {
	t.Helper()
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		t.Fatal(err)
	}
	return b
}

func TestQuerySupport(t *testing.T) {
	mask := Host{}.QuerySupport()

	if mask&hostapi.SupportNoCopy == 0 {
		t.Error("NoCopy bit not set")
	}
	if mask&hostapi.SupportInPlaceNoCopy == 0 {
		t.Error("InPlaceNoCopy bit not set")
	}
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		clear []byte
		aad   []byte
	}{
		{"empty", []byte{}, nil},
		{"simple", []byte("hello world"), nil},
		{"with aad", []byte("hello world"), []byte("header")},
		{"empty clear with aad", []byte{}, []byte("header")},
		{"binary", []byte{0x00, 0xff, 0x7f, 0x80}, []byte{0x01}},
		{"large", make([]byte, 10000), nil},
	}

	host := Host{}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := randomBytes(t, hostapi.KeySize)
			nonce := randomBytes(t, hostapi.NonceSize)

			cipherOut := make([]byte, len(tt.clear))
			tag := make([]byte, hostapi.TagSize)

			status := host.Encrypt(&hostapi.EncryptParams{
				Key:       key,
				Nonce:     nonce,
				AAD:       tt.aad,
				Clear:     tt.clear,
				CipherOut: cipherOut,
				TagOut:    tag,
			})
			if status != hostapi.StatusOK {
				t.Fatalf("Encrypt() status = %v", status)
			}

			clearOut := make([]byte, len(cipherOut))
			status = host.Decrypt(&hostapi.DecryptParams{
				Key:      key,
				Nonce:    nonce,
				AAD:      tt.aad,
				Tag:      tag,
				Cipher:   cipherOut,
				ClearOut: clearOut,
			})
			if status != hostapi.StatusOK {
				t.Fatalf("Decrypt() status = %v", status)
			}

			if !bytes.Equal(clearOut, tt.clear) {
				t.Errorf("decrypted = %v, want %v", clearOut, tt.clear)
			}
		})
	}
}

func TestEncrypt_InPlaceMatchesCopying(t *testing.T) {
	host := Host{}
	key := randomBytes(t, hostapi.KeySize)
	nonce := randomBytes(t, hostapi.NonceSize)
	aad := []byte("aad")
	clear := []byte("the quick brown fox")

	cipherOut := make([]byte, len(clear))
	tag := make([]byte, hostapi.TagSize)
	status := host.Encrypt(&hostapi.EncryptParams{
		Key: key, Nonce: nonce, AAD: aad,
		Clear: clear, CipherOut: cipherOut, TagOut: tag,
	})
	if status != hostapi.StatusOK {
		t.Fatalf("copying Encrypt() status = %v", status)
	}

	buffer := append([]byte(nil), clear...)
	tagInPlace := make([]byte, hostapi.TagSize)
	status = host.Encrypt(&hostapi.EncryptParams{
		Key: key, Nonce: nonce, AAD: aad,
		Clear: nil, CipherOut: buffer, TagOut: tagInPlace,
	})
	if status != hostapi.StatusOK {
		t.Fatalf("in-place Encrypt() status = %v", status)
	}

	if !bytes.Equal(buffer, cipherOut) {
		t.Error("in-place ciphertext differs from copying mode")
	}
	if !bytes.Equal(tagInPlace, tag) {
		t.Error("in-place tag differs from copying mode")
	}

	// The in-place buffer must decrypt back in place as well.
	status = host.Decrypt(&hostapi.DecryptParams{
		Key: key, Nonce: nonce, AAD: aad, Tag: tagInPlace,
		Cipher: nil, ClearOut: buffer,
	})
	if status != hostapi.StatusOK {
		t.Fatalf("in-place Decrypt() status = %v", status)
	}
	if !bytes.Equal(buffer, clear) {
		t.Error("in-place decrypt did not restore cleartext")
	}
}

func TestDecrypt_TamperedTag(t *testing.T) {
	host := Host{}
	key := randomBytes(t, hostapi.KeySize)
	nonce := randomBytes(t, hostapi.NonceSize)
	clear := []byte("payload")

	cipherOut := make([]byte, len(clear))
	tag := make([]byte, hostapi.TagSize)
	if status := host.Encrypt(&hostapi.EncryptParams{
		Key: key, Nonce: nonce, Clear: clear, CipherOut: cipherOut, TagOut: tag,
	}); status != hostapi.StatusOK {
		t.Fatalf("Encrypt() status = %v", status)
	}

	tag[0] ^= 0x01

	clearOut := make([]byte, len(cipherOut))
	status := host.Decrypt(&hostapi.DecryptParams{
		Key: key, Nonce: nonce, Tag: tag, Cipher: cipherOut, ClearOut: clearOut,
	})
	if status != hostapi.StatusAuthFailed {
		t.Errorf("Decrypt() status = %v, want %v", status, hostapi.StatusAuthFailed)
	}
}

func TestEncrypt_InvalidParams(t *testing.T) {
	host := Host{}
	key := make([]byte, hostapi.KeySize)
	nonce := make([]byte, hostapi.NonceSize)

	tests := []struct {
		name   string
		params *hostapi.EncryptParams
	}{
		{"nil params", nil},
		{"short key", &hostapi.EncryptParams{
			Key: key[:16], Nonce: nonce,
			Clear: []byte("x"), CipherOut: make([]byte, 1), TagOut: make([]byte, hostapi.TagSize),
		}},
		{"short nonce", &hostapi.EncryptParams{
			Key: key, Nonce: nonce[:8],
			Clear: []byte("x"), CipherOut: make([]byte, 1), TagOut: make([]byte, hostapi.TagSize),
		}},
		{"short tag out", &hostapi.EncryptParams{
			Key: key, Nonce: nonce,
			Clear: []byte("x"), CipherOut: make([]byte, 1), TagOut: make([]byte, 8),
		}},
		{"mismatched cipher out", &hostapi.EncryptParams{
			Key: key, Nonce: nonce,
			Clear: []byte("xx"), CipherOut: make([]byte, 1), TagOut: make([]byte, hostapi.TagSize),
		}},
		{"missing cipher out", &hostapi.EncryptParams{
			Key: key, Nonce: nonce,
			Clear: []byte("x"), CipherOut: nil, TagOut: make([]byte, hostapi.TagSize),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if status := host.Encrypt(tt.params); status != hostapi.StatusInvalidArgument {
				t.Errorf("Encrypt() status = %v, want %v", status, hostapi.StatusInvalidArgument)
			}
		})
	}
}

func TestDecrypt_InvalidParams(t *testing.T) {
	host := Host{}
	key := make([]byte, hostapi.KeySize)
	nonce := make([]byte, hostapi.NonceSize)
	tag := make([]byte, hostapi.TagSize)

	tests := []struct {
		name   string
		params *hostapi.DecryptParams
	}{
		{"nil params", nil},
		{"short key", &hostapi.DecryptParams{
			Key: key[:16], Nonce: nonce, Tag: tag,
			Cipher: []byte("x"), ClearOut: make([]byte, 1),
		}},
		{"short nonce", &hostapi.DecryptParams{
			Key: key, Nonce: nonce[:8], Tag: tag,
			Cipher: []byte("x"), ClearOut: make([]byte, 1),
		}},
		{"short tag", &hostapi.DecryptParams{
			Key: key, Nonce: nonce, Tag: tag[:8],
			Cipher: []byte("x"), ClearOut: make([]byte, 1),
		}},
		{"mismatched clear out", &hostapi.DecryptParams{
			Key: key, Nonce: nonce, Tag: tag,
			Cipher: []byte("xx"), ClearOut: make([]byte, 1),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if status := host.Decrypt(tt.params); status != hostapi.StatusInvalidArgument {
				t.Errorf("Decrypt() status = %v, want %v", status, hostapi.StatusInvalidArgument)
			}
		})
	}
}

func TestEncrypt_EmptyInPlaceBuffer(t *testing.T) {
	host := Host{}
	key := randomBytes(t, hostapi.KeySize)
	nonce := randomBytes(t, hostapi.NonceSize)

	tag := make([]byte, hostapi.TagSize)
	status := host.Encrypt(&hostapi.EncryptParams{
		Key: key, Nonce: nonce, Clear: nil, CipherOut: nil, TagOut: tag,
	})
	if status != hostapi.StatusOK {
		t.Fatalf("Encrypt() status = %v", status)
	}

	// An empty message still yields a non-trivial tag.
	if bytes.Equal(tag, make([]byte, hostapi.TagSize)) {
		t.Error("tag for empty message is all zero")
	}

	status = host.Decrypt(&hostapi.DecryptParams{
		Key: key, Nonce: nonce, Tag: tag, Cipher: nil, ClearOut: nil,
	})
	if status != hostapi.StatusOK {
		t.Errorf("Decrypt() status = %v", status)
	}
}
