package crypto

import (
	"encoding/base64"
)

// ToBase64URL encodes bytes to URL-safe base64 without padding.
func ToBase64URL(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

// FromBase64URL decodes URL-safe base64 without padding.
func FromBase64URL(s string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(s)
}

// B64Bytes is a byte slice that marshals to and from URL-safe base64
// without padding in JSON, the wire form used for all envelope fields.
type B64Bytes []byte

// MarshalJSON implements json.Marshaler for B64Bytes.
func (b B64Bytes) MarshalJSON() ([]byte, error) {
	return []byte(`"` + ToBase64URL(b) + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for B64Bytes.
func (b *B64Bytes) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*b = nil
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return ErrInvalidSize
	}
	encoded := string(data[1 : len(data)-1])
	if encoded == "" {
		*b = nil
		return nil
	}
	decoded, err := FromBase64URL(encoded)
	if err != nil {
		return err
	}
	*b = decoded
	return nil
}
