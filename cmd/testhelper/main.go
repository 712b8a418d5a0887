// Command testhelper exercises the SDK from the command line for
// cross-implementation testing: another AES-256-GCM implementation can pipe
// JSON vectors through it and compare results.
//
// Usage:
//
//	testhelper support
//	testhelper encrypt   < vector.json
//	testhelper decrypt   < vector.json
//	testhelper roundtrip < vector.json
//
// All binary fields are URL-safe base64 without padding.
package main

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"os"

	cipherhost "github.com/cipherhost/client-go"
)

// Config wires the helper's streams, so tests can capture them.
type Config struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// DefaultConfig returns a Config bound to the process streams.
func DefaultConfig() Config {
	return Config{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// B64 is a byte slice carried as URL-safe base64 without padding in JSON.
type B64 []byte

// MarshalJSON implements json.Marshaler.
func (b B64) MarshalJSON() ([]byte, error) {
	return json.Marshal(base64.RawURLEncoding.EncodeToString(b))
}

// UnmarshalJSON implements json.Unmarshaler.
func (b *B64) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	decoded, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return err
	}
	*b = decoded
	return nil
}

// Vector is the JSON input for encrypt, decrypt, and roundtrip.
type Vector struct {
	Key   B64 `json:"key"`
	Nonce B64 `json:"nonce"`
	AAD   B64 `json:"aad,omitempty"`
	Clear B64 `json:"clear,omitempty"`
	Text  B64 `json:"text,omitempty"`
	Tag   B64 `json:"tag,omitempty"`
}

// SupportOutput is the JSON result of the support command.
type SupportOutput struct {
	Supported     bool `json:"supported"`
	NoCopy        bool `json:"noCopy"`
	InPlaceNoCopy bool `json:"inPlaceNoCopy"`
}

func run(args []string, cfg Config) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: testhelper <support|encrypt|decrypt|roundtrip>")
	}

	client, err := cipherhost.New()
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}

	switch args[1] {
	case "support":
		return runSupport(client, cfg)
	case "encrypt":
		return runEncrypt(client, cfg)
	case "decrypt":
		return runDecrypt(client, cfg)
	case "roundtrip":
		return runRoundtrip(client, cfg)
	default:
		return fmt.Errorf("unknown command: %s", args[1])
	}
}

func readVector(cfg Config) (*Vector, error) {
	var v Vector
	if err := json.NewDecoder(cfg.Stdin).Decode(&v); err != nil {
		return nil, fmt.Errorf("parse vector: %w", err)
	}
	return &v, nil
}

func writeJSON(cfg Config, v any) error {
	return json.NewEncoder(cfg.Stdout).Encode(v)
}

func runSupport(client *cipherhost.Client, cfg Config) error {
	support := client.Support()
	return writeJSON(cfg, SupportOutput{
		Supported:     client.IsSupported(),
		NoCopy:        support.NoCopy,
		InPlaceNoCopy: support.InPlaceNoCopy,
	})
}

func runEncrypt(client *cipherhost.Client, cfg Config) error {
	v, err := readVector(cfg)
	if err != nil {
		return err
	}

	cipher, err := client.Encrypt(v.Key, v.Nonce, v.AAD, v.Clear)
	if err != nil {
		return fmt.Errorf("encrypt: %w", err)
	}

	return writeJSON(cfg, Vector{Text: cipher.Text, Tag: cipher.Tag})
}

func runDecrypt(client *cipherhost.Client, cfg Config) error {
	v, err := readVector(cfg)
	if err != nil {
		return err
	}

	clear, err := client.Decrypt(v.Key, v.Nonce, v.AAD, &cipherhost.Cipher{
		Text: v.Text,
		Tag:  v.Tag,
	})
	if err != nil {
		return fmt.Errorf("decrypt: %w", err)
	}

	return writeJSON(cfg, Vector{Clear: clear})
}

// runRoundtrip encrypts in both buffer modes, checks they agree, decrypts,
// and checks the cleartext survives.
func runRoundtrip(client *cipherhost.Client, cfg Config) error {
	v, err := readVector(cfg)
	if err != nil {
		return err
	}

	cipher, err := client.Encrypt(v.Key, v.Nonce, v.AAD, v.Clear)
	if err != nil {
		return fmt.Errorf("encrypt: %w", err)
	}

	buffer := append([]byte(nil), v.Clear...)
	tag, err := client.EncryptInPlace(v.Key, v.Nonce, v.AAD, buffer)
	if err != nil {
		return fmt.Errorf("encrypt in place: %w", err)
	}
	if !bytes.Equal(buffer, cipher.Text) || !bytes.Equal(tag, cipher.Tag) {
		return fmt.Errorf("in-place mode disagrees with copying mode")
	}

	clear, err := client.Decrypt(v.Key, v.Nonce, v.AAD, cipher)
	if err != nil {
		return fmt.Errorf("decrypt: %w", err)
	}
	if !bytes.Equal(clear, v.Clear) {
		return fmt.Errorf("round trip lost the cleartext")
	}

	return writeJSON(cfg, Vector{Text: cipher.Text, Tag: cipher.Tag, Clear: clear})
}
