// Package crypto provides the client-side primitives for the sealed
// envelope scheme: post-quantum key encapsulation and key derivation.
//
// # Algorithm Suite
//
//   - ML-KEM-768 (NIST FIPS 203): key encapsulation mechanism used to
//     establish a fresh shared secret per envelope. Provides 192-bit
//     classical and quantum security levels.
//
//   - HKDF-SHA-512 (RFC 5869): derives the AES-256 key from the KEM shared
//     secret with domain separation bound to the envelope context, the AAD,
//     and the KEM ciphertext.
//
// The AES-256-GCM computation itself is never performed here; it is always
// delegated to the host collaborator through the SDK's core operations.
//
// # Key Management
//
// Use [GenerateKeypair] to create a new ML-KEM-768 keypair. The secret key
// contains an embedded copy of the public key at offset 1152, which can be
// extracted using [KeypairFromSecretKey].
//
// Keep secret keys secure. They should never be logged, transmitted in
// plaintext, or stored in version control.
package crypto
