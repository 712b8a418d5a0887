// Package hostapi defines the delegation boundary between the SDK and the
// host environment that performs the actual AES-256-GCM computation.
//
// The host exposes three primitives: a capability query returning a bitmask,
// and encrypt/decrypt operations taking flat parameter blocks and returning a
// status code. Buffers cross the boundary as borrowed slices owned by the
// caller; the host never retains them past the call.
//
// # In-Place Operation
//
// A nil input slice ([EncryptParams.Clear] on encrypt, [DecryptParams.Cipher]
// on decrypt) signals the host to transform the output buffer in place: the
// output slice then doubles as the input. On encrypt the buffer holds
// cleartext going in and ciphertext coming back; on decrypt the reverse.
// A host only honors this mode when it advertises [SupportInPlaceNoCopy].
//
// # Status Codes
//
// Every operation returns a [Status]. Zero means success; non-zero codes
// classify the failure just enough for the SDK to map them onto its public
// error taxonomy. Hosts must never report partial success: a non-zero status
// means no output buffer content may be trusted.
package hostapi
