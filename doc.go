// Package duplex implements the sender side of a request/response exchange
// built on Hybrid Public Key Encryption (HPKE, RFC 9180).
//
// A sender encrypts one or more requests to a recipient's public key and
// decrypts a single response using a symmetric key it derived itself during
// setup, so the recipient never needs a key pair of its own to reply.
// [SetUpBaseSender] is the entry point: it encapsulates to the recipient
// key and returns a [SenderContext] bundling the encapsulated KEM share,
// a [RequestContext] for sealing requests, and a [ResponseContext] for
// opening the response.
//
// # Algorithm Suite
//
// The cipher suite is fixed and not negotiable:
//
//   - KEM: X25519 with HKDF-SHA-256 (RFC 9180 DHKEM)
//   - KDF: HKDF-SHA-256
//   - AEAD: AES-256-GCM (32-byte key, 12-byte nonce, 16-byte tag)
//
// The response key and nonce are derived from the established HPKE context
// with the exporter labels "response_key" (32 bytes) and "response_nonce"
// (12 bytes). A recipient implementation must derive the same values from
// its own context to encrypt the response.
//
// # Security Model
//
// Request nonces are managed by the HPKE context itself: every Seal
// advances a private sequence counter, so sealing the same plaintext twice
// never reuses a nonce. The response direction instead uses one fixed
// nonce, which is only safe because exactly one response is ever decrypted
// per context. [ResponseContext] enforces this: after the first successful
// Open it refuses further calls with [ErrResponseConsumed]. Construct a
// fresh [SenderContext] for every response you expect.
//
// No type in this package is safe for concurrent use. Callers sharing a
// context across goroutines must serialize calls themselves.
//
// # Errors
//
// All failures are classified as one of two kinds, checkable with
// errors.Is: [ErrInvalidArgument] for empty or malformed caller input, and
// [ErrAborted] for any underlying cryptographic failure. Decryption
// failures are not distinguished further, so an attacker learns nothing
// about why a ciphertext was rejected. Partial output is never returned.
package duplex
