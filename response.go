package duplex

import (
	"crypto/cipher"
	"fmt"
)

// ResponseContext decrypts the single response message the recipient sends
// back. It owns an AES-256-GCM context keyed by a secret exported from the
// request's HPKE context, and one fixed nonce exported the same way.
//
// Because the nonce is fixed, a ResponseContext decrypts exactly one
// message: the first successful Open consumes the context and every later
// call fails with [ErrResponseConsumed]. Construct a fresh [SenderContext]
// for each response you expect.
type ResponseContext struct {
	aead     cipher.AEAD
	nonce    []byte
	consumed bool
}

// Open authenticates and decrypts ciphertext with the context's fixed
// nonce, binding associatedData.
//
// An empty ciphertext fails with an error wrapping [ErrInvalidArgument]
// before the AEAD is touched. Authentication failures and malformed
// ciphertexts both fail with an error wrapping [ErrAborted]; no partial
// plaintext is ever returned and a failed Open leaves the context usable,
// so retrying with the correct ciphertext still works.
func (c *ResponseContext) Open(ciphertext, associatedData []byte) ([]byte, error) {
	if len(ciphertext) == 0 {
		return nil, fmt.Errorf("no ciphertext was provided: %w", ErrInvalidArgument)
	}
	if c.consumed {
		return nil, ErrResponseConsumed
	}

	plaintext, err := c.aead.Open(nil, c.nonce, ciphertext, associatedData)
	if err != nil {
		return nil, fmt.Errorf("unable to decrypt response: %w", ErrAborted)
	}

	c.consumed = true
	return plaintext, nil
}
