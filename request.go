package duplex

import (
	"fmt"

	"github.com/duplexcrypto/hpke-go/internal/suite"
)

// RequestContext encrypts request messages to the recipient. It exclusively
// owns the live HPKE sealing context established by [SetUpBaseSender].
//
// The underlying context advances a private nonce sequence on every Seal,
// so sealing identical plaintexts never reuses a nonce. The sequence
// counter is not protected by a lock: callers sharing one RequestContext
// across goroutines must serialize Seal calls themselves.
type RequestContext struct {
	sealer suite.Sealer
}

// Seal authenticates and encrypts plaintext, binding associatedData. Both
// arguments may be empty. The ciphertext is the plaintext length plus the
// AEAD tag overhead.
//
// On failure Seal returns an error wrapping [ErrAborted] and no output.
// The state of the nonce sequence after a failure is unspecified; callers
// must treat the context as invalidated and not seal through it again.
func (c *RequestContext) Seal(plaintext, associatedData []byte) ([]byte, error) {
	ciphertext, err := c.sealer.Seal(plaintext, associatedData)
	if err != nil {
		return nil, fmt.Errorf("unable to seal request: %w", ErrAborted)
	}
	return ciphertext, nil
}
