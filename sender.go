package duplex

import (
	"fmt"

	"github.com/duplexcrypto/hpke-go/internal/suite"
)

// SenderContext bundles everything the sender side of one exchange needs:
// the encapsulated KEM share the recipient requires to derive the shared
// secret, a [RequestContext] for encrypting requests, and a
// [ResponseContext] for decrypting the single expected response. It is
// produced once by [SetUpBaseSender] and not mutated afterwards.
//
// The two contexts are derived from the same key exchange but are
// independent: the request side sealing state has no effect on the
// response side, and either can be discarded without affecting the other.
type SenderContext struct {
	// EncapsulatedPublicKey must be transmitted to the recipient, typically
	// alongside the first request, so it can derive the matching shared
	// secret.
	EncapsulatedPublicKey []byte

	// RequestContext encrypts outgoing requests.
	RequestContext *RequestContext

	// ResponseContext decrypts the single expected response.
	ResponseContext *ResponseContext
}

// SetUpBaseSender establishes the sender side of a request/response HPKE
// exchange in base mode.
//
// recipientPublicKey is the recipient's raw X25519 public key (32 bytes).
// info is an arbitrary application-binding string, possibly empty; the
// recipient must supply the identical value when deriving its context.
//
// An empty recipientPublicKey fails with an error wrapping
// [ErrInvalidArgument]. Any primitive failure, including a structurally
// valid but cryptographically unusable recipient key, fails with an error
// wrapping [ErrAborted]. Nothing is retried.
func SetUpBaseSender(recipientPublicKey, info []byte) (*SenderContext, error) {
	if len(recipientPublicKey) == 0 {
		return nil, fmt.Errorf("no recipient public key was provided: %w", ErrInvalidArgument)
	}

	enc, sealer, err := suite.SetupSender(recipientPublicKey, info)
	if err != nil {
		return nil, fmt.Errorf("unable to set up sender context: %w", ErrAborted)
	}
	encapsulatedKey := newKeyInfo(enc)

	// Both exports must happen against the freshly established context.
	// Exporting does not alter sealing state, but the derivation is only
	// well defined before any seal consumes the context.
	responseKey := newKeyInfo(sealer.Export([]byte(suite.ResponseKeyLabel), suite.KeySize))

	aead, err := suite.NewResponseAEAD(responseKey.Value())
	if err != nil {
		return nil, fmt.Errorf("unable to create response decryption context: %w", ErrAborted)
	}

	responseNonce := newKeyInfo(sealer.Export([]byte(suite.ResponseNonceLabel), suite.NonceSize))

	return &SenderContext{
		EncapsulatedPublicKey: encapsulatedKey.Value(),
		RequestContext:        &RequestContext{sealer: sealer},
		ResponseContext: &ResponseContext{
			aead:  aead,
			nonce: responseNonce.Value(),
		},
	}, nil
}
