// Package suite pins the cipher suite used by the exchange and adapts the
// underlying HPKE primitive library behind small interfaces.
//
// The suite is fixed: X25519 with HKDF-SHA-256 as the KEM, HKDF-SHA-256 as
// the KDF, and AES-256-GCM as the AEAD. There is no runtime negotiation;
// both sides of an exchange must agree on the suite out of band.
package suite

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	"github.com/cloudflare/circl/hpke"
)

const (
	kemID  = hpke.KEM_X25519_HKDF_SHA256
	kdfID  = hpke.KDF_HKDF_SHA256
	aeadID = hpke.AEAD_AES256GCM
)

const (
	// KeySize is the size of the response AES-256 key in bytes.
	KeySize = 32
	// NonceSize is the size of an AES-GCM nonce in bytes.
	NonceSize = 12
	// TagSize is the size of an AES-GCM authentication tag in bytes.
	TagSize = 16
	// PublicKeySize is the size of an X25519 public key in bytes.
	PublicKeySize = 32
	// EncapsulatedKeySize is the size of the encapsulated KEM share in bytes.
	EncapsulatedKeySize = 32
)

// Exporter context labels for deriving the response key and nonce from an
// established HPKE context. Both sides must use identical labels.
const (
	ResponseKeyLabel   = "response_key"
	ResponseNonceLabel = "response_nonce"
)

// randReader is the random source used for encapsulation. It defaults to
// crypto/rand but can be overridden for deterministic tests.
var randReader io.Reader = rand.Reader

// Sealer is the sending half of an established HPKE context. Seal advances
// the context's internal nonce sequence on every call. Defined as an
// interface so tests and non-circl implementations can stand in.
type Sealer interface {
	Seal(plaintext, associatedData []byte) ([]byte, error)
	Export(exporterContext []byte, length uint) []byte
}

// Opener is the receiving half of an established HPKE context. The caller
// surface of this module is sender-only; Opener exists for round-trip tests
// and the interop helper.
type Opener interface {
	Open(ciphertext, associatedData []byte) ([]byte, error)
	Export(exporterContext []byte, length uint) []byte
}

func newSuite() hpke.Suite {
	return hpke.NewSuite(kemID, kdfID, aeadID)
}

// SetupSender encapsulates to recipientPublicKey and returns the
// encapsulated KEM share together with the live sealing context. The info
// string binds the context to an application; both sides must supply the
// same value.
func SetupSender(recipientPublicKey, info []byte) ([]byte, Sealer, error) {
	pub, err := kemID.Scheme().UnmarshalBinaryPublicKey(recipientPublicKey)
	if err != nil {
		return nil, nil, fmt.Errorf("parse recipient public key: %w", err)
	}

	sender, err := newSuite().NewSender(pub, info)
	if err != nil {
		return nil, nil, fmt.Errorf("new sender: %w", err)
	}

	enc, sealer, err := sender.Setup(randReader)
	if err != nil {
		return nil, nil, fmt.Errorf("encapsulate: %w", err)
	}

	return enc, sealer, nil
}

// SetupRecipient establishes the receiving context that matches a sender's
// encapsulated KEM share.
func SetupRecipient(recipientPrivateKey, encapsulatedKey, info []byte) (Opener, error) {
	priv, err := kemID.Scheme().UnmarshalBinaryPrivateKey(recipientPrivateKey)
	if err != nil {
		return nil, fmt.Errorf("parse recipient private key: %w", err)
	}

	receiver, err := newSuite().NewReceiver(priv, info)
	if err != nil {
		return nil, fmt.Errorf("new receiver: %w", err)
	}

	opener, err := receiver.Setup(encapsulatedKey)
	if err != nil {
		return nil, fmt.Errorf("decapsulate: %w", err)
	}

	return opener, nil
}

// GenerateKeyPair creates a fresh X25519 recipient keypair, returned as raw
// encoded bytes.
func GenerateKeyPair() (publicKey, privateKey []byte, err error) {
	pub, priv, err := kemID.Scheme().GenerateKeyPair()
	if err != nil {
		return nil, nil, err
	}

	// MarshalBinary never fails for keys produced by GenerateKeyPair.
	publicKey, _ = pub.MarshalBinary()
	privateKey, _ = priv.MarshalBinary()
	return publicKey, privateKey, nil
}

// NewResponseAEAD builds the AES-256-GCM context used for response
// messages from an exported key.
func NewResponseAEAD(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("response key must be %d bytes, got %d", KeySize, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	return cipher.NewGCM(block)
}
