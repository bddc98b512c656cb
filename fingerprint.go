package duplex

import (
	"crypto/sha256"
	"encoding/hex"
)

// FingerprintRecipientKey returns a short hex fingerprint of a recipient
// public key for out-of-band comparison by humans. It is not a substitute
// for authenticating the key.
func FingerprintRecipientKey(publicKey []byte) string {
	sum := sha256.Sum256(publicKey)
	return hex.EncodeToString(sum[:10])
}
