package duplex

// KeyInfo holds raw key material produced by a cryptographic operation
// together with the number of bytes the operation actually wrote. Buffers
// may be allocated larger than the material they end up holding; the
// logical value is always the first Used bytes.
type KeyInfo struct {
	// Bytes is the backing buffer.
	Bytes []byte
	// Used is the number of bytes written by the operation that filled the
	// buffer. Invariant: Used <= len(Bytes).
	Used int
}

// newKeyInfo wraps material that was written in full.
func newKeyInfo(b []byte) KeyInfo {
	return KeyInfo{Bytes: b, Used: len(b)}
}

// Value returns the logical key material: the first Used bytes.
func (k KeyInfo) Value() []byte {
	if k.Used > len(k.Bytes) {
		return k.Bytes
	}
	return k.Bytes[:k.Used]
}
