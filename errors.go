package duplex

import "errors"

// Sentinel errors for errors.Is() checks.
var (
	// ErrInvalidArgument is returned when a required input is empty or
	// malformed, before any cryptographic work is attempted.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrAborted is returned when an underlying cryptographic operation
	// fails. Authentication failures and malformed ciphertexts are
	// deliberately reported identically.
	ErrAborted = errors.New("cryptographic operation aborted")

	// ErrResponseConsumed is returned by ResponseContext.Open after a
	// response has already been decrypted. A ResponseContext holds a single
	// fixed nonce and therefore decrypts exactly one message.
	ErrResponseConsumed = errors.New("response already consumed")
)
