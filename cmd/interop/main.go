// Command interop drives the library over a JSON stdio protocol so the
// exchange can be exercised against other HPKE implementations.
//
// Every binary field is URL-safe base64 without padding.
//
//	interop gen-recipient
//	  → {"publicKey": ..., "privateKey": ...}
//
//	interop send
//	  ← {"recipientPublicKey": ..., "info": ..., "plaintext": ..., "associatedData": ...}
//	  → {"encapsulatedKey": ..., "ciphertext": ...}
//	  ← {"responseCiphertext": ..., "associatedData": ...}
//	  → {"plaintext": ...}
//
//	interop respond
//	  ← {"privateKey": ..., "info": ..., "encapsulatedKey": ..., "ciphertext": ...,
//	     "associatedData": ..., "responsePlaintext": ..., "responseAssociatedData": ...}
//	  → {"plaintext": ..., "responseCiphertext": ...}
package main

import (
	"encoding/json"
	"fmt"
	"os"

	duplex "github.com/duplexcrypto/hpke-go"
	"github.com/duplexcrypto/hpke-go/internal/encoding"
	"github.com/duplexcrypto/hpke-go/internal/suite"
)

func main() {
	if len(os.Args) < 2 {
		fatal("usage: interop <gen-recipient|send|respond>")
	}

	switch os.Args[1] {
	case "gen-recipient":
		genRecipient()
	case "send":
		send()
	case "respond":
		respond()
	default:
		fatal("unknown command: %s", os.Args[1])
	}
}

func genRecipient() {
	publicKey, privateKey, err := suite.GenerateKeyPair()
	if err != nil {
		fatal("generate keypair: %v", err)
	}

	emit(map[string]string{
		"publicKey":  encoding.ToBase64URL(publicKey),
		"privateKey": encoding.ToBase64URL(privateKey),
	})
}

type sendRequest struct {
	RecipientPublicKey string `json:"recipientPublicKey"`
	Info               string `json:"info"`
	Plaintext          string `json:"plaintext"`
	AssociatedData     string `json:"associatedData"`
}

type responseDelivery struct {
	ResponseCiphertext string `json:"responseCiphertext"`
	AssociatedData     string `json:"associatedData"`
}

func send() {
	dec := json.NewDecoder(os.Stdin)

	var req sendRequest
	if err := dec.Decode(&req); err != nil {
		fatal("parse send request: %v", err)
	}

	sender, err := duplex.SetUpBaseSender(
		decodeField("recipientPublicKey", req.RecipientPublicKey),
		decodeField("info", req.Info),
	)
	if err != nil {
		fatal("set up sender: %v", err)
	}

	ciphertext, err := sender.RequestContext.Seal(
		decodeField("plaintext", req.Plaintext),
		decodeField("associatedData", req.AssociatedData),
	)
	if err != nil {
		fatal("seal request: %v", err)
	}

	emit(map[string]string{
		"encapsulatedKey": encoding.ToBase64URL(sender.EncapsulatedPublicKey),
		"ciphertext":      encoding.ToBase64URL(ciphertext),
	})

	var resp responseDelivery
	if err := dec.Decode(&resp); err != nil {
		fatal("parse response delivery: %v", err)
	}

	plaintext, err := sender.ResponseContext.Open(
		decodeField("responseCiphertext", resp.ResponseCiphertext),
		decodeField("associatedData", resp.AssociatedData),
	)
	if err != nil {
		fatal("open response: %v", err)
	}

	emit(map[string]string{"plaintext": encoding.ToBase64URL(plaintext)})
}

type respondRequest struct {
	PrivateKey             string `json:"privateKey"`
	Info                   string `json:"info"`
	EncapsulatedKey        string `json:"encapsulatedKey"`
	Ciphertext             string `json:"ciphertext"`
	AssociatedData         string `json:"associatedData"`
	ResponsePlaintext      string `json:"responsePlaintext"`
	ResponseAssociatedData string `json:"responseAssociatedData"`
}

func respond() {
	var req respondRequest
	if err := json.NewDecoder(os.Stdin).Decode(&req); err != nil {
		fatal("parse respond request: %v", err)
	}

	opener, err := suite.SetupRecipient(
		decodeField("privateKey", req.PrivateKey),
		decodeField("encapsulatedKey", req.EncapsulatedKey),
		decodeField("info", req.Info),
	)
	if err != nil {
		fatal("set up recipient: %v", err)
	}

	plaintext, err := opener.Open(
		decodeField("ciphertext", req.Ciphertext),
		decodeField("associatedData", req.AssociatedData),
	)
	if err != nil {
		fatal("open request: %v", err)
	}

	// The recipient derives the response key and nonce from its own context
	// with the same exporter labels the sender used.
	responseKey := opener.Export([]byte(suite.ResponseKeyLabel), suite.KeySize)
	responseNonce := opener.Export([]byte(suite.ResponseNonceLabel), suite.NonceSize)

	aead, err := suite.NewResponseAEAD(responseKey)
	if err != nil {
		fatal("create response context: %v", err)
	}

	responseCiphertext := aead.Seal(nil, responseNonce,
		decodeField("responsePlaintext", req.ResponsePlaintext),
		decodeField("responseAssociatedData", req.ResponseAssociatedData),
	)

	emit(map[string]string{
		"plaintext":          encoding.ToBase64URL(plaintext),
		"responseCiphertext": encoding.ToBase64URL(responseCiphertext),
	})
}

func decodeField(name, value string) []byte {
	data, err := encoding.FromBase64URL(value)
	if err != nil {
		fatal("decode %s: %v", name, err)
	}
	return data
}

func emit(v any) {
	if err := json.NewEncoder(os.Stdout).Encode(v); err != nil {
		fatal("encode output: %v", err)
	}
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
