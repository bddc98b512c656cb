package duplex

import (
	"bytes"
	"testing"

	"github.com/duplexcrypto/hpke-go/internal/suite"
)

// recipient is the test stand-in for the peer: it derives the matching
// receiving context from the sender's encapsulated key and seals responses
// with the exported response key and nonce, exactly as a real recipient
// implementation must.
type recipient struct {
	t      *testing.T
	opener suite.Opener
}

func newRecipientKeyPair(t *testing.T) (publicKey, privateKey []byte) {
	t.Helper()

	publicKey, privateKey, err := suite.GenerateKeyPair()
	if err != nil {
		t.Fatalf("generate recipient keypair: %v", err)
	}
	return publicKey, privateKey
}

func deriveRecipient(t *testing.T, privateKey, encapsulatedKey, info []byte) *recipient {
	t.Helper()

	opener, err := suite.SetupRecipient(privateKey, encapsulatedKey, info)
	if err != nil {
		t.Fatalf("set up recipient: %v", err)
	}
	return &recipient{t: t, opener: opener}
}

func (r *recipient) open(ciphertext, associatedData []byte) []byte {
	r.t.Helper()

	plaintext, err := r.opener.Open(ciphertext, associatedData)
	if err != nil {
		r.t.Fatalf("recipient open: %v", err)
	}
	return plaintext
}

func (r *recipient) sealResponse(plaintext, associatedData []byte) []byte {
	r.t.Helper()

	key := r.opener.Export([]byte(suite.ResponseKeyLabel), suite.KeySize)
	nonce := r.opener.Export([]byte(suite.ResponseNonceLabel), suite.NonceSize)

	aead, err := suite.NewResponseAEAD(key)
	if err != nil {
		r.t.Fatalf("recipient response context: %v", err)
	}
	return aead.Seal(nil, nonce, plaintext, associatedData)
}

func TestExchange_RoundTrip(t *testing.T) {
	tests := []struct {
		name           string
		info           []byte
		plaintext      []byte
		associatedData []byte
		response       []byte
		responseAD     []byte
	}{
		{
			name:      "ping with empty info and aad",
			plaintext: []byte("ping"),
			response:  []byte("pong"),
		},
		{
			name:           "info and aad bound",
			info:           []byte("test application"),
			plaintext:      []byte("request body"),
			associatedData: []byte("request header"),
			response:       []byte("response body"),
			responseAD:     []byte("response header"),
		},
		{
			name:      "empty plaintext",
			info:      []byte("test application"),
			plaintext: []byte{},
			response:  []byte("ack"),
		},
		{
			name:      "binary payload",
			plaintext: []byte{0x00, 0xff, 0x7f, 0x80},
			response:  bytes.Repeat([]byte{0xaa}, 1000),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recipientPublic, recipientPrivate := newRecipientKeyPair(t)

			sender, err := SetUpBaseSender(recipientPublic, tt.info)
			if err != nil {
				t.Fatalf("SetUpBaseSender() error = %v", err)
			}

			ciphertext, err := sender.RequestContext.Seal(tt.plaintext, tt.associatedData)
			if err != nil {
				t.Fatalf("Seal() error = %v", err)
			}

			if len(ciphertext) != len(tt.plaintext)+suite.TagSize {
				t.Errorf("ciphertext length = %d, want %d", len(ciphertext), len(tt.plaintext)+suite.TagSize)
			}

			peer := deriveRecipient(t, recipientPrivate, sender.EncapsulatedPublicKey, tt.info)
			if got := peer.open(ciphertext, tt.associatedData); !bytes.Equal(got, tt.plaintext) {
				t.Errorf("recipient plaintext = %q, want %q", got, tt.plaintext)
			}

			responseCiphertext := peer.sealResponse(tt.response, tt.responseAD)
			got, err := sender.ResponseContext.Open(responseCiphertext, tt.responseAD)
			if err != nil {
				t.Fatalf("Open() error = %v", err)
			}
			if !bytes.Equal(got, tt.response) {
				t.Errorf("response plaintext = %q, want %q", got, tt.response)
			}
		})
	}
}

func TestExchange_MultipleRequestsOneResponse(t *testing.T) {
	recipientPublic, recipientPrivate := newRecipientKeyPair(t)
	info := []byte("multi request")

	sender, err := SetUpBaseSender(recipientPublic, info)
	if err != nil {
		t.Fatalf("SetUpBaseSender() error = %v", err)
	}
	peer := deriveRecipient(t, recipientPrivate, sender.EncapsulatedPublicKey, info)

	// The request side is nonce-sequenced, so any number of requests may be
	// sealed through one context and must be opened in order.
	for i, plaintext := range [][]byte{[]byte("first"), []byte("second"), []byte("third")} {
		ciphertext, err := sender.RequestContext.Seal(plaintext, nil)
		if err != nil {
			t.Fatalf("Seal() #%d error = %v", i, err)
		}
		if got := peer.open(ciphertext, nil); !bytes.Equal(got, plaintext) {
			t.Errorf("request #%d = %q, want %q", i, got, plaintext)
		}
	}

	got, err := sender.ResponseContext.Open(peer.sealResponse([]byte("done"), nil), nil)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if !bytes.Equal(got, []byte("done")) {
		t.Errorf("response = %q, want %q", got, "done")
	}
}
