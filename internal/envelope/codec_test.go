package envelope_test

import (
	"bytes"
	"errors"
	"testing"

	"sealpost/internal/crypto"
	"sealpost/internal/domain"
	"sealpost/internal/envelope"
)

// makeIdentity creates a domain.Identity with fresh X25519 and Ed25519 pairs.
func makeIdentity(t *testing.T, id string) domain.Identity {
	t.Helper()
	edPriv, edPub, err := crypto.GenerateEd25519()
	if err != nil {
		t.Fatalf("GenerateEd25519: %v", err)
	}
	xPriv, xPub, err := crypto.GenerateX25519()
	if err != nil {
		t.Fatalf("GenerateX25519: %v", err)
	}
	return domain.Identity{ID: id, EdPub: edPub, EdPriv: edPriv, XPub: xPub, XPriv: xPriv}
}

func TestSealOpen_RoundTrip(t *testing.T) {
	alice := makeIdentity(t, "alice")
	bob := makeIdentity(t, "bob")

	plaintext := []byte("hi bob, this is alice")
	env, err := envelope.Seal(alice, "bob", bob.XPub, plaintext)
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	if env.SenderID != "alice" || env.RecipientID != "bob" {
		t.Fatalf("routing fields: sender=%q recipient=%q", env.SenderID, env.RecipientID)
	}
	if env.MessageID == "" {
		t.Fatal("empty message id")
	}

	got, err := envelope.Open(env, alice.EdPub, bob.XPriv)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if !bytes.Equal(got, plaintext) {
		t.Fatalf("plaintext mismatch: got %q", got)
	}
}

func TestOpen_TamperDetection(t *testing.T) {
	alice := makeIdentity(t, "alice")
	bob := makeIdentity(t, "bob")

	env, err := envelope.Seal(alice, "bob", bob.XPub, []byte("payload"))
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(e *domain.Envelope)
	}{
		{"ciphertext", func(e *domain.Envelope) { e.Ciphertext[0] ^= 0x01 }},
		{"ciphertext tag", func(e *domain.Envelope) { e.Ciphertext[len(e.Ciphertext)-1] ^= 0x80 }},
		{"signature", func(e *domain.Envelope) { e.Signature[3] ^= 0x01 }},
		{"ephemeral key", func(e *domain.Envelope) { e.Ephemeral[7] ^= 0x01 }},
		{"nonce", func(e *domain.Envelope) { e.Nonce[0] ^= 0x01 }},
		{"sender id", func(e *domain.Envelope) { e.SenderID = "mallory" }},
		{"timestamp", func(e *domain.Envelope) { e.Timestamp++ }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tampered := env
			tampered.Ciphertext = append(domain.HexBytes(nil), env.Ciphertext...)
			tampered.Signature = append(domain.HexBytes(nil), env.Signature...)
			tc.mutate(&tampered)

			_, err := envelope.Open(tampered, alice.EdPub, bob.XPriv)
			if !errors.Is(err, domain.ErrInvalidSignature) && !errors.Is(err, domain.ErrDecryptionFailed) {
				t.Fatalf("want signature or decryption failure, got %v", err)
			}
		})
	}
}

func TestOpen_AssociatedDataBinding(t *testing.T) {
	alice := makeIdentity(t, "alice")
	bob := makeIdentity(t, "bob")

	env, err := envelope.Seal(alice, "bob", bob.XPub, []byte("payload"))
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}

	// Re-sign after swapping the message id. The signature now verifies, so
	// only the AEAD's associated-data binding can catch the change.
	env.MessageID = "replayed-under-new-id"
	env.Signature = crypto.SignEd25519(alice.EdPriv, env.SigningBytes())

	if err := envelope.Verify(env, alice.EdPub); err != nil {
		t.Fatalf("Verify after re-sign: %v", err)
	}
	if _, err := envelope.Open(env, alice.EdPub, bob.XPriv); !errors.Is(err, domain.ErrDecryptionFailed) {
		t.Fatalf("want ErrDecryptionFailed, got %v", err)
	}
}

func TestOpen_KeyConfusion(t *testing.T) {
	alice := makeIdentity(t, "alice")
	bob := makeIdentity(t, "bob")
	carol := makeIdentity(t, "carol")

	env, err := envelope.Seal(alice, "bob", bob.XPub, []byte("for bob only"))
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}

	// Carol's exchange key opens nothing addressed to Bob.
	if _, err := envelope.Open(env, alice.EdPub, carol.XPriv); !errors.Is(err, domain.ErrDecryptionFailed) {
		t.Fatalf("want ErrDecryptionFailed, got %v", err)
	}
}

func TestVerify_WrongSigningKey(t *testing.T) {
	alice := makeIdentity(t, "alice")
	bob := makeIdentity(t, "bob")
	mallory := makeIdentity(t, "mallory")

	env, err := envelope.Seal(alice, "bob", bob.XPub, []byte("payload"))
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	if err := envelope.Verify(env, mallory.EdPub); !errors.Is(err, domain.ErrInvalidSignature) {
		t.Fatalf("want ErrInvalidSignature, got %v", err)
	}
}

func TestSeal_ForwardSecrecy(t *testing.T) {
	alice := makeIdentity(t, "alice")
	bob := makeIdentity(t, "bob")

	a, err := envelope.Seal(alice, "bob", bob.XPub, []byte("same plaintext"))
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	b, err := envelope.Seal(alice, "bob", bob.XPub, []byte("same plaintext"))
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}

	if a.Ephemeral == b.Ephemeral {
		t.Fatal("ephemeral keys repeat across messages")
	}
	if a.Nonce == b.Nonce && bytes.Equal(a.Ciphertext, b.Ciphertext) {
		t.Fatal("identical nonce and ciphertext for distinct messages")
	}
	if a.MessageID == b.MessageID {
		t.Fatal("message ids repeat")
	}
}

func TestOpen_MalformedEnvelope(t *testing.T) {
	alice := makeIdentity(t, "alice")
	bob := makeIdentity(t, "bob")

	env, err := envelope.Seal(alice, "bob", bob.XPub, []byte("payload"))
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}

	noID := env
	noID.MessageID = ""
	if _, err := envelope.Open(noID, alice.EdPub, bob.XPriv); !errors.Is(err, domain.ErrMalformedEnvelope) {
		t.Fatalf("empty message id: want ErrMalformedEnvelope, got %v", err)
	}

	shortCT := env
	shortCT.Ciphertext = shortCT.Ciphertext[:4]
	if _, err := envelope.Open(shortCT, alice.EdPub, bob.XPriv); !errors.Is(err, domain.ErrMalformedEnvelope) {
		t.Fatalf("short ciphertext: want ErrMalformedEnvelope, got %v", err)
	}

	badSig := env
	badSig.Signature = badSig.Signature[:10]
	if _, err := envelope.Open(badSig, alice.EdPub, bob.XPriv); !errors.Is(err, domain.ErrMalformedEnvelope) {
		t.Fatalf("truncated signature: want ErrMalformedEnvelope, got %v", err)
	}
}
