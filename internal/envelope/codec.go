package envelope

import (
	"crypto/sha256"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"

	"sealpost/internal/crypto"
	"sealpost/internal/domain"
	"sealpost/internal/util/memzero"
)

// kdfInfo domain-separates the envelope key derivation.
const kdfInfo = "sealpost/envelope/v1"

// Seal encrypts plaintext for the holder of recipient's exchange private key
// and signs the result with the sender's long-term signing key.
//
// A fresh ephemeral X25519 pair is generated per call and wiped before
// returning; the derived AEAD key depends on it, so no stored key material
// can recover this message later. Returns ErrMalformedKey if the recipient
// key is unusable; all other steps are infallible given valid inputs.
func Seal(sender domain.Identity, recipientID string, recipientKey domain.X25519Public, plaintext []byte) (domain.Envelope, error) {
	ephPriv, ephPub, err := crypto.GenerateX25519()
	if err != nil {
		return domain.Envelope{}, err
	}
	defer memzero.Zero(ephPriv[:])

	shared, err := crypto.DH(ephPriv, recipientKey)
	if err != nil {
		return domain.Envelope{}, fmt.Errorf("%w: %v", domain.ErrMalformedKey, err)
	}
	defer memzero.Zero(shared[:])

	key, nonce, err := deriveKeyNonce(shared[:], ephPub)
	if err != nil {
		return domain.Envelope{}, err
	}
	defer memzero.Zero(key)

	env := domain.Envelope{
		MessageID:   uuid.NewString(),
		SenderID:    sender.ID,
		RecipientID: recipientID,
		Ephemeral:   ephPub,
		Nonce:       nonce,
		Timestamp:   time.Now().Unix(),
	}

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return domain.Envelope{}, err
	}
	env.Ciphertext = aead.Seal(nil, nonce[:], plaintext, env.AssociatedData())
	env.Signature = crypto.SignEd25519(sender.EdPriv, env.SigningBytes())
	return env, nil
}

// Verify checks the envelope signature under the sender's signing public key
// without decrypting anything. This is the only cryptographic step the server
// runs.
func Verify(env domain.Envelope, senderSigning domain.Ed25519Public) error {
	if err := env.Validate(); err != nil {
		return err
	}
	if !crypto.VerifyEd25519(senderSigning, env.SigningBytes(), env.Signature) {
		return domain.ErrInvalidSignature
	}
	return nil
}

// Open verifies the envelope signature, recomputes the shared secret with the
// recipient's exchange private key, and decrypts.
//
// The signature is checked first; no key agreement happens for a forged
// envelope. Any AEAD failure (wrong recipient key, flipped ciphertext byte,
// altered routing metadata) surfaces as the single ErrDecryptionFailed.
func Open(env domain.Envelope, senderSigning domain.Ed25519Public, exchangePriv domain.X25519Private) ([]byte, error) {
	if err := Verify(env, senderSigning); err != nil {
		return nil, err
	}

	shared, err := crypto.DH(exchangePriv, env.Ephemeral)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDecryptionFailed, err)
	}
	defer memzero.Zero(shared[:])

	key, _, err := deriveKeyNonce(shared[:], env.Ephemeral)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, err
	}
	plaintext, err := aead.Open(nil, env.Nonce.Slice(), env.Ciphertext, env.AssociatedData())
	if err != nil {
		return nil, domain.ErrDecryptionFailed
	}
	return plaintext, nil
}

// deriveKeyNonce expands the raw shared secret into the AEAD key and nonce.
// The ephemeral public key salts the derivation, binding the output to this
// message's key agreement. One key per message and one nonce per key means
// the nonce is unique by construction, not by chance.
func deriveKeyNonce(shared []byte, ephemeral domain.X25519Public) ([]byte, domain.Nonce, error) {
	var nonce domain.Nonce
	kdf := hkdf.New(sha256.New, shared, ephemeral.Slice(), []byte(kdfInfo))
	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := io.ReadFull(kdf, key); err != nil {
		return nil, nonce, err
	}
	if _, err := io.ReadFull(kdf, nonce[:]); err != nil {
		return nil, nonce, err
	}
	return key, nonce, nil
}
