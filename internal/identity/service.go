package identity

import (
	"fmt"
	"unicode"

	"sealpost/internal/crypto"
	"sealpost/internal/domain"
)

const (
	// minPassphraseLength defines the minimum number of characters required for a passphrase.
	minPassphraseLength = 12
)

var (
	// ErrWeakPassphrase is returned when the passphrase fails the strength policy.
	ErrWeakPassphrase = fmt.Errorf(
		"passphrase is too weak (must be at least %d characters and include upper, lower, "+
			"number, and symbol)",
		minPassphraseLength,
	)
)

// Service manages identity key creation and access using a backing store.
//
// The identity contains:
//   - Ed25519 key pair for signing envelopes.
//   - X25519 key pair for the exchange side of the envelope codec.
type Service struct {
	store domain.IdentityStore
}

// New returns an identity service backed by the given store.
func New(s domain.IdentityStore) *Service { return &Service{store: s} }

// Generate creates a new identity for clientID, saves it encrypted with the
// passphrase, and returns the identity plus a short fingerprint of the
// signing public key. Generation fails only on entropy-source failure.
func (s *Service) Generate(passphrase, clientID string) (domain.Identity, string, error) {
	if clientID == "" {
		return domain.Identity{}, "", fmt.Errorf("client id required")
	}
	if !isSecurePassphrase(passphrase) {
		return domain.Identity{}, "", ErrWeakPassphrase
	}

	signingPrivateKey, signingPublicKey, err := crypto.GenerateEd25519()
	if err != nil {
		return domain.Identity{}, "", err
	}
	exchangePrivateKey, exchangePublicKey, err := crypto.GenerateX25519()
	if err != nil {
		return domain.Identity{}, "", err
	}

	id := domain.Identity{
		ID:     clientID,
		EdPub:  signingPublicKey,
		EdPriv: signingPrivateKey,
		XPub:   exchangePublicKey,
		XPriv:  exchangePrivateKey,
	}
	if err := s.store.SaveIdentity(passphrase, id); err != nil {
		return domain.Identity{}, "", err
	}
	return id, crypto.Fingerprint(id.EdPub.Slice()), nil
}

// Load decrypts and returns the local identity.
func (s *Service) Load(passphrase string) (domain.Identity, error) {
	return s.store.LoadIdentity(passphrase)
}

// Fingerprint returns a short fingerprint of the local signing public key.
func (s *Service) Fingerprint(passphrase string) (string, error) {
	id, err := s.store.LoadIdentity(passphrase)
	if err != nil {
		return "", err
	}
	return crypto.Fingerprint(id.EdPub.Slice()), nil
}

// isSecurePassphrase enforces a basic strength policy.
func isSecurePassphrase(passphrase string) bool {
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	if len(passphrase) < minPassphraseLength {
		return false
	}
	for _, r := range passphrase {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r), unicode.IsSymbol(r):
			hasSymbol = true
		}
	}
	return hasUpper && hasLower && hasDigit && hasSymbol
}
