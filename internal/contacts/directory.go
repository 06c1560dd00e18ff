package contacts

import (
	"fmt"

	"sealpost/internal/domain"
)

// Directory resolves peer identifiers to exchange public keys.
type Directory struct {
	store domain.ContactStore
}

// New returns a directory backed by the given store.
func New(s domain.ContactStore) *Directory { return &Directory{store: s} }

// Add stores the hex-encoded exchange public key for peerID, overwriting any
// prior entry. Keys of the wrong length or encoding get ErrMalformedKey.
func (d *Directory) Add(peerID, exchangeKeyHex string) (domain.Contact, error) {
	if peerID == "" {
		return domain.Contact{}, fmt.Errorf("peer id required")
	}
	key, err := domain.ParseX25519Public(exchangeKeyHex)
	if err != nil {
		return domain.Contact{}, err
	}
	c := domain.Contact{PeerID: peerID, Exchange: key}
	if err := d.store.SaveContact(c); err != nil {
		return domain.Contact{}, err
	}
	return c, nil
}

// Get returns the exchange public key stored for peerID.
func (d *Directory) Get(peerID string) (domain.X25519Public, error) {
	c, ok, err := d.store.LoadContact(peerID)
	if err != nil {
		return domain.X25519Public{}, err
	}
	if !ok {
		return domain.X25519Public{}, fmt.Errorf("%w: %s", domain.ErrUnknownContact, peerID)
	}
	return c.Exchange, nil
}

// List returns every known contact.
func (d *Directory) List() ([]domain.Contact, error) {
	return d.store.ListContacts()
}
