package registry

import (
	"context"
	"fmt"
	"time"

	"sealpost/internal/domain"
)

// Registry enforces the identifier-claim policy over a RegistryStore.
// Atomicity under concurrent registration comes from the store's PutIfAbsent.
type Registry struct {
	store domain.RegistryStore
}

// New returns a registry backed by the given store.
func New(store domain.RegistryStore) *Registry { return &Registry{store: store} }

// Register claims clientID for key. The first registration wins; repeating it
// with the same key succeeds without effect, and any other key gets
// ErrAlreadyRegistered.
func (r *Registry) Register(ctx context.Context, clientID string, key domain.Ed25519Public) error {
	if clientID == "" {
		return fmt.Errorf("%w: empty client id", domain.ErrMalformedKey)
	}
	var zero domain.Ed25519Public
	if key == zero {
		return fmt.Errorf("%w: zero signing key", domain.ErrMalformedKey)
	}

	now := time.Now().Unix()
	stored, inserted, err := r.store.PutIfAbsent(ctx, domain.ClientRecord{
		ClientID:     clientID,
		SigningKey:   key,
		RegisteredAt: now,
		LastSeen:     now,
	})
	if err != nil {
		return err
	}
	if inserted || stored.SigningKey == key {
		return nil
	}
	return fmt.Errorf("%w: %s", domain.ErrAlreadyRegistered, clientID)
}

// Lookup returns the signing public key registered for clientID.
func (r *Registry) Lookup(ctx context.Context, clientID string) (domain.Ed25519Public, error) {
	rec, ok, err := r.store.Get(ctx, clientID)
	if err != nil {
		return domain.Ed25519Public{}, err
	}
	if !ok {
		return domain.Ed25519Public{}, fmt.Errorf("%w: %s", domain.ErrUnknownClient, clientID)
	}
	return rec.SigningKey, nil
}

// Touch refreshes the client's last-seen timestamp. Best effort; a missing
// client is not an error.
func (r *Registry) Touch(ctx context.Context, clientID string) error {
	return r.store.Touch(ctx, clientID, time.Now().Unix())
}

// List returns all registered identifiers.
func (r *Registry) List(ctx context.Context) ([]string, error) {
	return r.store.List(ctx)
}
