package mailbox

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"sealpost/internal/domain"
	"sealpost/internal/envelope"
	"sealpost/internal/registry"
)

// Router validates and queues envelopes. It owns all mailbox mutation; the
// backing store only persists what the router has already serialized per
// recipient.
type Router struct {
	registry *registry.Registry
	store    domain.MailboxStore

	mu    sync.RWMutex
	boxes map[string]*box
}

type box struct {
	mu     sync.Mutex
	seeded bool
	seen   map[string]struct{}
}

// NewRouter returns a router delivering into store for recipients known to reg.
func NewRouter(reg *registry.Registry, store domain.MailboxStore) *Router {
	return &Router{
		registry: reg,
		store:    store,
		boxes:    make(map[string]*box),
	}
}

// Deliver validates env and appends it to the recipient's mailbox.
//
// Rejections, in order: ErrMalformedEnvelope, ErrUnknownSender,
// ErrInvalidSignature, ErrUnknownRecipient, ErrDuplicateMessage. The server
// never decrypts; only the signature is checked here.
func (r *Router) Deliver(ctx context.Context, env domain.Envelope) error {
	if err := env.Validate(); err != nil {
		return err
	}

	senderKey, err := r.registry.Lookup(ctx, env.SenderID)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownClient) {
			return fmt.Errorf("%w: %s", domain.ErrUnknownSender, env.SenderID)
		}
		return err
	}
	if err := envelope.Verify(env, senderKey); err != nil {
		return err
	}
	if _, err := r.registry.Lookup(ctx, env.RecipientID); err != nil {
		if errors.Is(err, domain.ErrUnknownClient) {
			return fmt.Errorf("%w: %s", domain.ErrUnknownRecipient, env.RecipientID)
		}
		return err
	}

	b, err := r.lockBox(ctx, env.RecipientID)
	if err != nil {
		return err
	}
	defer b.mu.Unlock()

	if _, dup := b.seen[env.MessageID]; dup {
		return fmt.Errorf("%w: %s", domain.ErrDuplicateMessage, env.MessageID)
	}
	if err := r.store.Append(ctx, env.RecipientID, env); err != nil {
		return err
	}
	b.seen[env.MessageID] = struct{}{}

	// Advisory metadata only; delivery already succeeded.
	_ = r.registry.Touch(ctx, env.SenderID)
	return nil
}

// Fetch atomically drains and returns the caller's mailbox, oldest first.
// An envelope delivered concurrently with a fetch lands in a later fetch,
// never lost and never returned twice.
func (r *Router) Fetch(ctx context.Context, clientID string) ([]domain.Envelope, error) {
	if _, err := r.registry.Lookup(ctx, clientID); err != nil {
		return nil, err
	}

	b, err := r.lockBox(ctx, clientID)
	if err != nil {
		return nil, err
	}
	defer b.mu.Unlock()

	envs, err := r.store.Drain(ctx, clientID)
	if err != nil {
		return nil, err
	}
	_ = r.registry.Touch(ctx, clientID)
	return envs, nil
}

// lockBox returns the per-recipient lock state with its mutex held. On the
// first access after startup the seen set is seeded from the ids still queued
// in the store, so a restart cannot forget a pending message id. The caller
// unlocks.
func (r *Router) lockBox(ctx context.Context, recipientID string) (*box, error) {
	b := r.box(recipientID)
	b.mu.Lock()
	if !b.seeded {
		ids, err := r.store.MessageIDs(ctx, recipientID)
		if err != nil {
			b.mu.Unlock()
			return nil, err
		}
		for _, id := range ids {
			b.seen[id] = struct{}{}
		}
		b.seeded = true
	}
	return b, nil
}

// box returns the per-recipient lock state, creating it on first use.
func (r *Router) box(recipientID string) *box {
	r.mu.RLock()
	b, ok := r.boxes[recipientID]
	r.mu.RUnlock()
	if ok {
		return b
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if b, ok = r.boxes[recipientID]; !ok {
		b = &box{seen: make(map[string]struct{})}
		r.boxes[recipientID] = b
	}
	return b
}
