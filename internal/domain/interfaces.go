package domain

import "context"

// IdentityStore persists the long-term identity, encrypted under a passphrase.
type IdentityStore interface {
	SaveIdentity(passphrase string, id Identity) error
	LoadIdentity(passphrase string) (Identity, error)
}

// ContactStore persists the contact directory.
type ContactStore interface {
	SaveContact(c Contact) error
	LoadContact(peerID string) (Contact, bool, error)
	ListContacts() ([]Contact, error)
}

// RelayClient is how a client talks to the sealpost server.
type RelayClient interface {
	Register(ctx context.Context, clientID string, key Ed25519Public) error
	Send(ctx context.Context, env Envelope) error
	Receive(ctx context.Context, clientID string) ([]Envelope, error)
	LookupKey(ctx context.Context, clientID string) (Ed25519Public, error)
	ListClients(ctx context.Context) ([]string, error)
}

// RegistryStore is the server-side persistence contract for client records.
// PutIfAbsent must be atomic: when two registrations race on one identifier,
// exactly one inserts and the other observes the stored record.
type RegistryStore interface {
	PutIfAbsent(ctx context.Context, rec ClientRecord) (stored ClientRecord, inserted bool, err error)
	Get(ctx context.Context, clientID string) (ClientRecord, bool, error)
	Touch(ctx context.Context, clientID string, when int64) error
	List(ctx context.Context) ([]string, error)
}

// MailboxStore is the server-side persistence contract for per-recipient
// queues. Append preserves arrival order; Drain removes and returns the whole
// queue in one step; MessageIDs reads the queued ids without consuming
// anything, so the router can rebuild its duplicate set from a persisted
// queue after a restart. The router serializes calls per recipient, so
// implementations only need to be safe across different recipients.
type MailboxStore interface {
	Append(ctx context.Context, recipientID string, env Envelope) error
	Drain(ctx context.Context, recipientID string) ([]Envelope, error)
	MessageIDs(ctx context.Context, recipientID string) ([]string, error)
}
