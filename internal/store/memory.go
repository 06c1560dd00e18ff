package store

import (
	"context"
	"sync"

	"sealpost/internal/domain"
)

// MemoryRegistry is the in-memory RegistryStore. State lives and dies with
// the server process.
type MemoryRegistry struct {
	mu      sync.Mutex
	clients map[string]domain.ClientRecord
}

// NewMemoryRegistry returns an empty registry store.
func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{clients: make(map[string]domain.ClientRecord)}
}

// PutIfAbsent inserts rec unless the identifier is taken.
func (s *MemoryRegistry) PutIfAbsent(_ context.Context, rec domain.ClientRecord) (domain.ClientRecord, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.clients[rec.ClientID]; ok {
		return existing, false, nil
	}
	s.clients[rec.ClientID] = rec
	return rec, true, nil
}

// Get returns the record for clientID, if present.
func (s *MemoryRegistry) Get(_ context.Context, clientID string) (domain.ClientRecord, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.clients[clientID]
	return rec, ok, nil
}

// Touch updates the last-seen timestamp for clientID.
func (s *MemoryRegistry) Touch(_ context.Context, clientID string, when int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec, ok := s.clients[clientID]; ok {
		rec.LastSeen = when
		s.clients[clientID] = rec
	}
	return nil
}

// List returns all registered identifiers.
func (s *MemoryRegistry) List(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, 0, len(s.clients))
	for id := range s.clients {
		out = append(out, id)
	}
	return out, nil
}

// MemoryMailbox is the in-memory MailboxStore.
type MemoryMailbox struct {
	mu     sync.Mutex
	queues map[string][]domain.Envelope
}

// NewMemoryMailbox returns an empty mailbox store.
func NewMemoryMailbox() *MemoryMailbox {
	return &MemoryMailbox{queues: make(map[string][]domain.Envelope)}
}

// Append adds env to the tail of the recipient's queue.
func (s *MemoryMailbox) Append(_ context.Context, recipientID string, env domain.Envelope) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.queues[recipientID] = append(s.queues[recipientID], env)
	return nil
}

// Drain removes and returns the recipient's whole queue, oldest first.
func (s *MemoryMailbox) Drain(_ context.Context, recipientID string) ([]domain.Envelope, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	envs := s.queues[recipientID]
	delete(s.queues, recipientID)
	return envs, nil
}

// MessageIDs returns the ids queued for the recipient without draining.
func (s *MemoryMailbox) MessageIDs(_ context.Context, recipientID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	envs := s.queues[recipientID]
	ids := make([]string, 0, len(envs))
	for _, env := range envs {
		ids = append(ids, env.MessageID)
	}
	return ids, nil
}

// Compile-time assertions for the server store contracts.
var (
	_ domain.RegistryStore = (*MemoryRegistry)(nil)
	_ domain.MailboxStore  = (*MemoryMailbox)(nil)
)
