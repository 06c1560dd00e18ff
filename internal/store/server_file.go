package store

import (
	"context"
	"path/filepath"
	"sync"

	"sealpost/internal/domain"
)

const (
	clientsFile   = "clients.json"   // map[string]domain.ClientRecord
	mailboxesFile = "mailboxes.json" // map[string][]domain.Envelope
)

// FileRegistry is a file-backed RegistryStore: one JSON file under the data
// directory, rewritten on every mutation. Suited to single-node deployments.
type FileRegistry struct {
	path string
	mu   sync.Mutex
}

// NewFileRegistry returns a registry store under dir.
func NewFileRegistry(dir string) *FileRegistry {
	return &FileRegistry{path: filepath.Join(dir, clientsFile)}
}

// PutIfAbsent inserts rec unless the identifier is taken.
func (s *FileRegistry) PutIfAbsent(_ context.Context, rec domain.ClientRecord) (domain.ClientRecord, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := make(map[string]domain.ClientRecord)
	if err := readJSON(s.path, &m); err != nil {
		return domain.ClientRecord{}, false, err
	}
	if existing, ok := m[rec.ClientID]; ok {
		return existing, false, nil
	}
	m[rec.ClientID] = rec
	if err := writeJSON(s.path, m, 0o600); err != nil {
		return domain.ClientRecord{}, false, err
	}
	return rec, true, nil
}

// Get returns the record for clientID, if present.
func (s *FileRegistry) Get(_ context.Context, clientID string) (domain.ClientRecord, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := make(map[string]domain.ClientRecord)
	if err := readJSON(s.path, &m); err != nil {
		return domain.ClientRecord{}, false, err
	}
	rec, ok := m[clientID]
	return rec, ok, nil
}

// Touch updates the last-seen timestamp for clientID.
func (s *FileRegistry) Touch(_ context.Context, clientID string, when int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := make(map[string]domain.ClientRecord)
	if err := readJSON(s.path, &m); err != nil {
		return err
	}
	rec, ok := m[clientID]
	if !ok {
		return nil
	}
	rec.LastSeen = when
	m[clientID] = rec
	return writeJSON(s.path, m, 0o600)
}

// List returns all registered identifiers.
func (s *FileRegistry) List(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := make(map[string]domain.ClientRecord)
	if err := readJSON(s.path, &m); err != nil {
		return nil, err
	}
	out := make([]string, 0, len(m))
	for id := range m {
		out = append(out, id)
	}
	return out, nil
}

// FileMailbox is a file-backed MailboxStore. The router serializes access per
// recipient; the internal mutex only protects the shared file.
type FileMailbox struct {
	path string
	mu   sync.Mutex
}

// NewFileMailbox returns a mailbox store under dir.
func NewFileMailbox(dir string) *FileMailbox {
	return &FileMailbox{path: filepath.Join(dir, mailboxesFile)}
}

// Append adds env to the tail of the recipient's queue.
func (s *FileMailbox) Append(_ context.Context, recipientID string, env domain.Envelope) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := make(map[string][]domain.Envelope)
	if err := readJSON(s.path, &m); err != nil {
		return err
	}
	m[recipientID] = append(m[recipientID], env)
	return writeJSON(s.path, m, 0o600)
}

// Drain removes and returns the recipient's whole queue, oldest first.
func (s *FileMailbox) Drain(_ context.Context, recipientID string) ([]domain.Envelope, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := make(map[string][]domain.Envelope)
	if err := readJSON(s.path, &m); err != nil {
		return nil, err
	}
	envs, ok := m[recipientID]
	if !ok || len(envs) == 0 {
		return nil, nil
	}
	delete(m, recipientID)
	if err := writeJSON(s.path, m, 0o600); err != nil {
		return nil, err
	}
	return envs, nil
}

// MessageIDs returns the ids queued for the recipient without draining.
func (s *FileMailbox) MessageIDs(_ context.Context, recipientID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := make(map[string][]domain.Envelope)
	if err := readJSON(s.path, &m); err != nil {
		return nil, err
	}
	envs := m[recipientID]
	ids := make([]string, 0, len(envs))
	for _, env := range envs {
		ids = append(ids, env.MessageID)
	}
	return ids, nil
}

// Compile-time assertions for the server store contracts.
var (
	_ domain.RegistryStore = (*FileRegistry)(nil)
	_ domain.MailboxStore  = (*FileMailbox)(nil)
)
