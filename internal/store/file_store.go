package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"sealpost/internal/domain"
)

const (
	idFile       = "identity.enc"
	contactsFile = "contacts.json" // map[string]domain.Contact
)

// FileStore keeps the local identity and contact directory on disk.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore returns a store rooted at dir.
func NewFileStore(dir string) *FileStore { return &FileStore{dir: dir} }

// ---------- Identity ----------

// SaveIdentity seals id under the passphrase and writes it to disk.
func (s *FileStore) SaveIdentity(passphrase string, id domain.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(id)
	if err != nil {
		return err
	}
	N, r, p := scryptParamsDefault()
	sealed, err := encrypt(passphrase, raw, N, r, p)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, idFile), sealed, 0o600)
}

// LoadIdentity decrypts and returns the stored identity.
func (s *FileStore) LoadIdentity(passphrase string) (domain.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sealed, err := os.ReadFile(filepath.Join(s.dir, idFile))
	if err != nil {
		return domain.Identity{}, err
	}
	raw, err := decrypt(passphrase, sealed)
	if err != nil {
		return domain.Identity{}, err
	}
	var id domain.Identity
	if err := json.Unmarshal(raw, &id); err != nil {
		return domain.Identity{}, err
	}
	return id, nil
}

// ---------- Contacts ----------

// SaveContact inserts or overwrites the entry for c.PeerID.
func (s *FileStore) SaveContact(c domain.Contact) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := make(map[string]domain.Contact)
	if err := readJSON(filepath.Join(s.dir, contactsFile), &m); err != nil {
		return err
	}
	m[c.PeerID] = c
	return writeJSON(filepath.Join(s.dir, contactsFile), m, 0o600)
}

// LoadContact returns the contact for peerID, if present.
func (s *FileStore) LoadContact(peerID string) (domain.Contact, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := make(map[string]domain.Contact)
	if err := readJSON(filepath.Join(s.dir, contactsFile), &m); err != nil {
		return domain.Contact{}, false, err
	}
	c, ok := m[peerID]
	return c, ok, nil
}

// ListContacts returns all contacts sorted by peer id.
func (s *FileStore) ListContacts() ([]domain.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := make(map[string]domain.Contact)
	if err := readJSON(filepath.Join(s.dir, contactsFile), &m); err != nil {
		return nil, err
	}
	out := make([]domain.Contact, 0, len(m))
	for _, c := range m {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PeerID < out[j].PeerID })
	return out, nil
}

// Compile-time assertions that FileStore implements the client store contracts.
var (
	_ domain.IdentityStore = (*FileStore)(nil)
	_ domain.ContactStore  = (*FileStore)(nil)
)
