package messenger

import (
	"context"

	"sealpost/internal/contacts"
	"sealpost/internal/domain"
	"sealpost/internal/envelope"
)

// Service seals, sends, fetches and opens messages.
type Service struct {
	ids      domain.IdentityStore
	contacts *contacts.Directory
	relay    domain.RelayClient
}

// New constructs a messenger from the identity store, contact directory and
// relay client.
func New(ids domain.IdentityStore, dir *contacts.Directory, relay domain.RelayClient) *Service {
	return &Service{ids: ids, contacts: dir, relay: relay}
}

// Register publishes the local identity's signing public key to the server.
func (s *Service) Register(ctx context.Context, passphrase string) (string, error) {
	id, err := s.ids.LoadIdentity(passphrase)
	if err != nil {
		return "", err
	}
	if err := s.relay.Register(ctx, id.ID, id.EdPub); err != nil {
		return "", err
	}
	return id.ID, nil
}

// Send seals plaintext for the peer and posts the envelope. The recipient's
// exchange key must already be in the contact directory.
func (s *Service) Send(ctx context.Context, passphrase, to string, plaintext []byte) (string, error) {
	id, err := s.ids.LoadIdentity(passphrase)
	if err != nil {
		return "", err
	}
	peerKey, err := s.contacts.Get(to)
	if err != nil {
		return "", err
	}
	env, err := envelope.Seal(id, to, peerKey, plaintext)
	if err != nil {
		return "", err
	}
	if err := s.relay.Send(ctx, env); err != nil {
		return "", err
	}
	return env.MessageID, nil
}

// Receive drains the inbox and opens every envelope it can.
//
// Each claimed sender's signing key is fetched from the server's registry
// (cached per call) so the signature is checked against the registered key,
// not anything self-asserted in the payload. The second return value counts
// envelopes dropped for failing verification.
func (s *Service) Receive(ctx context.Context, passphrase string) ([]domain.DecryptedMessage, int, error) {
	id, err := s.ids.LoadIdentity(passphrase)
	if err != nil {
		return nil, 0, err
	}
	envs, err := s.relay.Receive(ctx, id.ID)
	if err != nil {
		return nil, 0, err
	}

	senderKeys := make(map[string]domain.Ed25519Public)
	out := make([]domain.DecryptedMessage, 0, len(envs))
	dropped := 0

	for _, env := range envs {
		key, ok := senderKeys[env.SenderID]
		if !ok {
			key, err = s.relay.LookupKey(ctx, env.SenderID)
			if err != nil {
				dropped++
				continue
			}
			senderKeys[env.SenderID] = key
		}

		plaintext, err := envelope.Open(env, key, id.XPriv)
		if err != nil {
			dropped++
			continue
		}
		out = append(out, domain.DecryptedMessage{
			MessageID: env.MessageID,
			From:      env.SenderID,
			To:        env.RecipientID,
			Plaintext: plaintext,
			Timestamp: env.Timestamp,
		})
	}
	return out, dropped, nil
}
