package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"sealpost/internal/domain"
)

const (
	redisClientsKey = "sealpost:clients"
	redisMailboxKey = "sealpost:mailbox:"
)

// RedisRegistry is a RegistryStore over a Redis hash. HSetNX gives the
// atomic first-wins insert the registration policy needs.
type RedisRegistry struct {
	rdb *redis.Client
}

// NewRedisRegistry returns a registry store over rdb.
func NewRedisRegistry(rdb *redis.Client) *RedisRegistry { return &RedisRegistry{rdb: rdb} }

// PutIfAbsent inserts rec unless the identifier is taken.
func (s *RedisRegistry) PutIfAbsent(ctx context.Context, rec domain.ClientRecord) (domain.ClientRecord, bool, error) {
	raw, err := json.Marshal(rec)
	if err != nil {
		return domain.ClientRecord{}, false, err
	}
	inserted, err := s.rdb.HSetNX(ctx, redisClientsKey, rec.ClientID, raw).Result()
	if err != nil {
		return domain.ClientRecord{}, false, err
	}
	if inserted {
		return rec, true, nil
	}
	stored, ok, err := s.Get(ctx, rec.ClientID)
	if err != nil {
		return domain.ClientRecord{}, false, err
	}
	if !ok {
		// Deleted between HSetNX and HGet; treat as taken by an unknown key.
		return domain.ClientRecord{}, false, nil
	}
	return stored, false, nil
}

// Get returns the record for clientID, if present.
func (s *RedisRegistry) Get(ctx context.Context, clientID string) (domain.ClientRecord, bool, error) {
	raw, err := s.rdb.HGet(ctx, redisClientsKey, clientID).Result()
	if errors.Is(err, redis.Nil) {
		return domain.ClientRecord{}, false, nil
	}
	if err != nil {
		return domain.ClientRecord{}, false, err
	}
	var rec domain.ClientRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return domain.ClientRecord{}, false, err
	}
	return rec, true, nil
}

// Touch updates the last-seen timestamp for clientID. Advisory metadata, so
// the read-modify-write is not transactional.
func (s *RedisRegistry) Touch(ctx context.Context, clientID string, when int64) error {
	rec, ok, err := s.Get(ctx, clientID)
	if err != nil || !ok {
		return err
	}
	rec.LastSeen = when
	raw, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.rdb.HSet(ctx, redisClientsKey, clientID, raw).Err()
}

// List returns all registered identifiers.
func (s *RedisRegistry) List(ctx context.Context) ([]string, error) {
	return s.rdb.HKeys(ctx, redisClientsKey).Result()
}

// RedisMailbox is a MailboxStore over per-recipient Redis lists. The drain is
// a MULTI/EXEC LRange+Del, so a concurrent RPush lands either before the
// drain (and is returned) or after it (and waits for the next one).
type RedisMailbox struct {
	rdb *redis.Client
}

// NewRedisMailbox returns a mailbox store over rdb.
func NewRedisMailbox(rdb *redis.Client) *RedisMailbox { return &RedisMailbox{rdb: rdb} }

// Append adds env to the tail of the recipient's list.
func (s *RedisMailbox) Append(ctx context.Context, recipientID string, env domain.Envelope) error {
	raw, err := json.Marshal(env)
	if err != nil {
		return err
	}
	return s.rdb.RPush(ctx, redisMailboxKey+recipientID, raw).Err()
}

// Drain removes and returns the recipient's whole list, oldest first.
func (s *RedisMailbox) Drain(ctx context.Context, recipientID string) ([]domain.Envelope, error) {
	key := redisMailboxKey + recipientID

	var lrange *redis.StringSliceCmd
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		lrange = pipe.LRange(ctx, key, 0, -1)
		pipe.Del(ctx, key)
		return nil
	})
	if err != nil {
		return nil, err
	}

	raws := lrange.Val()
	if len(raws) == 0 {
		return nil, nil
	}
	envs := make([]domain.Envelope, 0, len(raws))
	for _, raw := range raws {
		var env domain.Envelope
		if err := json.Unmarshal([]byte(raw), &env); err != nil {
			return nil, err
		}
		envs = append(envs, env)
	}
	return envs, nil
}

// MessageIDs returns the ids queued for the recipient without draining.
func (s *RedisMailbox) MessageIDs(ctx context.Context, recipientID string) ([]string, error) {
	raws, err := s.rdb.LRange(ctx, redisMailboxKey+recipientID, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(raws))
	for _, raw := range raws {
		var env struct {
			MessageID string `json:"message_id"`
		}
		if err := json.Unmarshal([]byte(raw), &env); err != nil {
			return nil, err
		}
		ids = append(ids, env.MessageID)
	}
	return ids, nil
}

// Compile-time assertions for the server store contracts.
var (
	_ domain.RegistryStore = (*RedisRegistry)(nil)
	_ domain.MailboxStore  = (*RedisMailbox)(nil)
)
