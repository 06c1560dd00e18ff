package store_test

import (
	"context"
	"fmt"
	"testing"

	"sealpost/internal/domain"
	"sealpost/internal/store"
)

func TestFileRegistry_PutIfAbsent(t *testing.T) {
	dir := t.TempDir()
	s := store.NewFileRegistry(dir)
	ctx := context.Background()

	alice := makeIdentity(t, "alice")
	rec := domain.ClientRecord{ClientID: "alice", SigningKey: alice.EdPub, RegisteredAt: 100}

	stored, inserted, err := s.PutIfAbsent(ctx, rec)
	if err != nil || !inserted {
		t.Fatalf("first PutIfAbsent: inserted=%v err=%v", inserted, err)
	}
	if stored.SigningKey != alice.EdPub {
		t.Fatal("stored record has wrong key")
	}

	other := makeIdentity(t, "alice")
	stored, inserted, err = s.PutIfAbsent(ctx, domain.ClientRecord{ClientID: "alice", SigningKey: other.EdPub})
	if err != nil {
		t.Fatalf("second PutIfAbsent: %v", err)
	}
	if inserted {
		t.Fatal("second PutIfAbsent inserted over an existing record")
	}
	if stored.SigningKey != alice.EdPub {
		t.Fatal("second PutIfAbsent did not return the original record")
	}
}

func TestFileRegistry_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	alice := makeIdentity(t, "alice")

	s := store.NewFileRegistry(dir)
	if _, _, err := s.PutIfAbsent(ctx, domain.ClientRecord{ClientID: "alice", SigningKey: alice.EdPub}); err != nil {
		t.Fatalf("PutIfAbsent: %v", err)
	}

	reopened := store.NewFileRegistry(dir)
	rec, ok, err := reopened.Get(ctx, "alice")
	if err != nil {
		t.Fatalf("Get after reopen: %v", err)
	}
	if !ok || rec.SigningKey != alice.EdPub {
		t.Fatal("registration lost across reopen")
	}
}

func TestFileRegistry_Touch(t *testing.T) {
	s := store.NewFileRegistry(t.TempDir())
	ctx := context.Background()
	alice := makeIdentity(t, "alice")

	if _, _, err := s.PutIfAbsent(ctx, domain.ClientRecord{ClientID: "alice", SigningKey: alice.EdPub, LastSeen: 100}); err != nil {
		t.Fatalf("PutIfAbsent: %v", err)
	}
	if err := s.Touch(ctx, "alice", 200); err != nil {
		t.Fatalf("Touch: %v", err)
	}
	rec, _, err := s.Get(ctx, "alice")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if rec.LastSeen != 200 {
		t.Fatalf("LastSeen: want 200, got %d", rec.LastSeen)
	}

	// Touching an unknown client is not an error.
	if err := s.Touch(ctx, "nobody", 300); err != nil {
		t.Fatalf("Touch unknown: %v", err)
	}
}

func TestFileMailbox_AppendDrain(t *testing.T) {
	s := store.NewFileMailbox(t.TempDir())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		env := domain.Envelope{MessageID: fmt.Sprintf("m%d", i), SenderID: "alice", RecipientID: "bob"}
		if err := s.Append(ctx, "bob", env); err != nil {
			t.Fatalf("Append %d: %v", i, err)
		}
	}

	envs, err := s.Drain(ctx, "bob")
	if err != nil {
		t.Fatalf("Drain: %v", err)
	}
	if len(envs) != 3 {
		t.Fatalf("want 3 envelopes, got %d", len(envs))
	}
	for i, env := range envs {
		if want := fmt.Sprintf("m%d", i); env.MessageID != want {
			t.Fatalf("position %d: want %s, got %s", i, want, env.MessageID)
		}
	}

	again, err := s.Drain(ctx, "bob")
	if err != nil {
		t.Fatalf("second Drain: %v", err)
	}
	if len(again) != 0 {
		t.Fatalf("second drain returned %d envelopes", len(again))
	}
}

func TestFileMailbox_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s := store.NewFileMailbox(dir)
	if err := s.Append(ctx, "bob", domain.Envelope{MessageID: "m1", SenderID: "alice", RecipientID: "bob"}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	reopened := store.NewFileMailbox(dir)
	envs, err := reopened.Drain(ctx, "bob")
	if err != nil {
		t.Fatalf("Drain after reopen: %v", err)
	}
	if len(envs) != 1 || envs[0].MessageID != "m1" {
		t.Fatalf("queued envelope lost across reopen: %v", envs)
	}
}

func TestFileMailbox_MessageIDs(t *testing.T) {
	s := store.NewFileMailbox(t.TempDir())
	ctx := context.Background()

	for _, id := range []string{"m1", "m2"} {
		if err := s.Append(ctx, "bob", domain.Envelope{MessageID: id, SenderID: "alice", RecipientID: "bob"}); err != nil {
			t.Fatalf("Append %s: %v", id, err)
		}
	}

	ids, err := s.MessageIDs(ctx, "bob")
	if err != nil {
		t.Fatalf("MessageIDs: %v", err)
	}
	if len(ids) != 2 || ids[0] != "m1" || ids[1] != "m2" {
		t.Fatalf("want [m1 m2], got %v", ids)
	}

	// The read does not consume the queue.
	envs, err := s.Drain(ctx, "bob")
	if err != nil {
		t.Fatalf("Drain: %v", err)
	}
	if len(envs) != 2 {
		t.Fatalf("MessageIDs consumed the queue: %d left", len(envs))
	}

	ids, err = s.MessageIDs(ctx, "nobody")
	if err != nil {
		t.Fatalf("MessageIDs empty: %v", err)
	}
	if len(ids) != 0 {
		t.Fatalf("want no ids for an empty mailbox, got %v", ids)
	}
}

func TestFileMailbox_QueuesAreIndependent(t *testing.T) {
	s := store.NewFileMailbox(t.TempDir())
	ctx := context.Background()

	if err := s.Append(ctx, "bob", domain.Envelope{MessageID: "for-bob"}); err != nil {
		t.Fatalf("Append bob: %v", err)
	}
	if err := s.Append(ctx, "carol", domain.Envelope{MessageID: "for-carol"}); err != nil {
		t.Fatalf("Append carol: %v", err)
	}

	envs, err := s.Drain(ctx, "bob")
	if err != nil {
		t.Fatalf("Drain bob: %v", err)
	}
	if len(envs) != 1 || envs[0].MessageID != "for-bob" {
		t.Fatalf("bob's drain: %v", envs)
	}

	envs, err = s.Drain(ctx, "carol")
	if err != nil {
		t.Fatalf("Drain carol: %v", err)
	}
	if len(envs) != 1 || envs[0].MessageID != "for-carol" {
		t.Fatalf("carol's queue disturbed: %v", envs)
	}
}
