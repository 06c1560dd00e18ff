package contacts_test

import (
	"encoding/hex"
	"errors"
	"testing"

	"sealpost/internal/contacts"
	"sealpost/internal/crypto"
	"sealpost/internal/domain"
	"sealpost/internal/store"
)

func newDirectory(t *testing.T) *contacts.Directory {
	t.Helper()
	return contacts.New(store.NewFileStore(t.TempDir()))
}

func TestAddGet(t *testing.T) {
	dir := newDirectory(t)

	_, pub, err := crypto.GenerateX25519()
	if err != nil {
		t.Fatalf("GenerateX25519: %v", err)
	}
	keyHex := hex.EncodeToString(pub.Slice())

	c, err := dir.Add("bob", keyHex)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if c.PeerID != "bob" || c.Exchange != pub {
		t.Fatal("stored contact differs from input")
	}

	got, err := dir.Get("bob")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != pub {
		t.Fatal("Get returned a different key")
	}
}

func TestAdd_MalformedKey(t *testing.T) {
	dir := newDirectory(t)

	for _, keyHex := range []string{
		"",
		"zz",
		"abcd", // too short
		"gggggggggggggggggggggggggggggggggggggggggggggggggggggggggggggg", // not hex
	} {
		if _, err := dir.Add("bob", keyHex); !errors.Is(err, domain.ErrMalformedKey) {
			t.Fatalf("key %q: want ErrMalformedKey, got %v", keyHex, err)
		}
	}
}

func TestGet_Unknown(t *testing.T) {
	dir := newDirectory(t)

	if _, err := dir.Get("nobody"); !errors.Is(err, domain.ErrUnknownContact) {
		t.Fatalf("want ErrUnknownContact, got %v", err)
	}
}

func TestList(t *testing.T) {
	dir := newDirectory(t)

	for _, name := range []string{"carol", "bob"} {
		_, pub, err := crypto.GenerateX25519()
		if err != nil {
			t.Fatalf("GenerateX25519: %v", err)
		}
		if _, err := dir.Add(name, hex.EncodeToString(pub.Slice())); err != nil {
			t.Fatalf("Add %s: %v", name, err)
		}
	}

	list, err := dir.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 || list[0].PeerID != "bob" || list[1].PeerID != "carol" {
		t.Fatalf("want [bob carol], got %v", list)
	}
}
