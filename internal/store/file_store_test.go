package store_test

import (
	"testing"

	"sealpost/internal/crypto"
	"sealpost/internal/domain"
	"sealpost/internal/store"
)

func makeIdentity(t *testing.T, id string) domain.Identity {
	t.Helper()
	edPriv, edPub, err := crypto.GenerateEd25519()
	if err != nil {
		t.Fatalf("GenerateEd25519: %v", err)
	}
	xPriv, xPub, err := crypto.GenerateX25519()
	if err != nil {
		t.Fatalf("GenerateX25519: %v", err)
	}
	return domain.Identity{ID: id, EdPub: edPub, EdPriv: edPriv, XPub: xPub, XPriv: xPriv}
}

func TestIdentity_SaveLoad(t *testing.T) {
	s := store.NewFileStore(t.TempDir())
	id := makeIdentity(t, "alice")

	if err := s.SaveIdentity("Correct-Horse-9!", id); err != nil {
		t.Fatalf("SaveIdentity: %v", err)
	}
	got, err := s.LoadIdentity("Correct-Horse-9!")
	if err != nil {
		t.Fatalf("LoadIdentity: %v", err)
	}
	if got.ID != id.ID || got.EdPub != id.EdPub || got.EdPriv != id.EdPriv ||
		got.XPub != id.XPub || got.XPriv != id.XPriv {
		t.Fatal("loaded identity differs from saved identity")
	}
}

func TestIdentity_WrongPassphrase(t *testing.T) {
	s := store.NewFileStore(t.TempDir())

	if err := s.SaveIdentity("Correct-Horse-9!", makeIdentity(t, "alice")); err != nil {
		t.Fatalf("SaveIdentity: %v", err)
	}
	if _, err := s.LoadIdentity("wrong-passphrase"); err == nil {
		t.Fatal("LoadIdentity with wrong passphrase succeeded")
	}
}

func TestIdentity_LoadMissing(t *testing.T) {
	s := store.NewFileStore(t.TempDir())

	if _, err := s.LoadIdentity("anything"); err == nil {
		t.Fatal("LoadIdentity without a stored identity succeeded")
	}
}

func TestContacts_SaveLoadList(t *testing.T) {
	s := store.NewFileStore(t.TempDir())

	bob := makeIdentity(t, "bob")
	carol := makeIdentity(t, "carol")
	for _, c := range []domain.Contact{
		{PeerID: "carol", Exchange: carol.XPub},
		{PeerID: "bob", Exchange: bob.XPub},
	} {
		if err := s.SaveContact(c); err != nil {
			t.Fatalf("SaveContact %s: %v", c.PeerID, err)
		}
	}

	got, ok, err := s.LoadContact("bob")
	if err != nil {
		t.Fatalf("LoadContact: %v", err)
	}
	if !ok || got.Exchange != bob.XPub {
		t.Fatal("bob's contact entry missing or wrong")
	}

	if _, ok, err := s.LoadContact("nobody"); err != nil || ok {
		t.Fatalf("LoadContact nobody: ok=%v err=%v", ok, err)
	}

	list, err := s.ListContacts()
	if err != nil {
		t.Fatalf("ListContacts: %v", err)
	}
	if len(list) != 2 || list[0].PeerID != "bob" || list[1].PeerID != "carol" {
		t.Fatalf("want [bob carol], got %v", list)
	}
}

func TestContacts_Overwrite(t *testing.T) {
	s := store.NewFileStore(t.TempDir())

	old := makeIdentity(t, "bob")
	if err := s.SaveContact(domain.Contact{PeerID: "bob", Exchange: old.XPub}); err != nil {
		t.Fatalf("SaveContact: %v", err)
	}
	rotated := makeIdentity(t, "bob")
	if err := s.SaveContact(domain.Contact{PeerID: "bob", Exchange: rotated.XPub}); err != nil {
		t.Fatalf("SaveContact: %v", err)
	}

	got, ok, err := s.LoadContact("bob")
	if err != nil || !ok {
		t.Fatalf("LoadContact: ok=%v err=%v", ok, err)
	}
	if got.Exchange != rotated.XPub {
		t.Fatal("overwrite kept the old exchange key")
	}
}
