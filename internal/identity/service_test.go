package identity_test

import (
	"errors"
	"testing"

	"sealpost/internal/identity"
	"sealpost/internal/store"
)

const goodPassphrase = "Correct-Horse-Battery-9!"

func TestGenerateLoad(t *testing.T) {
	svc := identity.New(store.NewFileStore(t.TempDir()))

	id, fp, err := svc.Generate(goodPassphrase, "alice")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if id.ID != "alice" {
		t.Fatalf("identity id: %q", id.ID)
	}
	if fp == "" {
		t.Fatal("empty fingerprint")
	}

	loaded, err := svc.Load(goodPassphrase)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.EdPub != id.EdPub || loaded.XPub != id.XPub {
		t.Fatal("loaded identity differs from generated identity")
	}

	fp2, err := svc.Fingerprint(goodPassphrase)
	if err != nil {
		t.Fatalf("Fingerprint: %v", err)
	}
	if fp2 != fp {
		t.Fatalf("fingerprint changed across load: %q vs %q", fp, fp2)
	}
}

func TestGenerate_WeakPassphrase(t *testing.T) {
	svc := identity.New(store.NewFileStore(t.TempDir()))

	for _, p := range []string{
		"",
		"short1!A",
		"alllowercase123!",
		"ALLUPPERCASE123!",
		"NoDigitsHere!!",
		"NoSymbolsHere123",
	} {
		if _, _, err := svc.Generate(p, "alice"); !errors.Is(err, identity.ErrWeakPassphrase) {
			t.Fatalf("passphrase %q: want ErrWeakPassphrase, got %v", p, err)
		}
	}
}

func TestGenerate_EmptyClientID(t *testing.T) {
	svc := identity.New(store.NewFileStore(t.TempDir()))

	if _, _, err := svc.Generate(goodPassphrase, ""); err == nil {
		t.Fatal("Generate with empty client id succeeded")
	}
}
