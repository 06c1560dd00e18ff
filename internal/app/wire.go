package app

import (
	"net/http"

	"sealpost/internal/contacts"
	"sealpost/internal/domain"
	"sealpost/internal/identity"
	"sealpost/internal/messenger"
	"sealpost/internal/relay"
	"sealpost/internal/store"
)

// Wire bundles all stores, services, and clients for the CLI.
type Wire struct {
	Identity *identity.Service
	Contacts *contacts.Directory
	Messages *messenger.Service
	Relay    domain.RelayClient
	HTTP     *http.Client
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) *Wire {
	fileStore := store.NewFileStore(cfg.Home)

	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	var rc domain.RelayClient
	if cfg.ServerURL != "" {
		rc = relay.NewHTTP(cfg.ServerURL, httpClient)
	}

	dir := contacts.New(fileStore)
	return &Wire{
		Identity: identity.New(fileStore),
		Contacts: dir,
		Messages: messenger.New(fileStore, dir, rc),
		Relay:    rc,
		HTTP:     httpClient,
	}
}
