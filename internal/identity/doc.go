// Package identity manages creation, encryption and loading of the local
// identity.
//
// It enforces passphrase policy, generates the long-term X25519 exchange and
// Ed25519 signing key pairs, and persists them via the domain.IdentityStore.
package identity
