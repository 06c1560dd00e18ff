package domain

// Identity holds a client's long-term keys. Private halves never leave the
// process that generated them; they are read-only after creation.
type Identity struct {
	ID     string         `json:"id"`
	EdPub  Ed25519Public  `json:"signing_public_key_hex"`
	EdPriv Ed25519Private `json:"signing_private_key_hex"`
	XPub   X25519Public   `json:"exchange_public_key_hex"`
	XPriv  X25519Private  `json:"exchange_private_key_hex"`
}

// Contact maps a peer identifier to its long-term exchange public key,
// added by the operator after an out-of-band exchange.
type Contact struct {
	PeerID   string       `json:"peer_id"`
	Exchange X25519Public `json:"exchange_public_key_hex"`
}

// ClientRecord is a registry entry. The server is its sole owner and writer.
type ClientRecord struct {
	ClientID     string        `json:"client_id"`
	SigningKey   Ed25519Public `json:"signing_public_key_hex"`
	RegisteredAt int64         `json:"registered_at"`
	LastSeen     int64         `json:"last_seen"`
}

// DecryptedMessage is what the messenger hands back after opening an envelope.
type DecryptedMessage struct {
	MessageID string
	From      string
	To        string
	Plaintext []byte
	Timestamp int64
}
