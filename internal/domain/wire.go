package domain

// Wire-level message kinds. The HTTP boundary decodes each request into one
// of these closed variants before any cryptographic logic runs.

// RegisterRequest claims an identifier with a signing public key.
type RegisterRequest struct {
	ClientID   string        `json:"client_id"`
	SigningKey Ed25519Public `json:"signing_public_key_hex"`
}

// RegisterResponse acknowledges a successful registration.
type RegisterResponse struct {
	ClientID string `json:"client_id"`
}

// SendResponse acknowledges an accepted envelope.
type SendResponse struct {
	MessageID string `json:"message_id"`
}

// InboxResponse carries the envelopes drained from a mailbox, oldest first.
type InboxResponse struct {
	Envelopes []Envelope `json:"envelopes"`
}

// ClientKeyResponse serves a registered signing public key.
type ClientKeyResponse struct {
	ClientID   string        `json:"client_id"`
	SigningKey Ed25519Public `json:"signing_public_key_hex"`
}

// ClientListResponse lists registered identifiers.
type ClientListResponse struct {
	Clients []string `json:"clients"`
}

// ErrorResponse is the uniform error payload.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Wire error codes. Cryptographic rejections share CodeInvalidEnvelope so the
// boundary never distinguishes a bad tag from a bad signature.
const (
	CodeMalformedKey      = "malformed_key"
	CodeMalformedEnvelope = "malformed_envelope"
	CodeUnknownClient     = "unknown_client"
	CodeUnknownSender     = "unknown_sender"
	CodeUnknownRecipient  = "unknown_recipient"
	CodeAlreadyRegistered = "already_registered"
	CodeDuplicateMessage  = "duplicate_message"
	CodeInvalidEnvelope   = "invalid_envelope"
	CodeInternal          = "internal_error"
)
