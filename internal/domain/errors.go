package domain

import "errors"

// Error taxonomy for the envelope pipeline and the server-side router.
// Callers match these with errors.Is; packages wrap them with fmt.Errorf("%w: ...")
// to add context without losing the category.
var (
	// ErrMalformedKey indicates key material of the wrong length or encoding.
	ErrMalformedKey = errors.New("malformed key")

	// ErrUnknownContact indicates the peer is not in the local contact directory.
	ErrUnknownContact = errors.New("unknown contact")

	// ErrUnknownClient indicates the identifier has no registry entry.
	ErrUnknownClient = errors.New("unknown client")

	// ErrUnknownSender indicates the envelope's sender_id is not registered.
	ErrUnknownSender = errors.New("unknown sender")

	// ErrUnknownRecipient indicates the envelope's recipient_id is not registered.
	ErrUnknownRecipient = errors.New("unknown recipient")

	// ErrAlreadyRegistered indicates the identifier is taken by a different key.
	ErrAlreadyRegistered = errors.New("already registered")

	// ErrInvalidSignature indicates the envelope signature did not verify
	// under the sender's registered signing key.
	ErrInvalidSignature = errors.New("invalid signature")

	// ErrDecryptionFailed indicates an AEAD tag or associated-data mismatch.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrDuplicateMessage indicates a message_id already seen by the
	// recipient's mailbox.
	ErrDuplicateMessage = errors.New("duplicate message id")

	// ErrMalformedEnvelope indicates wrong field lengths or encoding.
	ErrMalformedEnvelope = errors.New("malformed envelope")
)
