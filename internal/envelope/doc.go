// Package envelope implements the cryptographic codec for sealpost messages.
//
// # Sealing
//
// Each message gets a fresh X25519 ephemeral key pair, used once and wiped.
// The ephemeral private key and the recipient's long-term exchange public key
// agree on a shared secret, which HKDF-SHA256 expands into a
// ChaCha20-Poly1305 key and nonce. Because every message derives its own key,
// the deterministic nonce can never repeat under that key, and compromise of
// the long-term exchange key does not expose past messages (forward secrecy).
//
// The AEAD binds message_id, sender_id and recipient_id as associated data,
// and the sender's long-term Ed25519 key signs the canonical serialization of
// the whole envelope.
//
// # Opening
//
// Verify-then-decrypt: the signature is checked before any key agreement or
// AEAD work, so forged envelopes are rejected without touching the
// ciphertext. The server runs only this signature step and never decrypts.
//
// # Errors
//
// ErrMalformedKey for an unusable recipient key, ErrInvalidSignature for a
// signature mismatch, ErrDecryptionFailed for any AEAD or associated-data
// mismatch. Failures are terminal for the envelope; nothing here retries.
package envelope
