package domain

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// aeadOverhead is the Poly1305 tag appended to every ciphertext.
const aeadOverhead = 16

// Envelope is the signed, encrypted unit exchanged over the wire and queued
// server-side. The signature covers the canonical serialization of every
// other field; the AEAD tag inside Ciphertext additionally binds MessageID,
// SenderID and RecipientID as associated data.
type Envelope struct {
	MessageID   string       `json:"message_id"`
	SenderID    string       `json:"sender_id"`
	RecipientID string       `json:"recipient_id"`
	Ephemeral   X25519Public `json:"ephemeral_exchange_public_key_hex"`
	Nonce       Nonce        `json:"nonce_hex"`
	Ciphertext  HexBytes     `json:"ciphertext_hex"`
	Signature   HexBytes     `json:"signature_hex"`
	Timestamp   int64        `json:"timestamp"`
}

// SigningBytes returns the canonical byte serialization the signature is
// computed over: every field except Signature, in fixed order, with uvarint
// length prefixes on variable-length fields.
func (e Envelope) SigningBytes() []byte {
	var b bytes.Buffer
	writeLenPrefixed(&b, []byte(e.MessageID))
	writeLenPrefixed(&b, []byte(e.SenderID))
	writeLenPrefixed(&b, []byte(e.RecipientID))
	b.Write(e.Ephemeral[:])
	b.Write(e.Nonce[:])
	writeLenPrefixed(&b, e.Ciphertext)
	var ts [8]byte
	binary.BigEndian.PutUint64(ts[:], uint64(e.Timestamp))
	b.Write(ts[:])
	return b.Bytes()
}

// AssociatedData returns the routing metadata bound into the AEAD tag.
// Altering any of these fields invalidates the tag even if the signature
// check were bypassed.
func (e Envelope) AssociatedData() []byte {
	var b bytes.Buffer
	writeLenPrefixed(&b, []byte(e.MessageID))
	writeLenPrefixed(&b, []byte(e.SenderID))
	writeLenPrefixed(&b, []byte(e.RecipientID))
	return b.Bytes()
}

// Validate checks field presence and lengths before any cryptographic work.
func (e Envelope) Validate() error {
	if e.MessageID == "" || e.SenderID == "" || e.RecipientID == "" {
		return fmt.Errorf("%w: empty identifier", ErrMalformedEnvelope)
	}
	if len(e.Ciphertext) < aeadOverhead {
		return fmt.Errorf("%w: ciphertext shorter than AEAD tag", ErrMalformedEnvelope)
	}
	if len(e.Signature) != SignatureSize {
		return fmt.Errorf("%w: signature length %d", ErrMalformedEnvelope, len(e.Signature))
	}
	return nil
}

func writeLenPrefixed(b *bytes.Buffer, p []byte) {
	var l [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(l[:], uint64(len(p)))
	b.Write(l[:n])
	b.Write(p)
}
