package domain

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// SignatureSize is the length of an Ed25519 signature.
const SignatureSize = 64

// NonceSize is the AEAD nonce length (ChaCha20-Poly1305).
const NonceSize = 12

// X25519Public is a Curve25519 exchange public key.
type X25519Public [32]byte

// Slice returns the key as a []byte.
func (p X25519Public) Slice() []byte { return p[:] }

// X25519Private is a Curve25519 exchange private key.
type X25519Private [32]byte

// Slice returns the key as a []byte.
func (k X25519Private) Slice() []byte { return k[:] }

// Ed25519Public is a signing public key.
type Ed25519Public [32]byte

// Slice returns the key as a []byte.
func (p Ed25519Public) Slice() []byte { return p[:] }

// Ed25519Private is a signing private key (ed25519.PrivateKey layout).
type Ed25519Private [64]byte

// Slice returns the key as a []byte.
func (k Ed25519Private) Slice() []byte { return k[:] }

// Nonce is a single-use AEAD nonce.
type Nonce [NonceSize]byte

// Slice returns the nonce as a []byte.
func (n Nonce) Slice() []byte { return n[:] }

// HexBytes is a byte slice that travels as a lowercase hex string in JSON.
type HexBytes []byte

// MarshalJSON encodes the bytes as a hex string.
func (h HexBytes) MarshalJSON() ([]byte, error) {
	return json.Marshal(hex.EncodeToString(h))
}

// UnmarshalJSON decodes a hex string.
func (h *HexBytes) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedEnvelope, err)
	}
	*h = b
	return nil
}

func marshalHex(b []byte) ([]byte, error) {
	return json.Marshal(hex.EncodeToString(b))
}

func unmarshalHex(data []byte, dst []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedKey, err)
	}
	if len(b) != len(dst) {
		return fmt.Errorf("%w: want %d bytes, got %d", ErrMalformedKey, len(dst), len(b))
	}
	copy(dst, b)
	return nil
}

// MarshalJSON encodes the key as a hex string.
func (p X25519Public) MarshalJSON() ([]byte, error) { return marshalHex(p[:]) }

// UnmarshalJSON decodes a 64-char hex string.
func (p *X25519Public) UnmarshalJSON(data []byte) error { return unmarshalHex(data, p[:]) }

// MarshalJSON encodes the key as a hex string.
func (k X25519Private) MarshalJSON() ([]byte, error) { return marshalHex(k[:]) }

// UnmarshalJSON decodes a 64-char hex string.
func (k *X25519Private) UnmarshalJSON(data []byte) error { return unmarshalHex(data, k[:]) }

// MarshalJSON encodes the key as a hex string.
func (p Ed25519Public) MarshalJSON() ([]byte, error) { return marshalHex(p[:]) }

// UnmarshalJSON decodes a 64-char hex string.
func (p *Ed25519Public) UnmarshalJSON(data []byte) error { return unmarshalHex(data, p[:]) }

// MarshalJSON encodes the key as a hex string.
func (k Ed25519Private) MarshalJSON() ([]byte, error) { return marshalHex(k[:]) }

// UnmarshalJSON decodes a 128-char hex string.
func (k *Ed25519Private) UnmarshalJSON(data []byte) error { return unmarshalHex(data, k[:]) }

// MarshalJSON encodes the nonce as a hex string.
func (n Nonce) MarshalJSON() ([]byte, error) { return marshalHex(n[:]) }

// UnmarshalJSON decodes a 24-char hex string.
func (n *Nonce) UnmarshalJSON(data []byte) error { return unmarshalHex(data, n[:]) }

// ParseX25519Public decodes a hex-encoded exchange public key.
// Wrong lengths or bad hex return ErrMalformedKey.
func ParseX25519Public(s string) (X25519Public, error) {
	var out X25519Public
	b, err := hex.DecodeString(s)
	if err != nil {
		return out, fmt.Errorf("%w: %v", ErrMalformedKey, err)
	}
	if len(b) != len(out) {
		return out, fmt.Errorf("%w: want %d bytes, got %d", ErrMalformedKey, len(out), len(b))
	}
	copy(out[:], b)
	return out, nil
}
