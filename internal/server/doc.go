// Package server is the HTTP boundary of the sealpost relay.
//
// HTTP API
//
//	POST /v1/register
//	    Claim an identifier with a signing public key.
//
//	POST /v1/messages
//	    Submit a sealed envelope for validation and queueing.
//
//	GET /v1/inbox/{client_id}
//	    Atomically drain and return the caller's mailbox (possibly empty).
//
//	GET /v1/clients/{client_id}
//	    Return the registered signing public key for an identifier.
//
//	GET /v1/clients
//	    List registered identifiers.
//
// Requests are decoded once into the typed wire structures before any
// cryptographic logic runs. Responses are JSON; rejections carry a
// {code, message} payload. Signature and decryption failures share a single
// invalid_envelope code so the boundary leaks nothing beyond pass/fail.
//
// The server never holds plaintext or private keys; it stores ciphertext and
// public signing keys only.
package server
