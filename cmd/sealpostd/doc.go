// Package main runs the sealpost relay server.
//
// The daemon owns the client registry and the per-recipient mailboxes,
// created at startup and torn down at shutdown. Three storage backends are
// available: in-memory (default), a JSON data directory, and Redis. See
// internal/server for the HTTP API.
//
// Configuration comes from SEALPOST_-prefixed environment variables:
//
//	SEALPOST_LISTEN_ADDR  listen address (default :8080)
//	SEALPOST_STORE        memory | file | redis (default memory)
//	SEALPOST_DATA_DIR     data directory for the file backend (default ./data)
//	SEALPOST_REDIS_ADDR   redis address for the redis backend (default localhost:6379)
//	SEALPOST_REDIS_DB     redis database number (default 0)
//
// The server never sees plaintext or private keys; it stores ciphertext and
// registered public signing keys only.
package main
