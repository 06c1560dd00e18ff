// Package registry implements the server-side client registry: the single
// source of truth for which signing key may claim an identifier.
//
// Policy: first registration wins. Re-registering with the identical key is
// an idempotent success; any different key is rejected. There is no overwrite
// path, since rotating a key without proof of possession would allow identity
// takeover.
package registry
