// Package contacts implements the local contact directory: a mapping from
// peer identifier to that peer's long-term exchange public key.
//
// Keys arrive out of band (the operator pastes them in), so the directory
// only validates shape, not ownership; trust-on-first-use is the operator's
// call. Re-adding a peer overwrites the previous key.
package contacts
