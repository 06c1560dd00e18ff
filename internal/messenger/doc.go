// Package messenger is the client-side orchestration layer: it loads the
// identity, resolves contacts, runs the envelope codec and talks to the
// server through the relay client.
//
// Receiving fetches the full drained inbox, resolves each claimed sender's
// registered signing key through the server, and opens envelopes one by one.
// An envelope that fails verification is dropped and counted; the failure is
// terminal for that envelope only and is never detailed beyond a generic
// integrity failure.
package messenger
