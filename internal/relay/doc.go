// Package relay provides the HTTP implementation of domain.RelayClient.
//
// The server acts as a store-and-forward relay for sealed envelopes: it
// stores registered signing keys and queues ciphertext for recipients until
// they fetch it. This package offers a concrete HTTP client for interacting
// with such a server.
//
// Supported operations:
//   - Registering our signing public key.
//   - Posting a sealed envelope to a recipient's mailbox.
//   - Draining our own mailbox.
//   - Fetching a peer's registered signing key.
//   - Listing registered clients.
//
// All requests are JSON over HTTP and accept a context for cancellation and
// deadlines. Rejections carry a wire error code, which is mapped back to the
// domain error taxonomy so callers can use errors.Is.
package relay
