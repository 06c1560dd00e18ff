// Package mailbox implements the server-side router: validated envelopes are
// appended to per-recipient FIFO queues and drained atomically on fetch.
//
// # Envelope lifecycle
//
// Received -> Verifying -> Queued or Rejected. Verification is sender lookup,
// the codec's signature check (never decryption), a recipient registration
// check, and duplicate message-id rejection. Queued is the only state with a
// side effect: the recipient's mailbox grows by one.
//
// # Concurrency
//
// Each recipient has its own mutex, created on first use under a short
// map-level lock. Senders delivering to one recipient never block traffic for
// another, and a drain can never interleave with an in-flight append: every
// delivered envelope appears in exactly one future fetch, in arrival order.
//
// Message ids are remembered for the mailbox lifetime, so a duplicate is
// rejected even after the original has been drained. On the first access to a
// mailbox after startup the set is seeded from the ids still queued in the
// backing store, so redelivering an envelope whose original survived a
// restart is rejected too.
package mailbox
