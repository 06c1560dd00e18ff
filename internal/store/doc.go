// Package store provides persistence for sealpost's core data.
//
// Client side, FileStore keeps the long-term identity encrypted under a
// passphrase (scrypt + ChaCha20-Poly1305) and the contact directory as plain
// JSON; contacts hold only public material.
//
// Server side, the domain.RegistryStore and domain.MailboxStore contracts
// have three interchangeable backends:
//
//   - Memory: maps under mutexes, lost on process exit.
//   - File: JSON files under a data directory, reloaded on start.
//   - Redis: registry in a hash via HSetNX, mailboxes as per-recipient lists
//     drained with a transactional LRange+Del.
//
// All writes to disk go through a temp file then rename.
package store
