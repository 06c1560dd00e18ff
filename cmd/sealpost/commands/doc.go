// Package commands defines the sealpost CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - init         Create the local identity for an identifier
//   - fingerprint  Print the identity fingerprint
//   - register     Publish your signing public key to the server
//   - contact      Manage the local contact directory
//   - send         Seal and send a message to a contact
//   - recv         Drain and open your queued messages
//   - peers        List identifiers registered on the server
//
// # Implementation
//
// The root command builds a dependency graph (file store, contact directory,
// relay client, messenger) before any subcommand runs, so handlers share one
// app context.
package commands
