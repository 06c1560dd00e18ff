// Package app wires application dependencies for the CLI.
//
// It builds the concrete stores, the contact directory, the relay client and
// the messenger from Config, exposing them via the Wire struct for commands
// to use.
package app
