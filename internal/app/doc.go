// Package app wires the primitive engine for the CLI.
//
// Config is read from YAML. NewWire builds the entropy source, the Engine
// that applies policy and logging on top of the primitive packages, and the
// hash-state store, exposing them via the Wire struct for commands to use.
package app
