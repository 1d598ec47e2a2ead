// Package domain defines the data model, error taxonomy and contracts shared
// by the primitive packages.
//
// It contains plain types (hash state, algorithm and mode identifiers,
// orderings), the structured Error with its status-word mapping, and the
// interfaces (entropy, persistent memory, the Primitives surface) only.
package domain
