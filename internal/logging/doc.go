// Package logging builds the structured logger shared by the engine and the
// CLI.
package logging
