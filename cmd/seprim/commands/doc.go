// Package commands defines the seprim CLI, a thin shell over the primitive
// engine for trying operations by hand and scripting test transcripts.
//
// Commands
//
//   - hash      Absorb files or stdin, optionally resuming a saved state
//   - mul       Multiply two integers
//   - modmul    Modular multiplication
//   - modexp    Modular exponentiation (constant-time with --secure)
//   - compare   Compare two integers
//   - encrypt   Block encipher (DES, 3DES, SEED, AES; ECB or CBC)
//   - decrypt   Block decipher
//   - mac       Triple DES CBC signature
//   - random    Random bytes
//   - static    Read and write the persistent static area
//
// Operands and results are hex, most significant byte first.
//
// # Implementation
//
// The root command loads the YAML config, applies flag overrides and builds
// the dependency graph (engine, entropy source, stores) before any
// subcommand runs.
package commands
