// Package securehash implements the resumable secure hash engine.
//
// A computation is carried in a caller-owned domain.HashState holding the
// untruncated chaining value, the number of bytes absorbed so far and the
// unaligned tail of the message. Absorb may be called any number of times,
// with the state saved and restored in between, and Finalize applies the
// padding and truncation. Supported digests are SHA-1, SHA-224, SHA-256,
// SHA-384 and SHA-512, selected by their digest length in bytes.
package securehash
