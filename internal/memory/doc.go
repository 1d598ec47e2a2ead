// Package memory implements the byte-region primitives every other primitive
// builds on: overlap-safe copy, subtraction-based compare, overlap
// classification and the small block operations (xor, increment, shift, bit
// manipulation).
//
// # Regions
//
// A region is a caller-owned []byte. Primitives never touch bytes beyond the
// declared length and never retain a region after returning. Lengths are
// 2-byte fields (at most MaxLength); the Fixed variants take a 1-byte length
// and so are bounded by MaxFixedLength.
//
// # Non-atomic copies
//
// Regions handled here live in volatile memory, where the distinction between
// atomic and non-atomic writes does not exist, so the NonAtomic variants are
// plain copies. Persistent memory with real non-atomic semantics is provided
// by store.Static.
package memory
