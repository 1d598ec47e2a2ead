// Package store provides the persistent tier of the primitive layer.
//
// Static is a fixed-size memory area backed by one file, offering an
// all-or-nothing write (temp file and rename) and an in-place write that may
// tear the written bytes but never touches anything else.
// HashStateFileStore keeps resumable hash contexts as JSON, optionally sealed
// under a passphrase with scrypt and ChaCha20-Poly1305. All methods are
// concurrency-safe via internal locking.
package store
