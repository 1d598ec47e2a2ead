package interfaces

import domaintypes "seprim/internal/domain/types"

// StaticMemory is a persistent memory area addressed by offset.
//
// WriteAtomic lands all or none of data. WriteNonAtomic may leave data torn if
// interrupted; both leave bytes outside [off, off+len(data)) intact.
type StaticMemory interface {
	Size() int
	ReadAt(off, n int) ([]byte, error)
	WriteAtomic(off int, data []byte) error
	WriteNonAtomic(off int, data []byte) error
}

// HashStateStore persists streaming hash contexts between invocations.
type HashStateStore interface {
	SaveHashState(name string, st domaintypes.HashState, passphrase string) error
	LoadHashState(name string, passphrase string) (domaintypes.HashState, bool, error)
}
