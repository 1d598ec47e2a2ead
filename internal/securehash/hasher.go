package securehash

import (
	"hash"

	"seprim/internal/domain"
	"seprim/internal/memory"
)

// Hasher drives a HashState through the hash.Hash interface, splitting
// writes into chunks the engine accepts.
type Hasher struct {
	alg domain.HashAlgorithm
	st  domain.HashState
}

var _ hash.Hash = (*Hasher)(nil)

// NewHasher starts a fresh computation for alg.
func NewHasher(alg domain.HashAlgorithm) (*Hasher, error) {
	if !alg.Valid() {
		return nil, domain.Errorf(domain.KindInvalidLength, "securehash.NewHasher", "unsupported digest length %d", alg.DigestSize())
	}
	return &Hasher{alg: alg, st: domain.HashState{Algorithm: alg}}, nil
}

// ResumeHasher continues the computation saved in st.
func ResumeHasher(st domain.HashState) (*Hasher, error) {
	h, err := NewHasher(st.Algorithm)
	if err != nil {
		return nil, err
	}
	h.st = st
	return h, nil
}

// Write absorbs p. It fails only when the byte counter would overflow or the
// state is inconsistent.
func (h *Hasher) Write(p []byte) (int, error) {
	n := 0
	for len(p) > 0 {
		chunk := p
		if len(chunk) > memory.MaxLength {
			chunk = chunk[:memory.MaxLength]
		}
		if err := Absorb(&h.st, h.alg, chunk); err != nil {
			return n, err
		}
		n += len(chunk)
		p = p[len(chunk):]
	}
	return n, nil
}

// Sum appends the current digest to b without changing the state. It panics
// only if the state was corrupted through State.
func (h *Hasher) Sum(b []byte) []byte {
	out := make([]byte, h.alg.DigestSize())
	if err := Finalize(&h.st, out); err != nil {
		panic(err)
	}
	return append(b, out...)
}

func (h *Hasher) Reset() { h.st = domain.HashState{Algorithm: h.alg} }

func (h *Hasher) Size() int { return h.alg.DigestSize() }

func (h *Hasher) BlockSize() int { return h.alg.BlockSize() }

// State returns a copy of the running state for saving.
func (h *Hasher) State() domain.HashState { return h.st }
