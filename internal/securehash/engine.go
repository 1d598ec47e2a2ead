package securehash

import (
	"math"

	"seprim/internal/domain"
	"seprim/internal/memory"
	"seprim/internal/util/memzero"
)

// Absorb feeds msg into the computation carried by st.
//
// When st.Counted is zero a new computation for alg begins and whatever st
// held before is ignored. Otherwise st must already be an alg computation and
// its remainder is prepended to msg. On return st holds the chaining value
// after the last complete block, the new count and the new unaligned tail,
// which may be longer than the tail passed in.
func Absorb(st *domain.HashState, alg domain.HashAlgorithm, msg []byte) error {
	const op = "securehash.Absorb"
	if st == nil {
		return domain.Errorf(domain.KindPrecondition, op, "nil state")
	}
	if len(msg) > memory.MaxLength {
		return domain.Errorf(domain.KindInvalidLength, op, "message length %d exceeds %d", len(msg), memory.MaxLength)
	}
	l, err := layoutFor(op, alg)
	if err != nil {
		return err
	}
	if st.Counted == 0 {
		*st = domain.HashState{Algorithm: alg}
	} else if st.Algorithm != alg {
		return domain.Errorf(domain.KindPrecondition, op, "state belongs to %s, not %s", st.Algorithm, alg)
	}
	if uint64(st.Counted)+uint64(len(msg)) > math.MaxUint32 {
		return domain.Errorf(domain.KindInvalidLength, op, "byte counter would overflow")
	}

	h, err := resume(op, st, l)
	if err != nil {
		return err
	}
	h.Write(msg)
	return capture(op, st, h, l)
}

// Finalize pads the computation in st and writes the digest, truncated for
// SHA-224 and SHA-384. digest must be exactly the digest length of the
// state's algorithm. st itself is left unchanged so the caller may keep
// absorbing.
func Finalize(st *domain.HashState, digest []byte) error {
	const op = "securehash.Finalize"
	if st == nil {
		return domain.Errorf(domain.KindPrecondition, op, "nil state")
	}
	l, err := layoutFor(op, st.Algorithm)
	if err != nil {
		return err
	}
	if len(digest) != st.Algorithm.DigestSize() {
		return domain.Errorf(domain.KindInvalidLength, op, "%s digest is %d bytes, got %d", st.Algorithm, st.Algorithm.DigestSize(), len(digest))
	}
	h, err := resume(op, st, l)
	if err != nil {
		return err
	}
	sum := h.Sum(nil)
	copy(digest, sum)
	memzero.Zero(sum)
	return nil
}

// Sum computes the one-shot digest of msg. The algorithm is selected by
// len(digest): 20, 28, 32, 48 or 64 bytes. digest may overlap msg.
func Sum(digest, msg []byte) error {
	var st domain.HashState
	if err := Absorb(&st, domain.HashAlgorithm(len(digest)), msg); err != nil {
		return err
	}
	return Finalize(&st, digest)
}

// SHA1 writes the 20-byte SHA-1 digest of msg.
func SHA1(digest, msg []byte) error {
	if len(digest) != domain.SHA1.DigestSize() {
		return domain.Errorf(domain.KindInvalidLength, "securehash.SHA1", "digest must be 20 bytes, got %d", len(digest))
	}
	return Sum(digest, msg)
}
