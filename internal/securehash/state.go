package securehash

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding"
	"encoding/binary"
	"hash"

	"seprim/internal/domain"
	"seprim/internal/util/memzero"
)

// magicLen is the length of the format tag that prefixes every marshaled
// digest state.
const magicLen = 4

func newHash(alg domain.HashAlgorithm) hash.Hash {
	switch alg {
	case domain.SHA1:
		return sha1.New()
	case domain.SHA224:
		return sha256.New224()
	case domain.SHA256:
		return sha256.New()
	case domain.SHA384:
		return sha512.New384()
	case domain.SHA512:
		return sha512.New()
	}
	return nil
}

// layout describes the binary state of a digest: a format tag, the chaining
// words big-endian, one block of buffered input and the 64-bit byte count.
type layout struct {
	magic []byte
	iv    []byte
	chain int
	block int
}

func (l layout) size() int { return magicLen + l.chain + l.block + 8 }

// layoutFor reads the tag and initialization vector off a fresh digest so the
// engine never hardcodes either.
func layoutFor(op string, alg domain.HashAlgorithm) (layout, error) {
	h := newHash(alg)
	if h == nil {
		return layout{}, domain.Errorf(domain.KindInvalidLength, op, "unsupported digest length %d", alg.DigestSize())
	}
	b, err := marshal(h)
	if err != nil {
		return layout{}, domain.Wrap(domain.KindConfiguration, op, "digest state unavailable", err)
	}
	l := layout{
		chain: alg.ChainingSize(),
		block: alg.BlockSize(),
	}
	if len(b) != l.size() {
		return layout{}, domain.Errorf(domain.KindConfiguration, op, "unexpected %s state size %d", alg, len(b))
	}
	l.magic = b[:magicLen]
	l.iv = b[magicLen : magicLen+l.chain]
	return l, nil
}

func marshal(h hash.Hash) ([]byte, error) {
	m, ok := h.(encoding.BinaryMarshaler)
	if !ok {
		return nil, domain.Errorf(domain.KindConfiguration, "securehash", "digest cannot export its state")
	}
	return m.MarshalBinary()
}

// resume rebuilds a running digest from st. A zero counter starts afresh and
// an all-zero chaining value stands for the standard IV.
func resume(op string, st *domain.HashState, l layout) (hash.Hash, error) {
	h := newHash(st.Algorithm)
	if st.Counted == 0 {
		return h, nil
	}
	if st.RemainderLen != int(st.Counted%uint32(l.block)) {
		return nil, domain.Errorf(domain.KindPrecondition, op,
			"remainder of %d bytes does not match %d bytes absorbed", st.RemainderLen, st.Counted)
	}

	buf := make([]byte, 0, l.size())
	defer memzero.Zero(buf[:cap(buf)])
	buf = append(buf, l.magic...)
	chain := st.ChainingValue()
	if isZero(chain) {
		chain = l.iv
	}
	buf = append(buf, chain...)
	buf = append(buf, st.PendingRemainder()...)
	buf = append(buf, make([]byte, l.block-st.RemainderLen)...)
	buf = binary.BigEndian.AppendUint64(buf, uint64(st.Counted))

	u, ok := h.(encoding.BinaryUnmarshaler)
	if !ok {
		return nil, domain.Errorf(domain.KindConfiguration, op, "digest cannot import its state")
	}
	if err := u.UnmarshalBinary(buf); err != nil {
		return nil, domain.Wrap(domain.KindConfiguration, op, "restore digest state", err)
	}
	return h, nil
}

// capture writes the running digest h back into st.
func capture(op string, st *domain.HashState, h hash.Hash, l layout) error {
	b, err := marshal(h)
	if err != nil {
		return domain.Wrap(domain.KindConfiguration, op, "export digest state", err)
	}
	defer memzero.Zero(b)
	if len(b) != l.size() {
		return domain.Errorf(domain.KindConfiguration, op, "unexpected %s state size %d", st.Algorithm, len(b))
	}

	chain := b[magicLen : magicLen+l.chain]
	pending := b[magicLen+l.chain : magicLen+l.chain+l.block]
	count := binary.BigEndian.Uint64(b[len(b)-8:])
	rem := int(count % uint64(l.block))

	memzero.Zero(st.Intermediate[:])
	copy(st.Intermediate[:], chain)
	memzero.Zero(st.Remainder[:])
	copy(st.Remainder[:], pending[:rem])
	st.RemainderLen = rem
	st.Counted = uint32(count)
	return nil
}

func isZero(b []byte) bool {
	var acc byte
	for _, v := range b {
		acc |= v
	}
	return acc == 0
}
