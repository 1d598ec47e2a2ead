package types

// HashAlgorithm selects a secure hash by its digest length in bytes, the same
// value callers pass as the requested digest size.
type HashAlgorithm uint8

const (
	SHA1   HashAlgorithm = 20
	SHA224 HashAlgorithm = 28
	SHA256 HashAlgorithm = 32
	SHA384 HashAlgorithm = 48
	SHA512 HashAlgorithm = 64
)

// MaxChainingSize is the largest intermediate hash value (SHA-384/512).
const MaxChainingSize = 64

// MaxBlockSize is the largest hash block (SHA-384/512).
const MaxBlockSize = 128

// Valid reports whether a is one of the supported digest lengths.
func (a HashAlgorithm) Valid() bool {
	switch a {
	case SHA1, SHA224, SHA256, SHA384, SHA512:
		return true
	}
	return false
}

// DigestSize returns the length of the final, possibly truncated, digest.
func (a HashAlgorithm) DigestSize() int { return int(a) }

// ChainingSize returns the length of the untruncated intermediate hash value.
func (a HashAlgorithm) ChainingSize() int {
	switch a {
	case SHA1:
		return 20
	case SHA224, SHA256:
		return 32
	case SHA384, SHA512:
		return 64
	}
	return 0
}

// BlockSize returns the compression function block length.
func (a HashAlgorithm) BlockSize() int {
	switch a {
	case SHA1, SHA224, SHA256:
		return 64
	case SHA384, SHA512:
		return 128
	}
	return 0
}

func (a HashAlgorithm) String() string {
	switch a {
	case SHA1:
		return "SHA-1"
	case SHA224:
		return "SHA-224"
	case SHA256:
		return "SHA-256"
	case SHA384:
		return "SHA-384"
	case SHA512:
		return "SHA-512"
	}
	return "unknown"
}

// HashState is the caller-owned context of a streaming hash computation.
//
// Counted is the number of bytes absorbed so far, including the bytes held in
// Remainder. A zero Counted starts a new computation: Intermediate and
// Remainder are ignored. Intermediate always holds the untruncated chaining
// value; truncation for SHA-224 and SHA-384 happens only on finalization.
type HashState struct {
	Algorithm    HashAlgorithm
	Intermediate [MaxChainingSize]byte
	Counted      uint32
	Remainder    [MaxBlockSize]byte
	RemainderLen int
}

// ChainingValue returns the meaningful prefix of Intermediate.
func (s *HashState) ChainingValue() []byte {
	return s.Intermediate[:s.Algorithm.ChainingSize()]
}

// PendingRemainder returns the meaningful prefix of Remainder.
func (s *HashState) PendingRemainder() []byte {
	if s.RemainderLen < 0 || s.RemainderLen > len(s.Remainder) {
		return nil
	}
	return s.Remainder[:s.RemainderLen]
}
