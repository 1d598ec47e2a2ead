package memory

import (
	"unsafe"

	"seprim/internal/domain"
)

const (
	// MaxLength is the largest length a 2-byte length field can express.
	MaxLength = 0xFFFF
	// MaxFixedLength is the largest length of the Fixed variants.
	MaxFixedLength = 0xFF
)

// Alias classifies how two regions share memory.
type Alias int

const (
	Disjoint Alias = iota
	// Exact means both regions start at the same address and have the same length.
	Exact
	// Partial means the regions share some but not all bytes.
	Partial
)

func (a Alias) String() string {
	switch a {
	case Disjoint:
		return "disjoint"
	case Exact:
		return "exact"
	case Partial:
		return "partial"
	}
	return "unknown"
}

// Overlap reports how a and b share memory. Empty regions never overlap.
func Overlap(a, b []byte) Alias {
	if len(a) == 0 || len(b) == 0 {
		return Disjoint
	}
	pa := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	pb := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	if pa == pb && len(a) == len(b) {
		return Exact
	}
	if pa < pb+uintptr(len(b)) && pb < pa+uintptr(len(a)) {
		return Partial
	}
	return Disjoint
}

// CheckAlias returns an OverlapViolation when a and b partially overlap.
// Exact aliasing and disjoint regions are accepted.
func CheckAlias(op string, a, b []byte) error {
	if Overlap(a, b) == Partial {
		return domain.Errorf(domain.KindOverlap, op, "regions partially overlap")
	}
	return nil
}

// CheckLength validates a 2-byte length field against the regions it
// addresses.
func CheckLength(op string, length int, regions ...[]byte) error {
	if length <= 0 {
		return domain.Errorf(domain.KindInvalidLength, op, "length must be positive, got %d", length)
	}
	if length > MaxLength {
		return domain.Errorf(domain.KindInvalidLength, op, "length %d exceeds %d", length, MaxLength)
	}
	for _, r := range regions {
		if len(r) < length {
			return domain.Errorf(domain.KindInvalidLength, op, "region of %d bytes is shorter than length %d", len(r), length)
		}
	}
	return nil
}
