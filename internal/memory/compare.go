package memory

import (
	"seprim/internal/domain"
	"seprim/internal/flags"
)

// Compare subtracts b from a over length bytes, most significant byte first,
// and derives the ordering from the borrow and zero outcome:
//
//	a > b: carry clear, zero clear
//	a = b: carry clear, zero set
//	a < b: carry set,   zero clear
//
// Neither region is modified. The running time depends only on length.
func Compare(a, b []byte, length int) (domain.Ordering, flags.Outcome, error) {
	if err := CheckLength("memory.Compare", length, a, b); err != nil {
		return domain.Equal, flags.Outcome{}, err
	}
	out := subtract(a[:length], b[:length])
	return ordering(out), out, nil
}

// CompareFixed is Compare with a 1-byte length.
func CompareFixed(a, b []byte, length uint8) (domain.Ordering, flags.Outcome, error) {
	if err := CheckLength("memory.CompareFixed", int(length), a, b); err != nil {
		return domain.Equal, flags.Outcome{}, err
	}
	out := subtract(a[:length], b[:length])
	return ordering(out), out, nil
}

// subtract computes the flags of a-b without storing the difference.
func subtract(a, b []byte) flags.Outcome {
	var borrow uint
	var acc byte
	for i := len(a) - 1; i >= 0; i-- {
		d := uint(a[i]) - uint(b[i]) - borrow
		acc |= byte(d)
		borrow = (d >> 8) & 1
	}
	return flags.Outcome{Carry: borrow == 1, Zero: acc == 0}
}

func ordering(o flags.Outcome) domain.Ordering {
	switch {
	case o.Carry:
		return domain.Less
	case o.Zero:
		return domain.Equal
	default:
		return domain.Greater
	}
}
