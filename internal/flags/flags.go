package flags

import "crypto/subtle"

// CCR bit positions used when an Outcome is packed into a single byte.
const (
	ccrZero  = 1 << 0
	ccrCarry = 1 << 3
)

// Outcome is the {carry, zero} pair produced by a primitive. It is valid
// until the caller's next primitive call and has no identity of its own.
type Outcome struct {
	// Carry is set when a borrow or overflow occurred.
	Carry bool
	// Zero is set when the result is all zero.
	Zero bool
}

// FromBits builds an Outcome from 0/1 machine words as produced by
// constant-time arithmetic.
func FromBits(carry, zero uint) Outcome {
	return Outcome{Carry: carry&1 == 1, Zero: zero&1 == 1}
}

// TestZero reports Zero when every byte of b is zero. It reads all of b
// regardless of its contents.
func TestZero(b []byte) Outcome {
	var acc byte
	for _, v := range b {
		acc |= v
	}
	return Outcome{Zero: subtle.ConstantTimeByteEq(acc, 0) == 1}
}

// CCR packs o into a condition-code byte: carry at bit 3, zero at bit 0.
func (o Outcome) CCR() byte {
	var b byte
	if o.Carry {
		b |= ccrCarry
	}
	if o.Zero {
		b |= ccrZero
	}
	return b
}

// FromCCR unpacks a condition-code byte produced by CCR.
func FromCCR(b byte) Outcome {
	return Outcome{Carry: b&ccrCarry != 0, Zero: b&ccrZero != 0}
}
