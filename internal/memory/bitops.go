package memory

import (
	"seprim/internal/domain"
	"seprim/internal/flags"
)

// Bit manipulation option byte layout.
const (
	OpXOR byte = 0x00
	OpEQU byte = 0x01
	OpOR  byte = 0x02
	OpAND byte = 0x03

	// WriteBack replaces the input byte with the operation result.
	WriteBack byte = 0x80

	opMask       byte = 0x03
	reservedBits byte = 0x7C
)

// XorAssign computes x ^= y. y may overlap x in any way.
func XorAssign(x, y []byte) (flags.Outcome, error) {
	if err := CheckLength("memory.XorAssign", len(x), y); err != nil {
		return flags.Outcome{}, err
	}
	if len(y) != len(x) {
		return flags.Outcome{}, domain.Errorf(domain.KindInvalidLength, "memory.XorAssign", "operands differ in length: %d and %d", len(x), len(y))
	}
	if Overlap(x, y) == Partial {
		y = append([]byte(nil), y...)
	}
	var acc byte
	for i := range x {
		x[i] ^= y[i]
		acc |= x[i]
	}
	return flags.Outcome{Zero: acc == 0}, nil
}

// Increment adds one to the big-endian value in x. Carry is set when x wraps
// around to zero.
func Increment(x []byte) (flags.Outcome, error) {
	if err := CheckLength("memory.Increment", len(x)); err != nil {
		return flags.Outcome{}, err
	}
	carry := uint(1)
	var acc byte
	for i := len(x) - 1; i >= 0; i-- {
		s := uint(x[i]) + carry
		x[i] = byte(s)
		carry = s >> 8
		acc |= x[i]
	}
	return flags.Outcome{Carry: carry == 1, Zero: acc == 0}, nil
}

// ShiftRight shifts the big-endian block x right by n bits, filling the most
// significant bits with zeros. Carry holds the last bit shifted out.
// n must be in [1, 8*len(x)).
func ShiftRight(x []byte, n int) (flags.Outcome, error) {
	if err := CheckLength("memory.ShiftRight", len(x)); err != nil {
		return flags.Outcome{}, err
	}
	if n <= 0 || n >= 8*len(x) {
		return flags.Outcome{}, domain.Errorf(domain.KindInvalidLength, "memory.ShiftRight", "shift of %d bits on a %d-byte block", n, len(x))
	}
	last := n - 1
	carry := x[len(x)-1-last/8] >> (last % 8) & 1

	byteShift, bitShift := n/8, uint(n%8)
	var acc byte
	for i := len(x) - 1; i >= 0; i-- {
		j := i - byteShift
		var v byte
		if j >= 0 {
			v = x[j] >> bitShift
			if bitShift > 0 && j > 0 {
				v |= x[j-1] << (8 - bitShift)
			}
		}
		x[i] = v
		acc |= v
	}
	return flags.Outcome{Carry: carry == 1, Zero: acc == 0}, nil
}

// BitManipulate applies the operation selected by option to in and mask.
// Bits 0-1 of option select XOR, EQU, OR or AND; bit 7 (WriteBack) selects
// whether the returned byte is the result or the unchanged input. The
// outcome always reflects the result.
func BitManipulate(in, option, mask byte) (byte, flags.Outcome, error) {
	if option&reservedBits != 0 {
		return in, flags.Outcome{}, domain.Errorf(domain.KindConfiguration, "memory.BitManipulate", "reserved option bits set: %#02x", option)
	}
	var res byte
	switch option & opMask {
	case OpXOR:
		res = in ^ mask
	case OpEQU:
		res = ^(in ^ mask)
	case OpOR:
		res = in | mask
	case OpAND:
		res = in & mask
	}
	out := in
	if option&WriteBack != 0 {
		out = res
	}
	return out, flags.Outcome{Zero: res == 0}, nil
}
