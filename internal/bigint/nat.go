package bigint

import (
	"math/bits"

	"seprim/internal/util/memzero"
)

const (
	// _W is the limb width in bits.
	_W = bits.UintSize
	// _S is the limb width in bytes.
	_S = _W / 8
)

// choice is a constant-time boolean: always 0 or 1.
type choice uint

func not(c choice) choice { return 1 ^ c }

const (
	yes = choice(1)
	no  = choice(0)
)

// ctSelect returns x if on == 1 and y if on == 0, in constant time.
func ctSelect(on choice, x, y uint) uint {
	mask := -uint(on)
	return y ^ (mask & (y ^ x))
}

// ctEq returns 1 if x == y and 0 otherwise, in constant time.
func ctEq(x, y uint) choice {
	_, c1 := bits.Sub(x, y, 0)
	_, c2 := bits.Sub(y, x, 0)
	return not(choice(c1 | c2))
}

// nat is a little-endian sequence of full-width limbs. Its length is public
// and operations may leak it; they never leak limb values.
type nat []uint

// limbsFor returns the number of limbs needed to hold byteLen bytes.
func limbsFor(byteLen int) int {
	return (byteLen + _S - 1) / _S
}

// natFromBytes decodes big-endian b into a nat of n limbs. b must fit.
func natFromBytes(b []byte, n int) nat {
	x := make(nat, n)
	for i := 0; i < len(b); i++ {
		x[i/_S] |= uint(b[len(b)-1-i]) << (8 * (i % _S))
	}
	return x
}

// fillBytes encodes x big-endian into all of b, truncating high limbs that do
// not fit. Callers only truncate values known to be smaller than 2^(8*len(b)).
func (x nat) fillBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		var v byte
		if limb := i / _S; limb < len(x) {
			v = byte(x[limb] >> (8 * (i % _S)))
		}
		b[len(b)-1-i] = v
	}
}

func (x nat) clear() { memzero.Words(x) }

// assign sets x = y if on == 1. Both have the same length.
func (x nat) assign(on choice, y nat) {
	for i := range x {
		x[i] = ctSelect(on, y[i], x[i])
	}
}

// cmpGeq returns 1 if x >= y. Both have the same length.
func (x nat) cmpGeq(y nat) choice {
	var borrow uint
	for i := range x {
		_, borrow = bits.Sub(x[i], y[i], borrow)
	}
	return not(choice(borrow))
}

// isZero returns 1 if every limb of x is zero.
func (x nat) isZero() choice {
	var acc uint
	for _, v := range x {
		acc |= v
	}
	return ctEq(acc, 0)
}

// isOdd returns 1 if the lowest bit of x is set.
func (x nat) isOdd() choice {
	if len(x) == 0 {
		return no
	}
	return choice(x[0] & 1)
}

// mulInto sets z = x*y using schoolbook multiplication.
// len(z) must be len(x)+len(y) and z must not alias x or y.
func mulInto(z, x, y nat) {
	z.clear()
	for i, yi := range y {
		var c uint
		for j, xj := range x {
			hi, lo := bits.Mul(xj, yi)
			var cc uint
			lo, cc = bits.Add(lo, z[i+j], 0)
			hi += cc
			lo, cc = bits.Add(lo, c, 0)
			hi += cc
			z[i+j], c = lo, hi
		}
		z[i+len(x)] = c
	}
}
