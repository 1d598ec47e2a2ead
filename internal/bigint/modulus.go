package bigint

import "math/bits"

// modulus is a reduction context for a fixed, nonzero modulus.
type modulus struct {
	m nat
	// m0inv is -m^-1 mod 2^_W, meaningful only for odd moduli.
	m0inv uint
	// scratch buffers sized for m
	d nat
	t []uint
}

func newModulus(m nat) *modulus {
	mod := &modulus{
		m: m,
		d: make(nat, len(m)),
		t: make([]uint, len(m)+2),
	}
	if len(m) > 0 && m[0]&1 == 1 {
		mod.m0inv = minusInverse(m[0])
	}
	return mod
}

// minusInverse returns -x^-1 mod 2^_W for odd x by Newton iteration. Every
// odd x is its own inverse mod 8, and each step doubles the correct bits.
func minusInverse(x uint) uint {
	y := x
	for i := 0; i < 5; i++ {
		y *= 2 - x*y
	}
	return -y
}

// shiftIn sets x = x*2^_W + y mod m. x must already be reduced.
//
// Each of the _W steps doubles x, adds one bit of y and subtracts m when the
// doubled value reached it, choosing between both candidates in constant time.
func (mod *modulus) shiftIn(x nat, y uint) {
	m, d := mod.m, mod.d
	for i := _W - 1; i >= 0; i-- {
		carry := (y >> uint(i)) & 1
		for j := range x {
			hi := x[j] >> (_W - 1)
			x[j] = x[j]<<1 | carry
			carry = hi
		}
		var borrow uint
		for j := range x {
			d[j], borrow = bits.Sub(x[j], m[j], borrow)
		}
		// carry == borrow exactly when 2x+b >= m: either the doubling
		// overflowed the limbs (and the truncated subtraction borrows), or it
		// did not and the subtraction did not borrow.
		x.assign(ctEq(carry, borrow), d)
	}
}

// reduce sets out = x mod m for x of any length. out has len(m) limbs.
func (mod *modulus) reduce(out, x nat) {
	out.clear()
	for i := len(x) - 1; i >= 0; i-- {
		mod.shiftIn(out, x[i])
	}
}

// toMontgomery sets x = x*R mod m with R = 2^(_W*len(m)). x must be reduced.
func (mod *modulus) toMontgomery(x nat) {
	for range mod.m {
		mod.shiftIn(x, 0)
	}
}

// montMul sets out = a*b*R^-1 mod m (CIOS). a and b must be reduced and m
// odd. out may alias a or b.
func (mod *modulus) montMul(out, a, b nat) {
	m, t := mod.m, mod.t
	n := len(m)
	for i := range t {
		t[i] = 0
	}
	for i := 0; i < n; i++ {
		var c, cc uint
		bi := b[i]
		for j := 0; j < n; j++ {
			hi, lo := bits.Mul(a[j], bi)
			lo, cc = bits.Add(lo, t[j], 0)
			hi += cc
			lo, cc = bits.Add(lo, c, 0)
			hi += cc
			t[j], c = lo, hi
		}
		t[n], cc = bits.Add(t[n], c, 0)
		t[n+1] = cc

		q := t[0] * mod.m0inv
		hi, lo := bits.Mul(q, m[0])
		_, cc = bits.Add(lo, t[0], 0)
		c = hi + cc
		for j := 1; j < n; j++ {
			hi, lo = bits.Mul(q, m[j])
			lo, cc = bits.Add(lo, t[j], 0)
			hi += cc
			lo, cc = bits.Add(lo, c, 0)
			hi += cc
			t[j-1], c = lo, hi
		}
		t[n-1], cc = bits.Add(t[n], c, 0)
		t[n] = t[n+1] + cc
	}

	// t < 2m; subtract m once if t >= m.
	var borrow uint
	for j := 0; j < n; j++ {
		out[j], borrow = bits.Sub(t[j], m[j], borrow)
	}
	needSub := ctEq(t[n], borrow)
	for j := 0; j < n; j++ {
		out[j] = ctSelect(needSub, out[j], t[j])
	}
}
