package bigint

import "math/big"

// windowBits is the fixed window width of the secure exponentiation.
const windowBits = 4

// expSecure sets out = base^e mod m in constant time with respect to the
// values of base and e. base must be reduced and m odd. e is big-endian.
func (mod *modulus) expSecure(out, base nat, e []byte) {
	n := len(mod.m)

	// table[k] = base^k in Montgomery form; table[0] is R mod m.
	var table [1 << windowBits]nat
	table[0] = make(nat, n)
	mod.shiftIn(table[0], 1)
	mod.toMontgomery(table[0])
	table[1] = make(nat, n)
	copy(table[1], base)
	mod.toMontgomery(table[1])
	for k := 2; k < len(table); k++ {
		table[k] = make(nat, n)
		mod.montMul(table[k], table[k-1], table[1])
	}

	acc := make(nat, n)
	copy(acc, table[0])
	sel := make(nat, n)
	for _, b := range e {
		for _, w := range [2]uint{uint(b >> 4), uint(b & 0x0F)} {
			for i := 0; i < windowBits; i++ {
				mod.montMul(acc, acc, acc)
			}
			selectEntry(sel, table[:], w)
			mod.montMul(acc, acc, sel)
		}
	}

	one := make(nat, n)
	one[0] = 1
	mod.montMul(out, acc, one)

	for _, entry := range table {
		entry.clear()
	}
	acc.clear()
	sel.clear()
}

// selectEntry sets x = table[idx], touching every entry.
func selectEntry(x nat, table []nat, idx uint) {
	x.clear()
	for k, entry := range table {
		on := ctEq(uint(k), idx)
		for i := range x {
			x[i] = ctSelect(on, entry[i], x[i])
		}
	}
}

// expPublic computes base^e mod m with math/big. Variable-time.
func expPublic(result, base, e, m []byte) {
	b := new(big.Int).SetBytes(base)
	x := new(big.Int).SetBytes(e)
	mod := new(big.Int).SetBytes(m)
	b.Exp(b, x, mod).FillBytes(result)
}
