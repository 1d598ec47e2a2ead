package bigint

import (
	"seprim/internal/domain"
	"seprim/internal/memory"
	"seprim/internal/util/memzero"
)

// Multiply sets product = op1*op2. op1 and op2 have the same length and
// product is exactly twice as long. Any aliasing between the regions is
// allowed; all operands are read before product is written.
func Multiply(product, op1, op2 []byte) error {
	const op = "bigint.Multiply"
	if err := memory.CheckLength(op, len(op1)); err != nil {
		return err
	}
	if len(op2) != len(op1) {
		return domain.Errorf(domain.KindInvalidLength, op, "operands differ in length: %d and %d", len(op1), len(op2))
	}
	if len(product) != 2*len(op1) {
		return domain.Errorf(domain.KindInvalidLength, op, "product must be %d bytes, got %d", 2*len(op1), len(product))
	}

	n := limbsFor(len(op1))
	x := natFromBytes(op1, n)
	y := natFromBytes(op2, n)
	z := make(nat, 2*n)
	mulInto(z, x, y)
	z.fillBytes(product)

	x.clear()
	y.clear()
	z.clear()
	return nil
}

// ModMultiply sets op1 = op1*op2 mod modulus. All three regions have the same
// length and both operands must be less than the modulus, which may be even
// but not zero. The running time depends only on the length.
func ModMultiply(op1, op2, modulus []byte) error {
	const op = "bigint.ModMultiply"
	length := len(modulus)
	if err := memory.CheckLength(op, length); err != nil {
		return err
	}
	if len(op1) != length || len(op2) != length {
		return domain.Errorf(domain.KindInvalidLength, op, "operands must be %d bytes, got %d and %d", length, len(op1), len(op2))
	}

	n := limbsFor(length)
	m := natFromBytes(modulus, n)
	if m.isZero() == yes {
		return domain.Errorf(domain.KindPrecondition, op, "modulus is zero")
	}
	x := natFromBytes(op1, n)
	y := natFromBytes(op2, n)
	defer x.clear()
	defer y.clear()
	if x.cmpGeq(m)|y.cmpGeq(m) == yes {
		return domain.Errorf(domain.KindPrecondition, op, "operand is not less than the modulus")
	}

	z := make(nat, 2*n)
	defer z.clear()
	mulInto(z, x, y)
	r := make(nat, n)
	defer r.clear()
	newModulus(m).reduce(r, z)
	r.fillBytes(op1)
	return nil
}

// ModExp sets result = base^exponent mod modulus.
//
// base and result are exactly len(modulus) bytes; result may be the very same
// region as base but must not partially overlap it. The modulus must be odd,
// base and exponent less than the modulus, and the exponent no longer than
// the modulus.
//
// secure selects the constant-time path and must be set whenever the
// exponent is secret. With secure cleared the computation is variable-time
// and only suitable for public operands.
func ModExp(exponent, modulus, base, result []byte, secure bool) error {
	const op = "bigint.ModExp"
	modLen := len(modulus)
	if err := memory.CheckLength(op, modLen); err != nil {
		return err
	}
	if err := memory.CheckLength(op, len(exponent)); err != nil {
		return err
	}
	if len(base) != modLen || len(result) != modLen {
		return domain.Errorf(domain.KindInvalidLength, op, "base and result must be %d bytes, got %d and %d", modLen, len(base), len(result))
	}
	if len(exponent) > modLen {
		return domain.Errorf(domain.KindPrecondition, op, "exponent of %d bytes is longer than the %d-byte modulus", len(exponent), modLen)
	}
	if err := memory.CheckAlias(op, result, base); err != nil {
		return err
	}

	n := limbsFor(modLen)
	m := natFromBytes(modulus, n)
	if m.isOdd() == no {
		return domain.Errorf(domain.KindPrecondition, op, "modulus is even")
	}
	b := natFromBytes(base, n)
	defer b.clear()
	e := natFromBytes(exponent, n)
	defer e.clear()
	if b.cmpGeq(m) == yes {
		return domain.Errorf(domain.KindPrecondition, op, "base is not less than the modulus")
	}
	if e.cmpGeq(m) == yes {
		return domain.Errorf(domain.KindPrecondition, op, "exponent is not less than the modulus")
	}

	if !secure {
		expPublic(result, base, exponent, modulus)
		return nil
	}

	// Copy the exponent so that result may alias it.
	exp := append([]byte(nil), exponent...)
	defer memzero.Zero(exp)
	r := make(nat, n)
	defer r.clear()
	newModulus(m).expSecure(r, b, exp)
	r.fillBytes(result)
	return nil
}
