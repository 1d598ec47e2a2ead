// Package bigint implements the unsigned big-integer primitives used for
// signature and proof arithmetic: plain multiplication, modular
// multiplication and modular exponentiation.
//
// Integers are caller-owned byte regions, most significant byte first, whose
// length is part of the contract: a modulus of N bytes means every operand and
// result of that operation is exactly N bytes.
//
// # Secure and public exponentiation
//
// ModExp takes an explicit secure flag. With secure set, exponentiation runs
// on a constant-time Montgomery ladder over fixed 4-bit windows: the sequence
// of limb operations and memory accesses depends only on the operand lengths,
// never on the exponent or base values. This path must be used whenever the
// exponent is secret, for example when signing.
//
// With secure cleared, exponentiation uses math/big, which is faster but
// variable-time. It is only safe when every operand is public, as in
// signature verification.
//
// # Preconditions
//
// Operands must be reduced (less than the modulus), exponentiation requires
// an odd modulus and an exponent no longer than the modulus. Violations are
// reported as *domain.Error values of kind PreconditionViolated instead of
// yielding an undefined result.
package bigint
