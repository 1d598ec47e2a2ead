package interfaces

import (
	domaintypes "seprim/internal/domain/types"
	"seprim/internal/flags"
)

// Primitives is the surface consumed by the command dispatch layer.
//
// Every method writes into caller-supplied regions and reports violations as
// *domain.Error values.
type Primitives interface {
	Copy(dst, src []byte, length int) error
	Compare(a, b []byte, length int) (domaintypes.Ordering, flags.Outcome, error)

	Multiply(product, op1, op2 []byte) error
	ModMultiply(op1, op2, modulus []byte) error
	ModExp(exponent, modulus, base, result []byte, secure bool) error

	Encrypt(alg domaintypes.CipherAlgorithm, mode domaintypes.CipherMode, key, iv, in, out []byte) error
	Decrypt(alg domaintypes.CipherAlgorithm, mode domaintypes.CipherMode, key, iv, in, out []byte) error

	Absorb(st *domaintypes.HashState, alg domaintypes.HashAlgorithm, msg []byte) error
	Finalize(st *domaintypes.HashState, digest []byte) error

	RandomBytes(out []byte) error
}
