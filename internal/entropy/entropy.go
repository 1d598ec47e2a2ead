package entropy

import (
	"crypto/rand"

	"seprim/internal/domain"
)

// Source fills caller-owned buffers with random bytes.
type Source = domain.EntropySource

// NumberSize is the length of the fixed-size random number primitive.
const NumberSize = 8

// System reads from the operating system CSPRNG.
type System struct{}

var _ Source = System{}

func (System) RandomBytes(out []byte) error {
	const op = "entropy.System"
	if len(out) == 0 {
		return domain.Errorf(domain.KindInvalidLength, op, "zero-length request")
	}
	if _, err := rand.Read(out); err != nil {
		return domain.Wrap(domain.KindConfiguration, op, "read system randomness", err)
	}
	return nil
}

// RandomNumber draws one 8-byte random number from src.
func RandomNumber(src Source) ([NumberSize]byte, error) {
	var n [NumberSize]byte
	if src == nil {
		return n, domain.Errorf(domain.KindConfiguration, "entropy.RandomNumber", "no entropy source")
	}
	err := src.RandomBytes(n[:])
	return n, err
}
