package entropy

import (
	"crypto/sha256"
	"io"
	"sync"

	"golang.org/x/crypto/chacha20"
	"golang.org/x/crypto/hkdf"

	"seprim/internal/domain"
	"seprim/internal/util/memzero"
)

const (
	// MinSeedSize is the shortest seed NewDeterministic accepts.
	MinSeedSize = 16

	keySize = chacha20.KeySize
	info    = "seprim deterministic entropy v1"
)

// Deterministic is a seeded ChaCha20 generator. Every request runs the
// keystream under the current key and then replaces the key with further
// keystream, so a captured state never reveals earlier output. Two
// generators built from the same seed produce the same bytes.
type Deterministic struct {
	mu  sync.Mutex
	key [keySize]byte
}

var _ Source = (*Deterministic)(nil)

// NewDeterministic derives the initial key from seed with HKDF-SHA256.
func NewDeterministic(seed []byte) (*Deterministic, error) {
	if len(seed) < MinSeedSize {
		return nil, domain.Errorf(domain.KindInvalidLength, "entropy.NewDeterministic",
			"seed must be at least %d bytes, got %d", MinSeedSize, len(seed))
	}
	d := new(Deterministic)
	if err := d.derive(seed, nil); err != nil {
		return nil, err
	}
	return d, nil
}

// derive replaces the key with HKDF(secret, salt).
func (d *Deterministic) derive(secret, salt []byte) error {
	r := hkdf.New(sha256.New, secret, salt, []byte(info))
	if _, err := io.ReadFull(r, d.key[:]); err != nil {
		return domain.Wrap(domain.KindConfiguration, "entropy.Deterministic", "derive key", err)
	}
	return nil
}

// Reseed mixes fresh entropy and optional additional input into the key.
func (d *Deterministic) Reseed(fresh, additional []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	secret := make([]byte, 0, keySize+len(fresh))
	secret = append(secret, d.key[:]...)
	secret = append(secret, fresh...)
	defer memzero.Zero(secret)
	return d.derive(secret, additional)
}

// RandomBytes fills out with the next keystream bytes.
func (d *Deterministic) RandomBytes(out []byte) error {
	const op = "entropy.Deterministic"
	if len(out) == 0 {
		return domain.Errorf(domain.KindInvalidLength, op, "zero-length request")
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	var nonce [chacha20.NonceSize]byte
	c, err := chacha20.NewUnauthenticatedCipher(d.key[:], nonce[:])
	if err != nil {
		return domain.Wrap(domain.KindConfiguration, op, "keystream", err)
	}
	memzero.Zero(d.key[:])
	c.XORKeyStream(d.key[:], d.key[:])
	for i := range out {
		out[i] = 0
	}
	c.XORKeyStream(out, out)
	return nil
}
