package blockcipher

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/des"

	"github.com/RyuaNerin/go-krypto/seed"

	"seprim/internal/domain"
	"seprim/internal/memory"
	"seprim/internal/util/memzero"
)

// MaxKeyLength is the largest key a 1-byte key length field can express.
const MaxKeyLength = 0xFF

// newBlock validates key for alg and returns the keyed block cipher.
func newBlock(op string, alg domain.CipherAlgorithm, key []byte) (cipher.Block, error) {
	if len(key) > MaxKeyLength {
		return nil, domain.Errorf(domain.KindInvalidLength, op, "key length %d exceeds %d", len(key), MaxKeyLength)
	}
	var (
		b   cipher.Block
		err error
	)
	switch alg {
	case domain.DES:
		if len(key) != 8 {
			return nil, keyLengthError(op, alg, len(key))
		}
		b, err = des.NewCipher(key)
	case domain.TripleDES:
		var k [24]byte
		defer memzero.Zero(k[:])
		switch len(key) {
		case 16:
			// Two-key Triple DES runs as K1, K2, K1.
			copy(k[:16], key)
			copy(k[16:], key[:8])
		case 24:
			copy(k[:], key)
		default:
			return nil, keyLengthError(op, alg, len(key))
		}
		b, err = des.NewTripleDESCipher(k[:])
	case domain.SEED:
		if len(key) != 16 {
			return nil, keyLengthError(op, alg, len(key))
		}
		b, err = seed.NewCipher(key)
	case domain.AES:
		if len(key) != 16 {
			return nil, keyLengthError(op, alg, len(key))
		}
		b, err = aes.NewCipher(key)
	default:
		return nil, domain.Errorf(domain.KindConfiguration, op, "unsupported algorithm 0x%02X", uint8(alg))
	}
	if err != nil {
		return nil, domain.Wrap(domain.KindConfiguration, op, "initialise "+alg.String(), err)
	}
	return b, nil
}

func keyLengthError(op string, alg domain.CipherAlgorithm, n int) error {
	return domain.Errorf(domain.KindInvalidLength, op, "%s does not take a %d-byte key", alg, n)
}

type direction int

const (
	encrypt direction = iota
	decrypt
)

// Encrypt enciphers in into out. len(in) must be a nonzero multiple of the
// block size and out at least as long. iv is used only in CBC mode and must
// then be exactly one block.
func Encrypt(alg domain.CipherAlgorithm, mode domain.CipherMode, key, iv, in, out []byte) error {
	return run("blockcipher.Encrypt", encrypt, alg, mode, key, iv, in, out)
}

// Decrypt deciphers in into out under the same rules as Encrypt.
func Decrypt(alg domain.CipherAlgorithm, mode domain.CipherMode, key, iv, in, out []byte) error {
	return run("blockcipher.Decrypt", decrypt, alg, mode, key, iv, in, out)
}

func run(op string, dir direction, alg domain.CipherAlgorithm, mode domain.CipherMode, key, iv, in, out []byte) error {
	if mode != domain.ECB && mode != domain.CBC {
		return domain.Errorf(domain.KindConfiguration, op, "unsupported chaining mode 0x%02X", uint8(mode))
	}
	bs := alg.BlockSize()
	if bs == 0 {
		return domain.Errorf(domain.KindConfiguration, op, "unsupported algorithm 0x%02X", uint8(alg))
	}
	if err := memory.CheckLength(op, len(in), out); err != nil {
		return err
	}
	if len(in)%bs != 0 {
		return domain.Errorf(domain.KindInvalidLength, op, "input of %d bytes is not a multiple of the %d-byte block", len(in), bs)
	}
	out = out[:len(in)]
	if err := memory.CheckAlias(op, in, out); err != nil {
		return err
	}

	// The IV may live inside in or out, so take it before writing anything.
	var chain [16]byte
	defer memzero.Zero(chain[:])
	if mode == domain.CBC {
		if len(iv) != bs {
			return domain.Errorf(domain.KindInvalidLength, op, "%s CBC needs a %d-byte IV, got %d", alg, bs, len(iv))
		}
		copy(chain[:], iv)
	}

	b, err := newBlock(op, alg, key)
	if err != nil {
		return err
	}

	switch {
	case mode == domain.ECB && dir == encrypt:
		for i := 0; i < len(in); i += bs {
			b.Encrypt(out[i:i+bs], in[i:i+bs])
		}
	case mode == domain.ECB:
		for i := 0; i < len(in); i += bs {
			b.Decrypt(out[i:i+bs], in[i:i+bs])
		}
	case dir == encrypt:
		cipher.NewCBCEncrypter(b, chain[:bs]).CryptBlocks(out, in)
	default:
		cipher.NewCBCDecrypter(b, chain[:bs]).CryptBlocks(out, in)
	}
	return nil
}
