package blockcipher

import (
	"crypto/cipher"

	"seprim/internal/domain"
	"seprim/internal/memory"
	"seprim/internal/util/memzero"
)

// SignatureSize is the length of a Triple DES CBC signature.
const SignatureSize = 8

// TripleDESCBCSignature writes the 8-byte 2-key Triple DES CBC-MAC of input
// to sig: the last ciphertext block of input enciphered in CBC mode from iv.
// key holds Key 1 followed by Key 2. input must be a nonzero multiple of 8
// bytes; unaligned input is rejected rather than truncated. Regions may
// overlap freely.
func TripleDESCBCSignature(sig, key, iv, input []byte) error {
	const op = "blockcipher.TripleDESCBCSignature"
	if len(sig) != SignatureSize {
		return domain.Errorf(domain.KindInvalidLength, op, "signature must be %d bytes, got %d", SignatureSize, len(sig))
	}
	if len(key) != 16 {
		return domain.Errorf(domain.KindInvalidLength, op, "key must be two 8-byte DES keys, got %d bytes", len(key))
	}
	if len(iv) != 8 {
		return domain.Errorf(domain.KindInvalidLength, op, "IV must be 8 bytes, got %d", len(iv))
	}
	if err := memory.CheckLength(op, len(input)); err != nil {
		return err
	}
	if len(input)%8 != 0 {
		return domain.Errorf(domain.KindInvalidLength, op, "input of %d bytes is not a multiple of 8", len(input))
	}

	b, err := newBlock(op, domain.TripleDES, key)
	if err != nil {
		return err
	}
	var start [8]byte
	copy(start[:], iv)
	var block [8]byte
	defer memzero.Zero(block[:])
	enc := cipher.NewCBCEncrypter(b, start[:])
	for i := 0; i < len(input); i += 8 {
		enc.CryptBlocks(block[:], input[i:i+8])
	}
	copy(sig, block[:])
	return nil
}
