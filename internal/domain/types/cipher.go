package types

// CipherAlgorithm identifies a block cipher with its primitive algorithm byte.
type CipherAlgorithm uint8

const (
	DES       CipherAlgorithm = 0x03
	TripleDES CipherAlgorithm = 0x04
	SEED      CipherAlgorithm = 0x05
	AES       CipherAlgorithm = 0x06
)

// BlockSize returns the cipher block length, or 0 for unknown algorithms.
func (a CipherAlgorithm) BlockSize() int {
	switch a {
	case DES, TripleDES:
		return 8
	case SEED, AES:
		return 16
	}
	return 0
}

func (a CipherAlgorithm) String() string {
	switch a {
	case DES:
		return "DES"
	case TripleDES:
		return "3DES"
	case SEED:
		return "SEED"
	case AES:
		return "AES-128"
	}
	return "unknown"
}

// CipherMode is the chaining mode byte.
type CipherMode uint8

const (
	ECB CipherMode = 0x01
	CBC CipherMode = 0x02
)

func (m CipherMode) String() string {
	switch m {
	case ECB:
		return "ECB"
	case CBC:
		return "CBC"
	}
	return "unknown"
}
