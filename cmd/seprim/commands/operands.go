package commands

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// parseHex decodes a hex operand, tolerating a 0x prefix and an odd digit
// count.
func parseHex(name, s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "0x"), "0X")
	if len(s)%2 == 1 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return b, nil
}

// parseFixed decodes a hex operand left-padded to exactly n bytes.
func parseFixed(name, s string, n int) ([]byte, error) {
	b, err := parseHex(name, s)
	if err != nil {
		return nil, err
	}
	if len(b) > n {
		return nil, fmt.Errorf("%s: %d bytes do not fit in %d", name, len(b), n)
	}
	out := make([]byte, n)
	copy(out[n-len(b):], b)
	return out, nil
}

func upperHex(b []byte) string { return strings.ToUpper(hex.EncodeToString(b)) }
