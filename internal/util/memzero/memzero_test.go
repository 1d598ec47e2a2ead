package memzero

import "testing"

func TestZero(t *testing.T) {
	b := []byte{1, 2, 3, 4}
	Zero(b[1:3])
	if b[0] != 1 || b[1] != 0 || b[2] != 0 || b[3] != 4 {
		t.Fatalf("unexpected %v", b)
	}
	Zero(nil)
}

func TestWords(t *testing.T) {
	x := []uint{^uint(0), 7}
	Words(x)
	if x[0] != 0 || x[1] != 0 {
		t.Fatalf("unexpected %v", x)
	}
}
