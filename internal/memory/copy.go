package memory

// Copy copies length bytes from src to dst. The result is the same whether or
// not the regions overlap: dst ends up holding what src held before the call.
func Copy(dst, src []byte, length int) error {
	if err := CheckLength("memory.Copy", length, dst, src); err != nil {
		return err
	}
	// The builtin copy has memmove semantics.
	copy(dst[:length], src[:length])
	return nil
}

// CopyFixed is Copy with a 1-byte length.
func CopyFixed(dst, src []byte, length uint8) error {
	if err := CheckLength("memory.CopyFixed", int(length), dst, src); err != nil {
		return err
	}
	copy(dst[:length], src[:length])
	return nil
}

// CopyNonAtomic is Copy for volatile regions.
func CopyNonAtomic(dst, src []byte, length int) error {
	return Copy(dst, src, length)
}

// CopyFixedNonAtomic is CopyFixed for volatile regions.
func CopyFixedNonAtomic(dst, src []byte, length uint8) error {
	return CopyFixed(dst, src, length)
}
