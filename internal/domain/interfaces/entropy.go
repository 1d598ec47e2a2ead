package interfaces

// EntropySource fills caller-owned buffers with unpredictable bytes.
type EntropySource interface {
	RandomBytes(out []byte) error
}
