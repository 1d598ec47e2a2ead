// Package memzero wipes secret scratch buffers once an operation is done
// with them.
package memzero

import "runtime"

// Zero overwrites b with zeros.
func Zero(b []byte) {
	clear(b)
	runtime.KeepAlive(b)
}

// Words overwrites the limbs of a big integer with zeros.
func Words(x []uint) {
	clear(x)
	runtime.KeepAlive(x)
}
