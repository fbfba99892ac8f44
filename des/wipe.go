package des

import "runtime"

// wipe overwrites intermediate key material. KeepAlive stops the compiler
// from treating the stores as dead.
func wipe(data []byte) {
	for i := range data {
		data[i] = 0
	}
	runtime.KeepAlive(data)
}
