package common

// WipeByteArray overwrites b with zeros. Use it on password buffers once
// they have been hashed. A nil slice is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
