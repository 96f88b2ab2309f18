package testutil

import "encoding/binary"

// MinimalGLB returns a valid binary glTF 2.0 file holding an empty JSON chunk.
func MinimalGLB() []byte {
	body := []byte(`{}      `)
	buf := make([]byte, 20, 20+len(body))
	binary.LittleEndian.PutUint32(buf[0:4], 0x46546C67)
	binary.LittleEndian.PutUint32(buf[4:8], 2)
	binary.LittleEndian.PutUint32(buf[8:12], uint32(20+len(body)))
	binary.LittleEndian.PutUint32(buf[12:16], uint32(len(body)))
	binary.LittleEndian.PutUint32(buf[16:20], 0x4E4F534A)
	return append(buf, body...)
}
