package viewer

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

const (
	glbMagic      = 0x46546C67 // "glTF"
	glbChunkJSON  = 0x4E4F534A // "JSON"
	glbHeaderSize = 12
)

// ErrInvalidGLB is returned when a model file is not a binary glTF 2.0 asset.
var ErrInvalidGLB = errors.New("viewer: invalid glb")

// GLBInfo is the decoded binary glTF header.
type GLBInfo struct {
	Version   uint32
	Length    uint32
	JSONBytes uint32
}

// InspectGLB reads the 12-byte header and the first chunk header of a binary
// glTF stream.
func InspectGLB(r io.Reader) (GLBInfo, error) {
	var hdr [glbHeaderSize + 8]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return GLBInfo{}, fmt.Errorf("%w: truncated header", ErrInvalidGLB)
		}
		return GLBInfo{}, err
	}
	if binary.LittleEndian.Uint32(hdr[0:4]) != glbMagic {
		return GLBInfo{}, fmt.Errorf("%w: bad magic", ErrInvalidGLB)
	}
	info := GLBInfo{
		Version: binary.LittleEndian.Uint32(hdr[4:8]),
		Length:  binary.LittleEndian.Uint32(hdr[8:12]),
	}
	if info.Version != 2 {
		return info, fmt.Errorf("%w: unsupported version %d", ErrInvalidGLB, info.Version)
	}
	if binary.LittleEndian.Uint32(hdr[16:20]) != glbChunkJSON {
		return info, fmt.Errorf("%w: first chunk is not JSON", ErrInvalidGLB)
	}
	info.JSONBytes = binary.LittleEndian.Uint32(hdr[12:16])
	if uint64(info.JSONBytes)+glbHeaderSize+8 > uint64(info.Length) {
		return info, fmt.Errorf("%w: JSON chunk exceeds declared length", ErrInvalidGLB)
	}
	return info, nil
}

// InspectGLBFile inspects a model on disk and checks the declared length
// against the file size.
func InspectGLBFile(path string) (GLBInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return GLBInfo{}, err
	}
	defer f.Close()

	info, err := InspectGLB(f)
	if err != nil {
		return info, fmt.Errorf("%s: %w", path, err)
	}
	st, err := f.Stat()
	if err != nil {
		return info, err
	}
	if st.Size() != int64(info.Length) {
		return info, fmt.Errorf("%s: %w: declared length %d, file size %d", path, ErrInvalidGLB, info.Length, st.Size())
	}
	return info, nil
}
