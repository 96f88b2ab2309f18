package viewer

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	t.Parallel()

	require.NoError(t, Default().Validate())
}

func TestValidateRejectsBadAttributes(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.SourceURL = "javascript:alert(1)"
	cfg.RotationSpeed = "fast"
	cfg.Box.Height = "460px;position:fixed"
	cfg.ScriptURL = "ftp://example.com/mv.js"

	err := cfg.Validate()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, []string{"script", "src", "rotation-per-second", "height"}, verr.Fields)
}

func TestRotationSpeedOnlyCheckedWhenRotating(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.AutoRotate = false
	cfg.RotationSpeed = ""
	require.NoError(t, cfg.Validate())
}

func TestAttributesOrder(t *testing.T) {
	t.Parallel()

	attrs := Default().Attributes()
	names := make([]string, 0, len(attrs))
	for _, a := range attrs {
		names = append(names, a.Name)
	}
	require.Equal(t, []string{"src", "alt", "camera-controls", "auto-rotate", "rotation-per-second", "environment-image"}, names)
	require.True(t, attrs[2].Boolean)
	require.Equal(t, "18deg", attrs[4].Value)
}

func TestAttributesOmitDisabledFlags(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.CameraControls = false
	cfg.AutoRotate = false
	for _, a := range cfg.Attributes() {
		require.NotContains(t, []string{"camera-controls", "auto-rotate", "rotation-per-second"}, a.Name)
	}
}

func TestBoxStyle(t *testing.T) {
	t.Parallel()

	require.Equal(t, "width:100%;height:460px;border-radius:18px;background:#f4f4f5;overflow:hidden", Default().BoxStyle())
}

func glb(version, length, jsonLen, chunkType uint32) []byte {
	buf := make([]byte, 20)
	binary.LittleEndian.PutUint32(buf[0:4], glbMagic)
	binary.LittleEndian.PutUint32(buf[4:8], version)
	binary.LittleEndian.PutUint32(buf[8:12], length)
	binary.LittleEndian.PutUint32(buf[12:16], jsonLen)
	binary.LittleEndian.PutUint32(buf[16:20], chunkType)
	return buf
}

func TestInspectGLB(t *testing.T) {
	t.Parallel()

	info, err := InspectGLB(bytes.NewReader(glb(2, 28, 8, glbChunkJSON)))
	require.NoError(t, err)
	require.Equal(t, uint32(2), info.Version)
	require.Equal(t, uint32(8), info.JSONBytes)

	cases := map[string][]byte{
		"truncated":  []byte("glTF"),
		"magic":      append([]byte("nope"), make([]byte, 16)...),
		"version":    glb(1, 28, 8, glbChunkJSON),
		"chunk":      glb(2, 28, 8, 0x004E4942),
		"json-bound": glb(2, 20, 8, glbChunkJSON),
	}
	for name, payload := range cases {
		_, err := InspectGLB(bytes.NewReader(payload))
		require.Truef(t, errors.Is(err, ErrInvalidGLB), "%s: expected ErrInvalidGLB, got %v", name, err)
	}
}

func TestInspectGLBFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	good := filepath.Join(dir, "good.glb")
	payload := append(glb(2, 28, 8, glbChunkJSON), []byte(`{}      `)...)
	require.NoError(t, os.WriteFile(good, payload, 0o644))
	_, err := InspectGLBFile(good)
	require.NoError(t, err)

	short := filepath.Join(dir, "short.glb")
	require.NoError(t, os.WriteFile(short, glb(2, 64, 8, glbChunkJSON), 0o644))
	_, err = InspectGLBFile(short)
	require.ErrorIs(t, err, ErrInvalidGLB)

	_, err = InspectGLBFile(filepath.Join(dir, "missing.glb"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
