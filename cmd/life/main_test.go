package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lifekit/internal/cli"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotGlider(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glider.png")
	var out bytes.Buffer
	err := run(&out, []string{"-grid-size", "20", "-glider", "-generations", "4", "-snapshot", path, "-log-level", "error"})
	require.NoError(t, err)
	assert.Equal(t, "life  gen 4  pop 5", strings.TrimSpace(out.String()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 20, img.Bounds().Dx())
	assert.Equal(t, 20, img.Bounds().Dy())

	// The glider's top-right cell started at (row 1, col 3) and moves to (2, 4).
	r, _, _, _ := img.At(4, 2).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	r, _, _, _ = img.At(3, 1).RGBA()
	assert.Equal(t, uint32(0), r)
}

func TestRejectsSmallGrid(t *testing.T) {
	err := run(&bytes.Buffer{}, []string{"-grid-size", "8", "-snapshot", filepath.Join(t.TempDir(), "x.png")})
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
	assert.Contains(t, exitErr.Message, "invalid grid size")
}

func TestRejectsBadFlags(t *testing.T) {
	err := run(&bytes.Buffer{}, []string{"-bogus"})
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)

	err = run(&bytes.Buffer{}, []string{"-log-level", "loud", "-snapshot", "x.png"})
	require.ErrorAs(t, err, &exitErr)
}
