package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const maze = `#######
#S..#.#
#.#.#.#
#.#...#
#...#E#
#######
`

func TestRun(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(nil, strings.NewReader(maze), &out))

	assert.Equal(t, "distance: 7\npath: 8 cells\nreachable: 15 cells\nregions: 1\n", out.String())
}

func TestRun_FileAndPNG(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "maze.txt")
	img := filepath.Join(dir, "maze.png")
	require.NoError(t, os.WriteFile(in, []byte(maze), 0o644))

	var out bytes.Buffer
	require.NoError(t, run([]string{"-in", in, "-png", img}, nil, &out))

	f, err := os.Open(img)
	require.NoError(t, err)
	defer f.Close()
	decoded, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 7, decoded.Bounds().Dx())
	assert.Equal(t, 6, decoded.Bounds().Dy())

	r, g, b, _ := decoded.At(1, 1).RGBA()
	assert.Equal(t, [3]uint32{0x30, 0xa0, 0x40}, [3]uint32{r >> 8, g >> 8, b >> 8}, "start marker")
	r, g, b, _ = decoded.At(0, 0).RGBA()
	assert.Equal(t, [3]uint32{0x20, 0x20, 0x20}, [3]uint32{r >> 8, g >> 8, b >> 8}, "wall")
}

func TestRun_ScaledPNG(t *testing.T) {
	img := filepath.Join(t.TempDir(), "maze.png")
	require.NoError(t, run([]string{"-png", img, "-scale", "5"}, strings.NewReader(maze), &bytes.Buffer{}))

	f, err := os.Open(img)
	require.NoError(t, err)
	defer f.Close()
	decoded, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 35, decoded.Bounds().Dx())
	assert.Equal(t, 30, decoded.Bounds().Dy())
}

func TestRun_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	conf := filepath.Join(dir, "gridpath.yaml")
	require.NoError(t, os.WriteFile(conf, []byte("wall: x\nstart: a\nend: b\n"), 0o644))

	var out bytes.Buffer
	err := run([]string{"-config", conf}, strings.NewReader("a..\nxx.\nb..\n"), &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "distance: 6\n")

	// Command-line flags override the file.
	out.Reset()
	err = run([]string{"-config", conf, "-end", "c"}, strings.NewReader("a.c\nxx.\nb..\n"), &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "distance: 2\n")
}

func TestRun_ConfigFileErrors(t *testing.T) {
	dir := t.TempDir()
	conf := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(conf, []byte("colour: red\n"), 0o644))

	err := run([]string{"-config", conf}, strings.NewReader("SE\n"), &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gridpath: config")

	err = run([]string{"-config", filepath.Join(dir, "missing.yaml")}, strings.NewReader("SE\n"), &bytes.Buffer{})
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRun_CustomMarkers(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"-wall", "x", "-start", "a", "-end", "b"}, strings.NewReader("a..\nxx.\nb..\n"), &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "distance: 6\n")
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		input string
		want  error
	}{
		{"no start", nil, "..E\n", errNoMarker},
		{"no end", nil, "S..\n", errNoMarker},
		{"walled off", nil, "S#E\n", errNoRoute},
		{"bad wall flag", []string{"-wall", "##"}, "SE\n", errBadRune},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(tt.args, strings.NewReader(tt.input), &bytes.Buffer{})
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRun_RaggedInput(t *testing.T) {
	err := run(nil, strings.NewReader("S..\n.E\n"), &bytes.Buffer{})
	require.Error(t, err)
}
