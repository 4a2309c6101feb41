package options

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "exercise.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	opts, err := Parse(newFlagSet(), nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), opts)
	assert.False(t, opts.UsesShaderFiles())
}

func TestLoadKeepsUnsetDefaults(t *testing.T) {
	path := writeConfig(t, `
width: 1024
title: Lighting
vertex_shader: shaders/shader.vert
fragment_shader: shaders/shader.frag
light:
  ambient: 0.1
camera:
  position: [0, 1, 3]
`)
	opts, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1024, opts.Width)
	assert.Equal(t, 600, opts.Height)
	assert.Equal(t, "Lighting", opts.Title)
	assert.True(t, opts.UsesShaderFiles())
	assert.Equal(t, float32(0.1), opts.Light.Ambient)
	assert.Equal(t, float32(0.8), opts.Light.Diffuse)
	assert.Equal(t, [3]float32{0, 1, 3}, opts.Camera.Position)
	assert.Equal(t, float32(-90), opts.Camera.Yaw)
}

func TestFlagsOverrideConfig(t *testing.T) {
	path := writeConfig(t, "width: 1024\nheight: 768\n")
	opts, err := Parse(newFlagSet(), []string{"-config", path, "-height", "900", "-capture-cursor=false"})
	require.NoError(t, err)
	assert.Equal(t, 1024, opts.Width)
	assert.Equal(t, 900, opts.Height)
	assert.False(t, opts.CaptureCursor)
}

func TestValidate(t *testing.T) {
	_, err := Parse(newFlagSet(), []string{"-width", "0"})
	assert.Error(t, err)

	_, err = Parse(newFlagSet(), []string{"-vert", "a.vert"})
	assert.Error(t, err)

	_, err = Parse(newFlagSet(), []string{"-watch"})
	assert.Error(t, err)

	_, err = Parse(newFlagSet(), []string{"-watch", "-vert", "a.vert", "-frag", "a.frag"})
	assert.NoError(t, err)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeConfig(t, "width: [not a number"))
	assert.Error(t, err)

	_, err = Parse(newFlagSet(), []string{"-config", writeConfig(t, "width: -1\n")})
	assert.Error(t, err)
}
