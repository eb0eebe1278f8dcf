package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Carmen-Shannon/world-in-motion/engine/camera"
	"github.com/Carmen-Shannon/world-in-motion/engine/renderer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "world.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, camera.DefaultCameraState(), cfg.CameraState())
	assert.Equal(t, camera.DefaultBounds(), cfg.Bounds())
	assert.Equal(t, renderer.PresentModeVSync, cfg.PresentMode())
	assert.Equal(t, renderer.MSAA4x, cfg.MSAA())
	assert.Equal(t, float32(45), cfg.Camera.Fov)
	assert.Equal(t, [4]float64{0, 0, 0, 1}, cfg.Renderer.ClearColor)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[window]
width = 1280

[camera]
target = [0.0, 0.0, 0.0]
radius = 12.5

[renderer]
msaa = 1
vsync = false
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, 500, cfg.Window.Height)
	assert.Equal(t, float32(12.5), cfg.CameraState().Offset.Radius)
	assert.Equal(t, float32(90), cfg.CameraState().Offset.Azimuth)
	assert.Equal(t, renderer.MSAAOff, cfg.MSAA())
	assert.Equal(t, renderer.PresentModeUncapped, cfg.PresentMode())
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "[window]\ncolour = \"red\"\n"))
	assert.ErrorContains(t, err, "colour")

	_, err = Load(writeConfig(t, "[window]\nwidth = \"wide\"\n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "[window\n"))
	assert.ErrorContains(t, err, "line 1")
}

func TestEncodeRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Assets.GroundTexture = "grass.png"
	data, err := cfg.Encode()
	require.NoError(t, err)

	decoded := Config{}
	require.NoError(t, Decode(data, &decoded))
	assert.Equal(t, cfg, decoded)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		want   string
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }, "window size"},
		{"near beyond far", func(c *Config) { c.Camera.Near = 2000 }, "depth range"},
		{"inverted elevation", func(c *Config) { c.Camera.MinElevation = 0; c.Camera.MaxElevation = -10 }, "inverted"},
		{"msaa 8", func(c *Config) { c.Renderer.MSAA = 8 }, "renderer.msaa"},
		{"clear colour", func(c *Config) { c.Renderer.ClearColor[2] = 2 }, "clear_color[2]"},
		{"mesh dir", func(c *Config) { c.Assets.MeshDir = "/does/not/exist" }, "mesh_dir"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.want)
		})
	}

	cfg := Default()
	cfg.Window.Height = -1
	cfg.Assets.MeshWorkers = 0
	err := cfg.Validate()
	assert.ErrorContains(t, err, "window size")
	assert.ErrorContains(t, err, "mesh_workers")
}

func TestFlags(t *testing.T) {
	cfg, err := NewFlags("world").Parse([]string{"-width", "640", "-vsync=false", "-profile"})
	require.NoError(t, err)
	assert.Equal(t, 640, cfg.Window.Width)
	assert.False(t, cfg.Renderer.VSync)
	assert.True(t, cfg.Debug.Profiler)

	_, err = NewFlags("world").Parse([]string{"stray"})
	assert.Error(t, err)
}

func TestFlags_OverrideFile(t *testing.T) {
	path := writeConfig(t, "[window]\nwidth = 1024\nheight = 768\n[debug]\nprofiler = true\n")
	f := NewFlags("world")
	cfg, err := f.Parse([]string{"-config", path, "-height", "600", "-export-texture", "out.webp"})
	require.NoError(t, err)

	assert.Equal(t, 1024, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
	assert.True(t, cfg.Debug.Profiler)
	assert.Equal(t, "out.webp", f.ExportTexture)
}
