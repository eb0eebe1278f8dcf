// Package config loads the demo's settings: compiled-in defaults, then an optional TOML file,
// then command-line flags.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/Carmen-Shannon/world-in-motion/engine/camera"
	"github.com/Carmen-Shannon/world-in-motion/engine/renderer"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pelletier/go-toml/v2"
)

// Config is the complete set of settings.
type Config struct {
	Window   WindowConfig   `toml:"window"`
	Camera   CameraConfig   `toml:"camera"`
	Renderer RendererConfig `toml:"renderer"`
	Assets   AssetsConfig   `toml:"assets"`
	Debug    DebugConfig    `toml:"debug"`
}

// WindowConfig sets up the window.
type WindowConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

// CameraConfig holds the projection, the starting camera state and the limits applied after every key.
type CameraConfig struct {
	Fov           float32    `toml:"fov"`
	Near          float32    `toml:"near"`
	Far           float32    `toml:"far"`
	Target        [3]float32 `toml:"target"`
	Azimuth       float32    `toml:"azimuth"`
	Elevation     float32    `toml:"elevation"`
	Radius        float32    `toml:"radius"`
	OrbitStep     float32    `toml:"orbit_step"`
	BoundaryLimit float32    `toml:"boundary_limit"`
	MinElevation  float32    `toml:"min_elevation"`
	MaxElevation  float32    `toml:"max_elevation"`
	MinRadius     float32    `toml:"min_radius"`
}

// RendererConfig selects presentation and anti-aliasing.
type RendererConfig struct {
	MSAA            int        `toml:"msaa"`
	VSync           bool       `toml:"vsync"`
	SoftwareAdapter bool       `toml:"software_adapter"`
	ClearColor      [4]float64 `toml:"clear_color"`
}

// AssetsConfig locates the ground texture and optional mesh overrides.
type AssetsConfig struct {
	// GroundTexture is an image file; empty selects the procedural checker.
	GroundTexture string `toml:"ground_texture"`
	// MeshDir is searched for <descriptor>.gltf or .glb overrides; empty disables overrides.
	MeshDir     string  `toml:"mesh_dir"`
	PlaneTiling float32 `toml:"plane_tiling"`
	MeshWorkers int     `toml:"mesh_workers"`
}

// DebugConfig sets the initial state of the debug toggle.
type DebugConfig struct {
	Profiler   bool `toml:"profiler"`
	DrawLookAt bool `toml:"draw_look_at"`
}

// Default returns the settings the demo ships with.
//
// Returns:
//   - Config: the default configuration
func Default() Config {
	state := camera.DefaultCameraState()
	bounds := camera.DefaultBounds()
	return Config{
		Window: WindowConfig{
			Title:  "World in Motion",
			Width:  500,
			Height: 500,
		},
		Camera: CameraConfig{
			Fov:           45.0,
			Near:          1.0,
			Far:           1000.0,
			Target:        state.Target,
			Azimuth:       state.Offset.Azimuth,
			Elevation:     state.Offset.Elevation,
			Radius:        state.Offset.Radius,
			OrbitStep:     11.25,
			BoundaryLimit: bounds.BoundaryLimit,
			MinElevation:  bounds.MinElevation,
			MaxElevation:  bounds.MaxElevation,
			MinRadius:     bounds.MinRadius,
		},
		Renderer: RendererConfig{
			MSAA:       4,
			VSync:      true,
			ClearColor: [4]float64{0, 0, 0, 1},
		},
		Assets: AssetsConfig{
			PlaneTiling: 100.0,
			MeshWorkers: 4,
		},
	}
}

// Load reads a TOML file over the defaults. Keys missing from the file keep their default;
// unknown keys are an error.
//
// Parameters:
//   - path: the file to read
//
// Returns:
//   - Config: the merged configuration, not yet validated
//   - error: if the file cannot be read or decoded
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := Decode(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Decode decodes TOML into cfg, leaving fields the document does not mention untouched.
//
// Parameters:
//   - data: the TOML document
//   - cfg: the configuration to decode into
//
// Returns:
//   - error: a decode error, with line and column when go-toml reports them
func Decode(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return fmt.Errorf("line %d column %d: %w", row, col, err)
		}
		var serr *toml.StrictMissingError
		if errors.As(err, &serr) {
			return fmt.Errorf("unknown keys:\n%s", serr.String())
		}
		return err
	}
	return nil
}

// Encode writes cfg as a TOML document.
//
// Returns:
//   - []byte: the document
//   - error: if marshalling fails
func (c Config) Encode() ([]byte, error) {
	return toml.Marshal(c)
}

// Validate checks every setting and returns all problems joined.
//
// Returns:
//   - error: nil if the configuration is usable
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("config: "+format, args...))
		}
	}

	check(c.Window.Width > 0 && c.Window.Height > 0, "window size %dx%d must be positive", c.Window.Width, c.Window.Height)

	cam := c.Camera
	check(cam.Fov > 0 && cam.Fov < 180, "camera.fov %v must be in (0, 180)", cam.Fov)
	check(cam.Near > 0 && cam.Near < cam.Far, "camera depth range [%v, %v] needs 0 < near < far", cam.Near, cam.Far)
	check(cam.MinElevation <= cam.MaxElevation, "camera elevation bounds [%v, %v] are inverted", cam.MinElevation, cam.MaxElevation)
	check(cam.MinElevation > -90 && cam.MaxElevation < 0, "camera elevation bounds [%v, %v] must lie in (-90, 0)", cam.MinElevation, cam.MaxElevation)
	check(cam.MinRadius > 0, "camera.min_radius %v must be positive", cam.MinRadius)
	check(cam.BoundaryLimit > 0, "camera.boundary_limit %v must be positive", cam.BoundaryLimit)
	check(cam.OrbitStep > 0, "camera.orbit_step %v must be positive", cam.OrbitStep)

	_, ok := renderer.ParseMSAA(c.Renderer.MSAA)
	check(ok, "renderer.msaa %d must be 1 or 4", c.Renderer.MSAA)
	for i, v := range c.Renderer.ClearColor {
		check(v >= 0 && v <= 1, "renderer.clear_color[%d] %v must be in [0, 1]", i, v)
	}

	check(c.Assets.PlaneTiling > 0, "assets.plane_tiling %v must be positive", c.Assets.PlaneTiling)
	check(c.Assets.MeshWorkers > 0, "assets.mesh_workers %d must be positive", c.Assets.MeshWorkers)
	if c.Assets.MeshDir != "" {
		info, err := os.Stat(c.Assets.MeshDir)
		check(err == nil && info.IsDir(), "assets.mesh_dir %q is not a directory", c.Assets.MeshDir)
	}

	return errors.Join(errs...)
}

// CameraState returns the starting camera state.
func (c Config) CameraState() camera.CameraState {
	return camera.CameraState{
		Target: mgl32.Vec3(c.Camera.Target),
		Offset: camera.SphericalOffset{
			Azimuth:   c.Camera.Azimuth,
			Elevation: c.Camera.Elevation,
			Radius:    c.Camera.Radius,
		},
	}
}

// Bounds returns the camera limits.
func (c Config) Bounds() camera.Bounds {
	b := camera.DefaultBounds()
	b.BoundaryLimit = c.Camera.BoundaryLimit
	b.MinElevation = c.Camera.MinElevation
	b.MaxElevation = c.Camera.MaxElevation
	b.MinRadius = c.Camera.MinRadius
	return b
}

// PresentMode maps the vsync setting.
func (c Config) PresentMode() renderer.PresentMode {
	if c.Renderer.VSync {
		return renderer.PresentModeVSync
	}
	return renderer.PresentModeUncapped
}

// MSAA returns the sample count. Call Validate first; an invalid count falls back to MSAA4x.
func (c Config) MSAA() renderer.MSAASampleCount {
	if m, ok := renderer.ParseMSAA(c.Renderer.MSAA); ok {
		return m
	}
	return renderer.MSAA4x
}
