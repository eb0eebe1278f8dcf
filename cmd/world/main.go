// Command world opens the World in Motion demo: an orbit camera around a small character
// walking through a forest past a colonnaded building.
//
// Keys: w/s move, a/d orbit, q/e tilt (shift for fine steps), space toggles the look-at
// marker and the profiler, Esc quits.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/Carmen-Shannon/world-in-motion/config"
	"github.com/Carmen-Shannon/world-in-motion/engine"
	"github.com/Carmen-Shannon/world-in-motion/engine/camera"
	"github.com/Carmen-Shannon/world-in-motion/engine/mesh"
	"github.com/Carmen-Shannon/world-in-motion/engine/renderer"
	"github.com/Carmen-Shannon/world-in-motion/engine/scene"
	"github.com/Carmen-Shannon/world-in-motion/engine/texture"
	"github.com/Carmen-Shannon/world-in-motion/engine/window"
)

func main() {
	flags := config.NewFlags("world")
	cfg, err := flags.Parse(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("[World] %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[World] %v", err)
	}

	if flags.ExportTexture != "" {
		if err := exportTexture(cfg.Assets.GroundTexture, flags.ExportTexture); err != nil {
			log.Fatalf("[World] %v", err)
		}
		log.Printf("[World] wrote %s", flags.ExportTexture)
		return
	}

	if err := run(cfg); err != nil {
		log.Fatalf("[World] %v", err)
	}
}

// exportTexture writes the ground texture, level 0, as WebP.
func exportTexture(src, dst string) error {
	if !strings.HasSuffix(strings.ToLower(dst), ".webp") {
		return fmt.Errorf("export %s: only .webp output is supported", dst)
	}
	img, err := texture.Load(src)
	if err != nil {
		return err
	}
	return texture.ExportFile(dst, img)
}

func run(cfg config.Config) error {
	// meshes and the ground texture are prepared before any window exists
	lib := mesh.NewLibrary(
		mesh.WithOverrideDir(cfg.Assets.MeshDir),
		mesh.WithWorkers(cfg.Assets.MeshWorkers),
		mesh.WithGenerateOptions(mesh.WithPlaneTiling(cfg.Assets.PlaneTiling)),
	)
	if err := lib.Build(mesh.Descriptors...); err != nil {
		return fmt.Errorf("prepare meshes: %w", err)
	}
	ground, err := texture.Prepare(cfg.Assets.GroundTexture)
	if err != nil {
		return fmt.Errorf("prepare ground texture: %w", err)
	}

	var eng engine.Engine
	win := window.NewWindow(
		window.WithTitle(cfg.Window.Title),
		window.WithSize(cfg.Window.Width, cfg.Window.Height),
	)

	r := renderer.NewRenderer(
		renderer.BackendTypeWGPU,
		win,
		renderer.WithPresentMode(cfg.PresentMode()),
		renderer.WithMSAA(cfg.MSAA()),
		renderer.WithForceSoftwareRenderer(cfg.Renderer.SoftwareAdapter),
		renderer.WithClearColor(cfg.Renderer.ClearColor),
	)

	cam := camera.NewCamera(
		camera.WithFov(cfg.Camera.Fov),
		camera.WithAspect(float32(win.Width())/float32(win.Height())),
		camera.WithDepthRange(cfg.Camera.Near, cfg.Camera.Far),
		camera.WithController(camera.NewCameraController(
			camera.WithState(cfg.CameraState()),
			camera.WithBounds(cfg.Bounds()),
			camera.WithOrbitStep(cfg.Camera.OrbitStep),
			camera.WithDrawLookAt(cfg.Debug.DrawLookAt),
			camera.WithToggleDebugCallback(func(enabled bool) {
				eng.SetDebug(enabled)
			}),
			camera.WithTerminateCallback(func() {
				eng.Terminate()
			}),
		)),
	)

	sc, err := scene.NewScene("world", cam, r, lib, ground)
	if err != nil {
		r.Release()
		_ = win.Close()
		return err
	}

	eng = engine.NewEngine(
		engine.WithWindow(win),
		engine.WithScene(sc),
		engine.WithProfiling(cfg.Debug.Profiler || cfg.Debug.DrawLookAt),
	)

	log.Printf("[World] %d meshes, %d trees, %dx%d", len(lib.Meshes()), len(scene.Forest), win.Width(), win.Height())
	return eng.Run()
}
