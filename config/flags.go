package config

import (
	"flag"
	"fmt"
)

// Flags holds the command-line options. Settings given on the command line override the file.
type Flags struct {
	ConfigPath    string
	ExportTexture string

	fs  *flag.FlagSet
	cfg Config
}

// NewFlags registers every option on a new FlagSet named after the program.
//
// Parameters:
//   - name: the program name used in usage output
//
// Returns:
//   - *Flags: the registered options, defaults from Default
func NewFlags(name string) *Flags {
	f := &Flags{
		fs:  flag.NewFlagSet(name, flag.ContinueOnError),
		cfg: Default(),
	}
	fs, c := f.fs, &f.cfg

	fs.StringVar(&f.ConfigPath, "config", "", "TOML configuration file")
	fs.StringVar(&f.ExportTexture, "export-texture", "", "write the ground texture to this .webp file and exit")

	fs.StringVar(&c.Window.Title, "title", c.Window.Title, "window title")
	fs.IntVar(&c.Window.Width, "width", c.Window.Width, "window width in pixels")
	fs.IntVar(&c.Window.Height, "height", c.Window.Height, "window height in pixels")

	fs.IntVar(&c.Renderer.MSAA, "msaa", c.Renderer.MSAA, "multisample count, 1 or 4")
	fs.BoolVar(&c.Renderer.VSync, "vsync", c.Renderer.VSync, "wait for vertical blank")
	fs.BoolVar(&c.Renderer.SoftwareAdapter, "software", c.Renderer.SoftwareAdapter, "force the fallback (software) adapter")

	fs.StringVar(&c.Assets.GroundTexture, "ground-texture", c.Assets.GroundTexture, "ground texture image, empty for the checker")
	fs.StringVar(&c.Assets.MeshDir, "mesh-dir", c.Assets.MeshDir, "directory of glTF mesh overrides")
	fs.IntVar(&c.Assets.MeshWorkers, "mesh-workers", c.Assets.MeshWorkers, "workers preparing meshes at startup")

	fs.BoolVar(&c.Debug.Profiler, "profile", c.Debug.Profiler, "log frame and memory statistics every second")
	fs.BoolVar(&c.Debug.DrawLookAt, "look-at", c.Debug.DrawLookAt, "start with the look-at marker shown")
	return f
}

// Parse parses args, loads the -config file if one is named and applies the flags that were set
// on top of it.
//
// Parameters:
//   - args: the arguments without the program name
//
// Returns:
//   - Config: the resulting configuration, not yet validated
//   - error: a flag or file error
func (f *Flags) Parse(args []string) (Config, error) {
	if err := f.fs.Parse(args); err != nil {
		return Config{}, err
	}
	if f.fs.NArg() > 0 {
		return Config{}, fmt.Errorf("config: unexpected arguments %v", f.fs.Args())
	}
	if f.ConfigPath == "" {
		return f.cfg, nil
	}

	cfg, err := Load(f.ConfigPath)
	if err != nil {
		return Config{}, err
	}

	// only flags given explicitly beat the file
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "title":
			cfg.Window.Title = f.cfg.Window.Title
		case "width":
			cfg.Window.Width = f.cfg.Window.Width
		case "height":
			cfg.Window.Height = f.cfg.Window.Height
		case "msaa":
			cfg.Renderer.MSAA = f.cfg.Renderer.MSAA
		case "vsync":
			cfg.Renderer.VSync = f.cfg.Renderer.VSync
		case "software":
			cfg.Renderer.SoftwareAdapter = f.cfg.Renderer.SoftwareAdapter
		case "ground-texture":
			cfg.Assets.GroundTexture = f.cfg.Assets.GroundTexture
		case "mesh-dir":
			cfg.Assets.MeshDir = f.cfg.Assets.MeshDir
		case "mesh-workers":
			cfg.Assets.MeshWorkers = f.cfg.Assets.MeshWorkers
		case "profile":
			cfg.Debug.Profiler = f.cfg.Debug.Profiler
		case "look-at":
			cfg.Debug.DrawLookAt = f.cfg.Debug.DrawLookAt
		}
	})
	return cfg, nil
}
