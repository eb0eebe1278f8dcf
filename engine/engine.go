package engine

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Carmen-Shannon/world-in-motion/common"
	"github.com/Carmen-Shannon/world-in-motion/engine/camera"
	"github.com/Carmen-Shannon/world-in-motion/engine/profiler"
	"github.com/Carmen-Shannon/world-in-motion/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/world-in-motion/engine/scene"
	"github.com/Carmen-Shannon/world-in-motion/engine/window"
)

// ErrNoScene is returned by Run and Frame when the engine has no scene.
var ErrNoScene = errors.New("engine: no scene")

// engine implements the Engine interface.
// Frames, input and resizes are all dispatched from the window's message loop.
type engine struct {
	window window.Window
	scene  scene.Scene

	profiler         *profiler.Profiler
	profilingEnabled bool

	frameCallback func(deltaTime float32)
	lastFrame     time.Time

	terminated   bool
	terminateOne sync.Once
	frameErr     error
}

// Engine is the frame driver. Once per frame it recomputes the camera, uploads the view matrix
// to the shared globals block, composes the world and presents it. The projection is uploaded
// at start and on every resize.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Scene returns the scene the engine draws.
	Scene() scene.Scene

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// ProfilerEnabled reports whether profiling output is on.
	ProfilerEnabled() bool

	// SetDebug follows the debug toggle: the profiler is on exactly while the look-at marker is drawn.
	//
	// Parameters:
	//   - enabled: the new state of the debug flag
	SetDebug(enabled bool)

	// SetFrameCallback registers a function called after each presented frame.
	//
	// Parameters:
	//   - callback: receives the time since the previous frame in seconds
	SetFrameCallback(callback func(deltaTime float32))

	// Frame draws one frame. Does nothing after Terminate.
	//
	// Returns:
	//   - error: if composing or drawing failed
	Frame() error

	// Resize reconfigures the surface and re-uploads the projection. Zero sizes are ignored.
	//
	// Parameters:
	//   - width: the new framebuffer width in pixels
	//   - height: the new framebuffer height in pixels
	Resize(width, height int)

	// HandleKey forwards a key press to the camera controller.
	//
	// Parameters:
	//   - keyCode: the platform key code
	//   - mods: the modifier keys held
	HandleKey(keyCode uint32, mods common.KeyModifier)

	// Run uploads the projection and blocks in the window's message loop until the window
	// closes, then releases the scene, the renderer and the window.
	//
	// Returns:
	//   - error: the frame failure that stopped the loop, nil on a normal close
	Run() error

	// Terminate releases every mesh and asks the window to close. Safe to call more than once
	// and from inside an input callback.
	Terminate()
}

var _ Engine = &engine{}

// NewEngine creates a new Engine and wires the window's update, resize and key callbacks to it.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		profiler:         profiler.NewProfiler(),
		profilingEnabled: false,
	}

	for _, opt := range options {
		opt(e)
	}

	if e.window != nil {
		e.window.SetUpdateCallback(e.update)
		e.window.SetResizeCallback(e.Resize)
		e.window.SetKeyDownCallback(e.HandleKey)
	}

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Scene() scene.Scene {
	return e.scene
}

func (e *engine) EnableProfiler() {
	if !e.profilingEnabled {
		e.profiler.Reset()
	}
	e.profilingEnabled = true
}

func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) ProfilerEnabled() bool {
	return e.profilingEnabled
}

func (e *engine) SetDebug(enabled bool) {
	if enabled {
		e.EnableProfiler()
	} else {
		e.DisableProfiler()
	}
}

func (e *engine) SetFrameCallback(callback func(deltaTime float32)) {
	e.frameCallback = callback
}

func (e *engine) Run() error {
	if e.window == nil {
		return errors.New("engine: no window")
	}
	if e.scene == nil {
		return ErrNoScene
	}

	e.uploadGlobals()
	e.lastFrame = time.Now()
	e.window.ProcessMessages()

	e.Terminate()
	e.scene.Release()
	if r := e.scene.Renderer(); r != nil {
		r.Release()
	}
	if err := e.window.Close(); err != nil {
		log.Printf("[Engine] close window: %v", err)
	}
	return e.frameErr
}

// update is the window's per-iteration callback. A failed frame is logged and stops the loop.
func (e *engine) update() {
	if err := e.Frame(); err != nil {
		log.Printf("[Engine] frame: %v", err)
		e.frameErr = err
		e.Terminate()
	}
}

func (e *engine) Frame() error {
	if e.terminated {
		return nil
	}
	if e.scene == nil {
		return ErrNoScene
	}

	now := time.Now()
	dt := float32(now.Sub(e.lastFrame).Seconds())
	e.lastFrame = now

	cam := e.scene.Camera()
	r := e.scene.Renderer()
	ctrl := cam.Controller()
	if ctrl == nil {
		return fmt.Errorf("engine: scene %q camera has no controller", e.scene.Name())
	}

	cam.Update()
	globals := cam.Globals()
	r.WriteBuffers([]bind_group_provider.BufferWrite{{
		Provider: cam.BindGroupProvider(),
		Binding:  0,
		Offset:   camera.ViewOffset,
		Data:     globals.MarshalView(),
	}})

	if err := e.scene.Prepare(ctrl.State(), ctrl.DrawLookAt()); err != nil {
		return err
	}
	if err := r.BeginFrame(); err != nil {
		return err
	}
	err := e.scene.DrawCalls()
	r.EndFrame()
	if err != nil {
		return err
	}
	r.Present()

	if e.frameCallback != nil {
		e.frameCallback(dt)
	}
	if e.profilingEnabled && e.profiler != nil {
		e.profiler.Tick(e.scene.DrawList().Len())
	}
	return nil
}

func (e *engine) Resize(width, height int) {
	if width <= 0 || height <= 0 || e.scene == nil || e.terminated {
		return
	}
	if r := e.scene.Renderer(); r != nil {
		r.Resize(width, height)
	}
	e.scene.Camera().SetAspect(float32(width) / float32(height))
	e.uploadGlobals()
}

// uploadGlobals writes the whole globals block, projection included.
func (e *engine) uploadGlobals() {
	cam := e.scene.Camera()
	cam.Update()
	globals := cam.Globals()
	e.scene.Renderer().WriteBuffers([]bind_group_provider.BufferWrite{{
		Provider: cam.BindGroupProvider(),
		Binding:  0,
		Data:     globals.Marshal(),
	}})
}

func (e *engine) HandleKey(keyCode uint32, mods common.KeyModifier) {
	if e.scene == nil || e.terminated {
		return
	}
	if ctrl := e.scene.Camera().Controller(); ctrl != nil {
		ctrl.HandleKey(keyCode, mods)
	}
}

func (e *engine) Terminate() {
	e.terminateOne.Do(func() {
		e.terminated = true
		if e.scene != nil {
			e.scene.ReleaseMeshes()
		}
		if e.window != nil {
			e.window.RequestClose()
		}
	})
}
