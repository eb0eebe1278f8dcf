package camera

import (
	"log"
	"sync"

	"github.com/Carmen-Shannon/world-in-motion/common"
	"github.com/go-gl/mathgl/mgl32"
)

// cameraControllerImpl is the single implementation of CameraController.
type cameraControllerImpl struct {
	mu *sync.Mutex

	state  CameraState
	bounds Bounds

	// coarse orbit step in degrees, fine is orbitStep/10
	orbitStep float32

	drawLookAt bool

	onToggleDebug func(enabled bool)
	onTerminate   func()
}

// Compile-time interface compliance check
var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a new camera controller starting from DefaultCameraState and DefaultBounds.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		mu:        &sync.Mutex{},
		state:     DefaultCameraState(),
		bounds:    DefaultBounds(),
		orbitStep: 11.25,
	}

	for _, option := range options {
		option(cc)
	}

	cc.state.Clamp(cc.bounds)
	return cc
}

func (cc *cameraControllerImpl) State() CameraState {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.state
}

func (cc *cameraControllerImpl) SetState(state CameraState) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.state = state
	cc.state.Clamp(cc.bounds)
}

func (cc *cameraControllerImpl) Target() mgl32.Vec3 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.state.Target
}

func (cc *cameraControllerImpl) Offset() SphericalOffset {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.state.Offset
}

func (cc *cameraControllerImpl) Position() mgl32.Vec3 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.state.Position()
}

func (cc *cameraControllerImpl) Bounds() Bounds {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.bounds
}

func (cc *cameraControllerImpl) DrawLookAt() bool {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.drawLookAt
}

func (cc *cameraControllerImpl) MoveForward(scale float32) bool {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	moved := cc.moveForward(scale)
	cc.state.Clamp(cc.bounds)
	return moved
}

func (cc *cameraControllerImpl) Orbit(azimuth, elevation float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.state.Offset.Azimuth += azimuth
	cc.state.Offset.Elevation += elevation
	cc.state.Clamp(cc.bounds)
}

func (cc *cameraControllerImpl) HandleKey(keyCode uint32, mods common.KeyModifier) {
	cc.mu.Lock()

	step := cc.orbitStep
	move := float32(1.0)
	if mods.Has(common.ModShift) {
		step /= 10.0
		move = 0.25
	}

	var toggled, terminate bool
	switch keyCode {
	case common.KeyW:
		cc.moveForward(move)
	case common.KeyS:
		cc.moveForward(-move)
	case common.KeyD:
		cc.state.Offset.Azimuth += step
	case common.KeyA:
		cc.state.Offset.Azimuth -= step
	case common.KeyE:
		cc.state.Offset.Elevation -= step
	case common.KeyQ:
		cc.state.Offset.Elevation += step
	case common.KeySpace:
		cc.drawLookAt = !cc.drawLookAt
		toggled = true
		t, o := cc.state.Target, cc.state.Offset
		log.Printf("[Input] Target: %f, %f, %f", t[0], t[1], t[2])
		log.Printf("[Input] Position: %f, %f, %f", o.Azimuth, o.Elevation, o.Radius)
	case common.KeyEsc:
		terminate = true
	}
	cc.state.Clamp(cc.bounds)

	enabled := cc.drawLookAt
	onToggle, onTerminate := cc.onToggleDebug, cc.onTerminate
	cc.mu.Unlock()

	// callbacks run unlocked so they may read the controller back
	if toggled && onToggle != nil {
		onToggle(enabled)
	}
	if terminate && onTerminate != nil {
		onTerminate()
	}
}

// moveForward applies a boundary-gated step along the movement direction.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) moveForward(scale float32) bool {
	delta := MovementDirection(cc.state.Offset.Azimuth).Mul(scale)
	return cc.state.Move(delta, cc.bounds.BoundaryLimit)
}
