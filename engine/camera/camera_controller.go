package camera

import (
	"github.com/Carmen-Shannon/world-in-motion/common"
	"github.com/go-gl/mathgl/mgl32"
)

// CameraController is the input handler of the orbit camera.
// It owns the CameraState, turns key events into state mutations and reapplies the Bounds after every event.
// The camera reads the resolved position and target from the controller once per frame.
type CameraController interface {
	// State returns a copy of the current camera state.
	//
	// Returns:
	//   - CameraState: the current state
	State() CameraState

	// SetState replaces the current camera state. The bounds are applied immediately.
	//
	// Parameters:
	//   - state: the new state
	SetState(state CameraState)

	// Target returns the look-at point.
	//
	// Returns:
	//   - mgl32.Vec3: world-space target position
	Target() mgl32.Vec3

	// Offset returns the spherical offset of the camera from its target.
	//
	// Returns:
	//   - SphericalOffset: azimuth, elevation and radius
	Offset() SphericalOffset

	// Position returns the camera's world-space position resolved from target and offset.
	//
	// Returns:
	//   - mgl32.Vec3: world-space camera position
	Position() mgl32.Vec3

	// Bounds returns the limits applied after every input event.
	//
	// Returns:
	//   - Bounds: the configured bounds
	Bounds() Bounds

	// DrawLookAt reports whether the look-at debug marker is enabled.
	//
	// Returns:
	//   - bool: true while the debug flag is set
	DrawLookAt() bool

	// MoveForward moves the target along MovementDirection scaled by scale, if the boundary allows it.
	// Negative scale moves backwards. The bounds are reapplied afterwards.
	//
	// Parameters:
	//   - scale: multiplier for the movement step
	//
	// Returns:
	//   - bool: true if the target moved
	MoveForward(scale float32) bool

	// Orbit adds the given deltas to azimuth and elevation and reapplies the bounds.
	//
	// Parameters:
	//   - azimuth: degrees added to the azimuth
	//   - elevation: degrees added to the elevation
	Orbit(azimuth, elevation float32)

	// HandleKey applies one key press to the camera state.
	// Letter keys use their coarse step without Shift and their fine step with it.
	// The bounds are reapplied after every call, whether or not the key is bound.
	//
	// Parameters:
	//   - keyCode: the GLFW key code of the pressed key
	//   - mods: modifier keys held during the press
	HandleKey(keyCode uint32, mods common.KeyModifier)
}
