package camera

import "github.com/go-gl/mathgl/mgl32"

// CameraControllerOption is a functional option for configuring a CameraController.
type CameraControllerOption func(*cameraControllerImpl)

// WithState sets the initial camera state.
//
// Parameters:
//   - state: target and spherical offset
//
// Returns:
//   - CameraControllerOption: functional option to set the state
func WithState(state CameraState) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.state = state
	}
}

// WithTarget sets the initial look-at point.
//
// Parameters:
//   - target: world-space target position
//
// Returns:
//   - CameraControllerOption: functional option to set the target
func WithTarget(target mgl32.Vec3) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.state.Target = target
	}
}

// WithOffset sets the initial spherical offset.
//
// Parameters:
//   - offset: azimuth and elevation in degrees plus radius
//
// Returns:
//   - CameraControllerOption: functional option to set the offset
func WithOffset(offset SphericalOffset) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.state.Offset = offset
	}
}

// WithBounds replaces all bounds at once.
//
// Parameters:
//   - bounds: the limits applied after every input event
//
// Returns:
//   - CameraControllerOption: functional option to set the bounds
func WithBounds(bounds Bounds) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.bounds = bounds
	}
}

// WithOrbitStep sets the coarse orbit step in degrees. The fine step is a tenth of it.
//
// Parameters:
//   - degrees: the coarse azimuth/elevation step
//
// Returns:
//   - CameraControllerOption: functional option to set the orbit step
func WithOrbitStep(degrees float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.orbitStep = degrees
	}
}

// WithDrawLookAt sets the initial state of the look-at debug flag.
//
// Parameters:
//   - enabled: whether the look-at marker starts visible
//
// Returns:
//   - CameraControllerOption: functional option to set the debug flag
func WithDrawLookAt(enabled bool) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.drawLookAt = enabled
	}
}

// WithToggleDebugCallback registers a function called after the debug flag flips.
//
// Parameters:
//   - cb: receives the new value of the flag
//
// Returns:
//   - CameraControllerOption: functional option to set the callback
func WithToggleDebugCallback(cb func(enabled bool)) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.onToggleDebug = cb
	}
}

// WithTerminateCallback registers a function called when Esc is pressed.
//
// Parameters:
//   - cb: the terminate handler
//
// Returns:
//   - CameraControllerOption: functional option to set the callback
func WithTerminateCallback(cb func()) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.onTerminate = cb
	}
}
