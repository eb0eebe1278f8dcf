package camera

import (
	"github.com/Carmen-Shannon/world-in-motion/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Bounds holds the limits reapplied to a CameraState after every input event.
type Bounds struct {
	// BoundaryLimit is the half-width of the square the target may move freely in, on both X and Z.
	BoundaryLimit float32
	// MinElevation and MaxElevation bound the spherical elevation in degrees.
	MinElevation, MaxElevation float32
	// MinRadius is the closest the camera may get to its target.
	MinRadius float32
	// MinTargetY keeps the target above the ground.
	MinTargetY float32
}

// DefaultBounds returns the limits the demo ships with.
//
// Returns:
//   - Bounds: boundary 96, elevation [-78.75, -1], radius >= 5, target.y >= 0
func DefaultBounds() Bounds {
	return Bounds{
		BoundaryLimit: 96.0,
		MinElevation:  -78.75,
		MaxElevation:  -1.0,
		MinRadius:     5.0,
		MinTargetY:    0.0,
	}
}

// CameraState is the orbit camera's complete mutable state: the point it looks at and where it sits relative to that point.
type CameraState struct {
	Target mgl32.Vec3
	Offset SphericalOffset
}

// DefaultCameraState returns the starting camera of the demo.
//
// Returns:
//   - CameraState: target (20, 0.4, 35), azimuth 90, elevation -12, radius 35
func DefaultCameraState() CameraState {
	return CameraState{
		Target: mgl32.Vec3{20.0, 0.4, 35.0},
		Offset: SphericalOffset{Azimuth: 90.0, Elevation: -12.0, Radius: 35.0},
	}
}

// Position resolves the world-space camera position for this state.
func (s CameraState) Position() mgl32.Vec3 {
	return ResolveCameraPosition(s.Target, s.Offset)
}

// CanMove reports whether the target may move by delta.
// Inside the boundary square any movement is allowed. Outside it, movement is allowed only when
// delta does not point further out on any axis that is already past the limit.
//
// Parameters:
//   - delta: the prospective movement, sign included
//   - limit: the boundary half-width
//
// Returns:
//   - bool: true if the movement is allowed
func (s CameraState) CanMove(delta mgl32.Vec3, limit float32) bool {
	t := s.Target
	if t.X() > limit && delta.X() > 0 {
		return false
	}
	if t.X() < -limit && delta.X() < 0 {
		return false
	}
	if t.Z() > limit && delta.Z() > 0 {
		return false
	}
	if t.Z() < -limit && delta.Z() < 0 {
		return false
	}
	return true
}

// Move translates the target by delta if CanMove allows it.
//
// Parameters:
//   - delta: the movement vector
//   - limit: the boundary half-width
//
// Returns:
//   - bool: true if the target moved
func (s *CameraState) Move(delta mgl32.Vec3, limit float32) bool {
	if !s.CanMove(delta, limit) {
		return false
	}
	s.Target = s.Target.Add(delta)
	return true
}

// Clamp forces the state back inside b. The X/Z boundary is soft and is not clamped here.
func (s *CameraState) Clamp(b Bounds) {
	s.Offset.Elevation = common.Clamp(s.Offset.Elevation, b.MinElevation, b.MaxElevation)
	s.Target[1] = max(s.Target[1], b.MinTargetY)
	s.Offset.Radius = max(s.Offset.Radius, b.MinRadius)
}
