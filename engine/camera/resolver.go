package camera

import (
	"github.com/Carmen-Shannon/world-in-motion/common"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// SphericalOffset places the camera relative to its target.
// Angles are in degrees. Elevation 0 is the horizon and negative elevation puts the camera above the target.
type SphericalOffset struct {
	Azimuth   float32
	Elevation float32
	Radius    float32
}

// ResolveCameraPosition converts a spherical offset around target into a world-space camera position.
// The polar angle is measured from +Y and equals Elevation + 90.
//
// Parameters:
//   - target: the point the camera orbits
//   - offset: the spherical offset from target
//
// Returns:
//   - mgl32.Vec3: the camera position, always exactly offset.Radius away from target
func ResolveCameraPosition(target mgl32.Vec3, offset SphericalOffset) mgl32.Vec3 {
	phi := common.DegToRad(offset.Azimuth)
	theta := common.DegToRad(offset.Elevation + 90.0)

	sinTheta, cosTheta := math32.Sincos(theta)
	sinPhi, cosPhi := math32.Sincos(phi)

	dir := mgl32.Vec3{sinTheta * cosPhi, cosTheta, sinTheta * sinPhi}
	return target.Add(dir.Mul(offset.Radius))
}

// LookAt builds a right-handed view matrix that places eye at the origin looking down -Z toward target.
// up must not be parallel to the view direction; that case is not guarded.
//
// Parameters:
//   - eye: the camera position
//   - target: the point to look at
//   - up: the approximate world up direction
//
// Returns:
//   - mgl32.Mat4: the view matrix
func LookAt(eye, target, up mgl32.Vec3) mgl32.Mat4 {
	forward := target.Sub(eye).Normalize()
	right := forward.Cross(up.Normalize()).Normalize()
	perpUp := right.Cross(forward)

	// rows are right, perpUp and -forward
	rot := mgl32.Ident4()
	rot.SetRow(0, right.Vec4(0))
	rot.SetRow(1, perpUp.Vec4(0))
	rot.SetRow(2, forward.Mul(-1).Vec4(0))

	return rot.Mul4(mgl32.Translate3D(-eye[0], -eye[1], -eye[2]))
}

// MovementDirection returns the planar step the target moves by for a forward key press.
// Elevation does not affect it.
//
// Parameters:
//   - azimuth: the camera azimuth in degrees
//
// Returns:
//   - mgl32.Vec3: the step vector, length 4 in the XZ plane
func MovementDirection(azimuth float32) mgl32.Vec3 {
	sin, cos := math32.Sincos(common.DegToRad(azimuth))
	return mgl32.Vec3{-4.0 * cos, 0, -4.0 * sin}
}
