package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestResolveCameraPosition_DistanceEqualsRadius(t *testing.T) {
	target := mgl32.Vec3{20, 0.4, 35}
	for _, az := range []float32{0, 45, 90, 180, 270, -33.75, 720} {
		for _, el := range []float32{-78.75, -45, -12, -1} {
			for _, r := range []float32{5, 35, 120} {
				pos := ResolveCameraPosition(target, SphericalOffset{Azimuth: az, Elevation: el, Radius: r})
				assert.InDelta(t, r, pos.Sub(target).Len(), 1e-3, "az=%v el=%v r=%v", az, el, r)
			}
		}
	}
}

func TestResolveCameraPosition_Axes(t *testing.T) {
	tests := []struct {
		name   string
		offset SphericalOffset
		want   mgl32.Vec3
	}{
		{"horizon at azimuth 0 is +x", SphericalOffset{0, 0, 10}, mgl32.Vec3{10, 0, 0}},
		{"horizon at azimuth 90 is +z", SphericalOffset{90, 0, 10}, mgl32.Vec3{0, 0, 10}},
		{"elevation -90 is straight up", SphericalOffset{0, -90, 10}, mgl32.Vec3{0, 10, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveCameraPosition(mgl32.Vec3{}, tt.offset)
			assert.InDeltaSlice(t, tt.want[:], got[:], 1e-4)
		})
	}
}

func TestResolveCameraPosition_NegativeElevationIsAboveTarget(t *testing.T) {
	target := mgl32.Vec3{1, 2, 3}
	pos := ResolveCameraPosition(target, SphericalOffset{Azimuth: 90, Elevation: -12, Radius: 35})
	assert.Greater(t, pos.Y(), target.Y())
}

func TestLookAt_MapsEyeAndTarget(t *testing.T) {
	eye := mgl32.Vec3{3, 7, -2}
	target := mgl32.Vec3{20, 0.4, 35}
	view := LookAt(eye, target, mgl32.Vec3{0, 1, 0})

	e := view.Mul4x1(eye.Vec4(1))
	origin := mgl32.Vec4{0, 0, 0, 1}
	assert.InDeltaSlice(t, origin[:], e[:], 1e-4)

	dist := target.Sub(eye).Len()
	tv := view.Mul4x1(target.Vec4(1))
	ahead := mgl32.Vec4{0, 0, -dist, 1}
	assert.InDeltaSlice(t, ahead[:], tv[:], 1e-3)
}

func TestLookAt_MatchesConventionalLookAt(t *testing.T) {
	eye := mgl32.Vec3{-10, 15, 4}
	target := mgl32.Vec3{2, 0, -8}
	up := mgl32.Vec3{0, 3, 0}

	got := LookAt(eye, target, up)
	want := mgl32.LookAtV(eye, target, up)
	assert.InDeltaSlice(t, want[:], got[:], 1e-5)
}

func TestMovementDirection(t *testing.T) {
	tests := []struct {
		azimuth float32
		want    mgl32.Vec3
	}{
		{0, mgl32.Vec3{-4, 0, 0}},
		{90, mgl32.Vec3{0, 0, -4}},
		{180, mgl32.Vec3{4, 0, 0}},
		{270, mgl32.Vec3{0, 0, 4}},
	}
	for _, tt := range tests {
		got := MovementDirection(tt.azimuth)
		assert.InDeltaSlice(t, tt.want[:], got[:], 1e-5, "azimuth %v", tt.azimuth)
		assert.InDelta(t, 4.0, got.Len(), 1e-5)
	}
}

func TestMovementDirection_PointsTowardTarget(t *testing.T) {
	target := mgl32.Vec3{}
	offset := SphericalOffset{Azimuth: 33, Elevation: -30, Radius: 20}
	pos := ResolveCameraPosition(target, offset)

	toTarget := target.Sub(pos)
	toTarget[1] = 0
	assert.Greater(t, MovementDirection(offset.Azimuth).Dot(toTarget), float32(0))
}
