package scene

import (
	"github.com/Carmen-Shannon/world-in-motion/engine/camera"
	"github.com/Carmen-Shannon/world-in-motion/engine/mesh"
	"github.com/Carmen-Shannon/world-in-motion/engine/transform"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Pipeline keys of the shading programs.
const (
	PipelineTexture          = "texture"
	PipelineObjectColor      = "object_color"
	PipelineUniformColorTint = "uniform_color_tint"
	PipelineLookAtMarker     = "look_at_marker"
)

// Building dimensions, in world units.
const (
	buildingWidth        = 14.0
	buildingLength       = 20.0
	buildingColumnHeight = 5.0
	buildingBaseHeight   = 1.0
	buildingTopHeight    = 2.0

	columnBaseHeight = 0.25
)

var (
	colorWhite  = mgl32.Vec4{1, 1, 1, 1}
	colorTrunk  = mgl32.Vec4{0.694, 0.4, 0.106, 1}
	colorLeaves = mgl32.Vec4{0, 1, 0, 1}
	colorStone  = mgl32.Vec4{0.9, 0.9, 0.9, 0.9}
)

// Sink receives every object the composer produces.
type Sink interface {
	// Draw records one object.
	//
	// Parameters:
	//   - meshName: the unit mesh to draw
	//   - pipelineKey: the shading program
	//   - model: the world-from-model matrix
	//   - color: the base colour of the object
	//
	// Returns:
	//   - error: the failure aborts composition and is returned unchanged
	Draw(meshName, pipelineKey string, model mgl32.Mat4, color mgl32.Vec4) error
}

type composer struct {
	sink   Sink
	forest []PlacementEntry

	groundScale    float32
	buildingOrigin mgl32.Vec3
}

// Composer walks the fixed layout of the world and hands every object to a Sink.
// Each placement is one scoped Push on the matrix stack, so the stack depth is the same
// before and after every Draw method, whether or not it fails.
type Composer interface {
	// Compose draws the whole world in order: ground, forest, building, character and, when
	// drawLookAt is set, the look-at marker.
	//
	// Parameters:
	//   - ms: the model matrix stack
	//   - state: the camera state the character follows
	//   - drawLookAt: whether to draw the look-at marker
	//
	// Returns:
	//   - error: the first Sink failure
	Compose(ms *transform.MatrixStack, state camera.CameraState, drawLookAt bool) error

	// DrawGround draws the textured ground plane.
	DrawGround(ms *transform.MatrixStack) error

	// DrawForest draws one tree per placement entry, in table order.
	//
	// Parameters:
	//   - ms: the model matrix stack
	//   - forest: the placement table
	//
	// Returns:
	//   - error: the first Sink failure
	DrawForest(ms *transform.MatrixStack, forest []PlacementEntry) error

	// DrawTree draws a trunk cylinder of height trunk topped by a cone of height cone at the current origin.
	//
	// Parameters:
	//   - ms: the model matrix stack
	//   - trunk: trunk height
	//   - cone: treetop height
	//
	// Returns:
	//   - error: the first Sink failure
	DrawTree(ms *transform.MatrixStack, trunk, cone float32) error

	// DrawColumn draws a column of the given height at the current origin: base, capital and shaft.
	DrawColumn(ms *transform.MatrixStack, height float32) error

	// DrawBuilding draws the colonnaded building at its origin.
	DrawBuilding(ms *transform.MatrixStack) error

	// DrawCharacter draws the figure standing at target, its shoulders square to the view direction.
	//
	// Parameters:
	//   - ms: the model matrix stack
	//   - target: where the figure stands
	//   - azimuth: the camera azimuth in degrees
	//
	// Returns:
	//   - error: the first Sink failure
	DrawCharacter(ms *transform.MatrixStack, target mgl32.Vec3, azimuth float32) error

	// DrawLookAtMarker draws a small colour cube at target, visible through other geometry.
	DrawLookAtMarker(ms *transform.MatrixStack, target mgl32.Vec3) error
}

var _ Composer = &composer{}

// NewComposer creates a Composer drawing into sink.
//
// Parameters:
//   - sink: the receiver of every drawn object
//   - options: functional options to configure the composer
//
// Returns:
//   - Composer: the new composer
func NewComposer(sink Sink, options ...ComposerOption) Composer {
	c := &composer{
		sink:           sink,
		forest:         Forest,
		groundScale:    200.0,
		buildingOrigin: mgl32.Vec3{20, 0, -10},
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

func (c *composer) Compose(ms *transform.MatrixStack, state camera.CameraState, drawLookAt bool) error {
	if err := c.DrawGround(ms); err != nil {
		return err
	}
	if err := c.DrawForest(ms, c.forest); err != nil {
		return err
	}
	if err := c.DrawBuilding(ms); err != nil {
		return err
	}
	if err := c.DrawCharacter(ms, state.Target, state.Offset.Azimuth); err != nil {
		return err
	}
	if drawLookAt {
		return c.DrawLookAtMarker(ms, state.Target)
	}
	return nil
}

func (c *composer) DrawGround(ms *transform.MatrixStack) error {
	defer ms.Push().Pop()
	ms.Scale(mgl32.Vec3{c.groundScale, 1, c.groundScale})
	return c.sink.Draw(mesh.UnitPlane, PipelineTexture, ms.Top(), colorWhite)
}

func (c *composer) DrawForest(ms *transform.MatrixStack, forest []PlacementEntry) error {
	for _, tree := range forest {
		if err := c.drawPlacedTree(ms, tree); err != nil {
			return err
		}
	}
	return nil
}

func (c *composer) drawPlacedTree(ms *transform.MatrixStack, tree PlacementEntry) error {
	defer ms.Push().Pop()
	ms.Translate(mgl32.Vec3{tree.X, 0, tree.Z})
	return c.DrawTree(ms, tree.TrunkHeight, tree.ConeHeight)
}

func (c *composer) DrawTree(ms *transform.MatrixStack, trunk, cone float32) error {
	err := c.scoped(ms, func() error {
		ms.Scale(mgl32.Vec3{1, trunk, 1})
		ms.Translate(mgl32.Vec3{0, 0.5, 0})
		return c.sink.Draw(mesh.UnitCylinderTint, PipelineUniformColorTint, ms.Top(), colorTrunk)
	})
	if err != nil {
		return err
	}
	return c.scoped(ms, func() error {
		ms.Translate(mgl32.Vec3{0, trunk, 0})
		ms.Scale(mgl32.Vec3{3, cone, 3})
		return c.sink.Draw(mesh.UnitConeTint, PipelineUniformColorTint, ms.Top(), colorLeaves)
	})
}

func (c *composer) DrawColumn(ms *transform.MatrixStack, height float32) error {
	steps := []func() error{
		func() error {
			ms.Scale(mgl32.Vec3{1, columnBaseHeight, 1})
			ms.Translate(mgl32.Vec3{0, 0.5, 0})
			return c.sink.Draw(mesh.UnitCubeTint, PipelineUniformColorTint, ms.Top(), colorWhite)
		},
		func() error {
			ms.Translate(mgl32.Vec3{0, height - columnBaseHeight, 0})
			ms.Scale(mgl32.Vec3{1, columnBaseHeight, 1})
			ms.Translate(mgl32.Vec3{0, 0.5, 0})
			return c.sink.Draw(mesh.UnitCubeTint, PipelineUniformColorTint, ms.Top(), colorStone)
		},
		func() error {
			ms.Translate(mgl32.Vec3{0, columnBaseHeight, 0})
			ms.Scale(mgl32.Vec3{0.8, height - 2*columnBaseHeight, 0.8})
			ms.Translate(mgl32.Vec3{0, 0.5, 0})
			return c.sink.Draw(mesh.UnitCylinderTint, PipelineUniformColorTint, ms.Top(), colorStone)
		},
	}
	return c.scopedAll(ms, steps)
}

func (c *composer) DrawBuilding(ms *transform.MatrixStack) error {
	defer ms.Push().Pop()
	ms.Translate(c.buildingOrigin)

	slabs := []func() error{
		func() error {
			ms.Scale(mgl32.Vec3{buildingWidth, buildingBaseHeight, buildingLength})
			ms.Translate(mgl32.Vec3{0, 0.5, 0})
			return c.sink.Draw(mesh.UnitCubeTint, PipelineUniformColorTint, ms.Top(), colorStone)
		},
		func() error {
			ms.Translate(mgl32.Vec3{0, buildingColumnHeight + buildingBaseHeight, 0})
			ms.Scale(mgl32.Vec3{buildingWidth, buildingTopHeight, buildingLength})
			ms.Translate(mgl32.Vec3{0, 0.5, 0})
			return c.sink.Draw(mesh.UnitCubeTint, PipelineUniformColorTint, ms.Top(), colorStone)
		},
	}
	if err := c.scopedAll(ms, slabs); err != nil {
		return err
	}

	for _, pos := range columnPositions() {
		err := c.scoped(ms, func() error {
			ms.Translate(pos)
			return c.DrawColumn(ms, buildingColumnHeight)
		})
		if err != nil {
			return err
		}
	}

	interior := []func() error{
		func() error {
			ms.Translate(mgl32.Vec3{0, 1, 0})
			ms.Scale(mgl32.Vec3{buildingWidth - 6, buildingColumnHeight, buildingLength - 6})
			ms.Translate(mgl32.Vec3{0, 0.5, 0})
			return c.sink.Draw(mesh.UnitCubeColor, PipelineObjectColor, ms.Top(), colorWhite)
		},
		func() error {
			ms.Translate(mgl32.Vec3{0, buildingColumnHeight + buildingBaseHeight + buildingTopHeight/2, buildingLength / 2})
			ms.RotateX(-135)
			ms.RotateY(45)
			return c.sink.Draw(mesh.UnitCubeColor, PipelineObjectColor, ms.Top(), colorWhite)
		},
	}
	return c.scopedAll(ms, interior)
}

// columnPositions returns the base of every column, front and back rows first, then both sides.
func columnPositions() []mgl32.Vec3 {
	var out []mgl32.Vec3
	for i := range int(buildingWidth / 2) {
		x := 2*float32(i) - buildingWidth/2 + 1
		out = append(out,
			mgl32.Vec3{x, buildingBaseHeight, buildingLength/2 - 1},
			mgl32.Vec3{x, buildingBaseHeight, -buildingLength/2 + 1},
		)
	}
	for i := 1; i < int((buildingLength-2)/2); i++ {
		z := 2*float32(i) - buildingLength/2 + 1
		out = append(out,
			mgl32.Vec3{buildingWidth/2 - 1, buildingBaseHeight, z},
			mgl32.Vec3{-buildingWidth/2 + 1, buildingBaseHeight, z},
		)
	}
	return out
}

func (c *composer) DrawCharacter(ms *transform.MatrixStack, target mgl32.Vec3, azimuth float32) error {
	a := mgl32.DegToRad(azimuth + 90)
	cos, sin := math32.Cos(a), math32.Sin(a)

	parts := []struct {
		meshName string
		offset   mgl32.Vec3
		scale    mgl32.Vec3
	}{
		{mesh.UnitCylinderTint, mgl32.Vec3{cos / 2, 0, sin / 2}, mgl32.Vec3{1, 2, 1}},
		{mesh.UnitCylinderTint, mgl32.Vec3{cos, 2, sin}, mgl32.Vec3{1, 1.5, 1}},
		{mesh.UnitCylinderTint, mgl32.Vec3{-cos, 2, -sin}, mgl32.Vec3{1, 1.5, 1}},
		{mesh.UnitCylinderTint, mgl32.Vec3{-cos / 2, 0, -sin / 2}, mgl32.Vec3{1, 2, 1}},
		{mesh.UnitCylinderTint, mgl32.Vec3{0, 2, 0}, mgl32.Vec3{2, 2, 2}},
		{mesh.UnitSphere, mgl32.Vec3{0, 4, 0}, mgl32.Vec3{2, 2, 2}},
	}
	for _, p := range parts {
		err := c.scoped(ms, func() error {
			ms.Translate(target.Add(p.offset))
			ms.Scale(p.scale)
			return c.sink.Draw(p.meshName, PipelineUniformColorTint, ms.Top(), colorTrunk)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (c *composer) DrawLookAtMarker(ms *transform.MatrixStack, target mgl32.Vec3) error {
	defer ms.Push().Pop()
	ms.Translate(target)
	return c.sink.Draw(mesh.UnitCubeColor, PipelineLookAtMarker, ms.Top(), colorWhite)
}

// scoped runs fn between a push and its pop.
func (c *composer) scoped(ms *transform.MatrixStack, fn func() error) error {
	defer ms.Push().Pop()
	return fn()
}

// scopedAll runs each step in its own scope and stops at the first failure.
func (c *composer) scopedAll(ms *transform.MatrixStack, steps []func() error) error {
	for _, step := range steps {
		if err := c.scoped(ms, step); err != nil {
			return err
		}
	}
	return nil
}
