package scene

import (
	"testing"

	"github.com/Carmen-Shannon/world-in-motion/engine/camera"
	"github.com/Carmen-Shannon/world-in-motion/engine/mesh"
	"github.com/Carmen-Shannon/world-in-motion/engine/transform"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawList_Full(t *testing.T) {
	dl := NewDrawList(2)
	require.NoError(t, dl.Draw(mesh.UnitCubeTint, PipelineObjectColor, mgl32.Ident4(), colorWhite))
	require.NoError(t, dl.Draw(mesh.UnitSphere, PipelineUniformColorTint, mgl32.Ident4(), colorTrunk))
	assert.ErrorIs(t, dl.Draw(mesh.UnitPlane, PipelineTexture, mgl32.Ident4(), colorWhite), ErrDrawListFull)
	assert.Equal(t, 2, dl.Len())
	assert.Equal(t, 2, dl.Capacity())

	dl.Reset()
	assert.Zero(t, dl.Len())
	assert.Nil(t, dl.ObjectData())
}

func TestDrawList_ObjectData(t *testing.T) {
	dl := NewDrawList(4)
	require.NoError(t, dl.Draw(mesh.UnitCubeTint, PipelineObjectColor, mgl32.Translate3D(1, 2, 3), colorWhite))
	require.NoError(t, dl.Draw(mesh.UnitSphere, PipelineUniformColorTint, mgl32.Ident4(), colorTrunk))

	data := dl.ObjectData()
	assert.Len(t, data, 2*objectSize)

	cmds := dl.Commands()
	require.Len(t, cmds, 2)
	assert.Equal(t, mesh.UnitCubeTint, cmds[0].Mesh)
	assert.Equal(t, colorTrunk, cmds[1].Object.Color)
}

func TestDrawList_TooSmallForWorld(t *testing.T) {
	dl := NewDrawList(100)
	c := NewComposer(dl)
	ms := transform.NewMatrixStack()
	err := c.Compose(ms, camera.DefaultCameraState(), false)
	assert.ErrorIs(t, err, ErrDrawListFull)
	assert.Equal(t, 100, dl.Len())
	assert.Zero(t, ms.Depth())
}
