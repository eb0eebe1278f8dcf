package scene

import (
	"errors"

	"github.com/Carmen-Shannon/world-in-motion/engine/mesh"
	"github.com/go-gl/mathgl/mgl32"
)

// ErrDrawListFull is returned by Draw once the list holds as many objects as the object buffer.
var ErrDrawListFull = errors.New("scene: draw list full")

// DrawCommand is one recorded draw. Its index in the list is the object record the vertex stage reads.
type DrawCommand struct {
	Mesh        string
	PipelineKey string
	Object      mesh.GPUObjectData
}

type drawList struct {
	capacity int
	commands []DrawCommand
}

// DrawList collects one frame of draws in order. It is the Sink the scene composes into.
type DrawList interface {
	Sink

	// Reset empties the list, keeping its storage.
	Reset()

	// Len returns the number of recorded draws.
	Len() int

	// Capacity returns the maximum number of draws.
	Capacity() int

	// Commands returns the recorded draws in order. The slice is reused after Reset.
	//
	// Returns:
	//   - []DrawCommand: the recorded draws
	Commands() []DrawCommand

	// ObjectData packs the object record of every draw for the object storage buffer.
	//
	// Returns:
	//   - []byte: 80 bytes per draw, nil when empty
	ObjectData() []byte
}

var _ DrawList = &drawList{}

// NewDrawList creates an empty DrawList holding up to capacity draws.
//
// Parameters:
//   - capacity: maximum number of draws per frame
//
// Returns:
//   - DrawList: the new list
func NewDrawList(capacity int) DrawList {
	return &drawList{
		capacity: capacity,
		commands: make([]DrawCommand, 0, capacity),
	}
}

func (d *drawList) Draw(meshName, pipelineKey string, model mgl32.Mat4, color mgl32.Vec4) error {
	if len(d.commands) >= d.capacity {
		return ErrDrawListFull
	}
	d.commands = append(d.commands, DrawCommand{
		Mesh:        meshName,
		PipelineKey: pipelineKey,
		Object:      mesh.GPUObjectData{Model: model, Color: color},
	})
	return nil
}

func (d *drawList) Reset() {
	d.commands = d.commands[:0]
}

func (d *drawList) Len() int {
	return len(d.commands)
}

func (d *drawList) Capacity() int {
	return d.capacity
}

func (d *drawList) Commands() []DrawCommand {
	return d.commands
}

func (d *drawList) ObjectData() []byte {
	if len(d.commands) == 0 {
		return nil
	}
	objects := make([]mesh.GPUObjectData, len(d.commands))
	for i, cmd := range d.commands {
		objects[i] = cmd.Object
	}
	return mesh.MarshalObjects(objects)
}
