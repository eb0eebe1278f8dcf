package scene

import (
	_ "embed"
	"fmt"

	"github.com/Carmen-Shannon/world-in-motion/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/world-in-motion/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
)

var (
	//go:embed assets/world_transform.wgsl
	worldTransformSource string

	//go:embed assets/texture.wgsl
	textureSource string

	//go:embed assets/color_passthrough.wgsl
	colorPassthroughSource string

	//go:embed assets/color_mult_uniform.wgsl
	colorMultUniformSource string
)

// Programs builds the four shading programs. They share one vertex stage, which places a
// unit mesh with the object record at instance_index.
//
// Returns:
//   - []pipeline.Pipeline: texture, object colour, uniform colour tint and look-at marker
//   - error: if an embedded source fails to parse
func Programs() ([]pipeline.Pipeline, error) {
	vs, err := shader.NewShader("world_transform", shader.ShaderTypeVertex, worldTransformSource)
	if err != nil {
		return nil, err
	}

	fragments := map[string]string{
		"texture":            textureSource,
		"color_passthrough":  colorPassthroughSource,
		"color_mult_uniform": colorMultUniformSource,
	}
	fs := make(map[string]shader.Shader, len(fragments))
	for key, src := range fragments {
		s, err := shader.NewShader(key, shader.ShaderTypeFragment, src)
		if err != nil {
			return nil, err
		}
		fs[key] = s
	}

	solid := func(key, fragment string, extra ...pipeline.PipelineBuilderOption) pipeline.Pipeline {
		opts := append([]pipeline.PipelineBuilderOption{
			pipeline.WithVertexShader(vs),
			pipeline.WithFragmentShader(fs[fragment]),
			pipeline.WithCullMode(wgpu.CullModeBack),
			pipeline.WithFrontFace(wgpu.FrontFaceCCW),
			pipeline.WithDepthCompare(wgpu.CompareFunctionLessEqual),
		}, extra...)
		return pipeline.NewPipeline(key, opts...)
	}

	return []pipeline.Pipeline{
		solid(PipelineTexture, "texture"),
		solid(PipelineObjectColor, "color_passthrough"),
		solid(PipelineUniformColorTint, "color_mult_uniform"),
		solid(PipelineLookAtMarker, "color_passthrough",
			pipeline.WithDepthTestEnabled(false),
			pipeline.WithDepthWriteEnabled(false),
		),
	}, nil
}

// MustPrograms is Programs for callers that treat a broken embedded source as fatal.
func MustPrograms() []pipeline.Pipeline {
	p, err := Programs()
	if err != nil {
		panic(fmt.Sprintf("scene: %v", err))
	}
	return p
}
