// annotations.go defines the annotation types, argument constants and parser for the
// WGSL pre-processor. Annotations are single-line WGSL comments prefixed with @wim:
// that inject shared struct definitions, generate bind group declarations and name the
// resource provider behind a hand-written binding. The parsed results are stored as
// Annotation values and consumed by the PreProcessor and the scene when it wires
// bind groups to pipelines.
package shader

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// annotationPrefix is the marker that identifies an annotation within a WGSL comment line.
const annotationPrefix = "@wim:"

// AnnotationType identifies the kind of annotation parsed from a WGSL comment line.
type AnnotationType string

const (
	// annotationTypeInclude injects the WGSL source of a registered struct definition
	// at the annotation site. It produces no declaration.
	//
	// Syntax: //@wim:include <struct_type>
	//
	// Example: //@wim:include globals
	annotationTypeInclude AnnotationType = "include"

	// AnnotationTypeBindingGroup generates a WGSL @group/@binding variable declaration
	// and records the annotation as a declaration carrying the group, binding and struct type.
	//
	// Syntax: //@wim:group <group> <binding> <address_space> <var_name> <type>
	//
	// Example: //@wim:group 1 0 storage_read objects array<object>
	AnnotationTypeBindingGroup AnnotationType = "group"

	// AnnotationTypeProvider names the provider behind a hand-written binding (textures,
	// samplers) without generating WGSL. An optional role qualifies the binding inside
	// a multi-binding provider group.
	//
	// Syntax:
	//   //@wim:provider <group> <binding> <provider_identity>
	//   //@wim:provider <group> <binding> <provider_identity> <binding_role>
	//
	// Example: //@wim:provider 2 0 material diffuse_texture
	AnnotationTypeProvider AnnotationType = "provider"
)

// Annotation is a single parsed @wim: annotation.
type Annotation struct {
	// Type identifies which annotation was parsed.
	Type AnnotationType

	// Args holds the annotation's arguments. The contents depend on Type:
	//   - include:  [0] = struct type key
	//   - group:    [0] = address space, [1] = var name, [2] = type key, optionally array<...>
	//   - provider: [0] = provider identity, [1] = binding role (optional)
	Args []AnnotationArg

	// Line is the 1-based source line of the annotation.
	Line int

	// Group is the @group index. Nil for include annotations.
	Group *int

	// Binding is the @binding index. Nil for include annotations.
	Binding *int
}

// Identity returns the provider a declaration belongs to.
// Group annotations are identified by their struct type with any array<> wrapper removed,
// provider annotations by their provider identity. Include annotations have no identity.
//
// Returns:
//   - AnnotationArg: the identity, empty for include annotations
func (a Annotation) Identity() AnnotationArg {
	switch a.Type {
	case AnnotationTypeBindingGroup:
		return AnnotationArg(elementType(string(a.Args[2])))
	case AnnotationTypeProvider:
		return a.Args[0]
	}
	return ""
}

// Role returns the binding role of a provider annotation, or "" if none was given.
func (a Annotation) Role() AnnotationArg {
	if a.Type == AnnotationTypeProvider && len(a.Args) > 1 {
		return a.Args[1]
	}
	return ""
}

// AnnotationArg is a typed string used as an annotation argument.
type AnnotationArg string

// Struct type arguments, usable with include and group.
const (
	// AnnotationArgGlobals identifies the GlobalMatrices block shared by every program.
	// Source: engine/camera/assets/global_matrices.wgsl
	AnnotationArgGlobals AnnotationArg = "globals"

	// AnnotationArgObject identifies the per-draw ObjectData record.
	// Source: engine/mesh/assets/object_data.wgsl
	AnnotationArgObject AnnotationArg = "object"

	// annotationArgVertex identifies the VertexInput struct of the unit meshes.
	// Source: engine/mesh/assets/vertex.wgsl
	annotationArgVertex AnnotationArg = "vertex"

	// annotationArgVaryings identifies the VertexOutput struct passed from the vertex to the fragment stage.
	// Source: engine/renderer/shader/assets/varyings.wgsl
	annotationArgVaryings AnnotationArg = "varyings"
)

// Address space arguments, usable with group.
const (
	// annotationArgStorageTypeUniform maps to var<uniform> in WGSL.
	annotationArgStorageTypeUniform AnnotationArg = "storage_uniform"

	// annotationArgStorageTypeRead maps to var<storage, read> in WGSL.
	annotationArgStorageTypeRead AnnotationArg = "storage_read"
)

// Provider identity arguments, usable with provider.
const (
	// AnnotationArgMaterial identifies the material provider (ground texture and sampler).
	AnnotationArgMaterial AnnotationArg = "material"
)

// Binding role arguments qualifying a material binding.
const (
	// AnnotationArgDiffuseTexture identifies the base-color texture binding.
	AnnotationArgDiffuseTexture AnnotationArg = "diffuse_texture"

	// AnnotationArgDiffuseSampler identifies the sampler paired with the diffuse texture.
	AnnotationArgDiffuseSampler AnnotationArg = "diffuse_sampler"
)

var validStructTypes = []AnnotationArg{
	AnnotationArgGlobals,
	AnnotationArgObject,
	annotationArgVertex,
	annotationArgVaryings,
}

var validAddressSpaces = []AnnotationArg{
	annotationArgStorageTypeUniform,
	annotationArgStorageTypeRead,
}

var validProviderIdentities = []AnnotationArg{
	AnnotationArgMaterial,
}

var validBindingRoles = []AnnotationArg{
	AnnotationArgDiffuseTexture,
	AnnotationArgDiffuseSampler,
}

// elementType strips an array<> wrapper from a type key.
func elementType(typeArg string) string {
	if inner, ok := strings.CutPrefix(typeArg, "array<"); ok {
		return strings.TrimSuffix(inner, ">")
	}
	return typeArg
}

// parseAnnotation parses one WGSL source line as an @wim: annotation.
// Lines without the prefix return nil and no error.
//
// Parameters:
//   - line: the raw WGSL source line
//   - lineNum: the 1-based line number for error reporting
//
// Returns:
//   - *Annotation: the parsed annotation, or nil if the line is not an annotation
//   - error: a descriptive error if the annotation is malformed
func parseAnnotation(line string, lineNum int) (*Annotation, error) {
	trimmed := strings.TrimSpace(line)
	_, after, ok := strings.Cut(trimmed, annotationPrefix)
	if !ok {
		return nil, nil
	}

	args := strings.Fields(after)
	if len(args) == 0 {
		return nil, fmt.Errorf("line %d: empty @wim annotation", lineNum)
	}

	switch args[0] {
	case string(annotationTypeInclude):
		if len(args) != 2 {
			return nil, fmt.Errorf("line %d: @wim include annotation requires exactly one argument", lineNum)
		}
		if !slices.Contains(validStructTypes, AnnotationArg(args[1])) {
			return nil, fmt.Errorf("line %d: unknown struct type %q in @wim include annotation", lineNum, args[1])
		}
		return &Annotation{
			Type: annotationTypeInclude,
			Args: []AnnotationArg{AnnotationArg(args[1])},
			Line: lineNum,
		}, nil
	case string(AnnotationTypeBindingGroup):
		if len(args) != 6 {
			return nil, fmt.Errorf("line %d: @wim group annotation requires five arguments (group, binding, address space, var name, type)", lineNum)
		}
		group, binding, err := parseIndices(args[1], args[2], lineNum)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(validAddressSpaces, AnnotationArg(args[3])) {
			return nil, fmt.Errorf("line %d: unknown address space %q in @wim group annotation", lineNum, args[3])
		}
		if !slices.Contains(validStructTypes, AnnotationArg(elementType(args[5]))) {
			return nil, fmt.Errorf("line %d: unknown struct type %q in @wim group annotation", lineNum, args[5])
		}
		return &Annotation{
			Type:    AnnotationTypeBindingGroup,
			Args:    []AnnotationArg{AnnotationArg(args[3]), AnnotationArg(args[4]), AnnotationArg(args[5])},
			Line:    lineNum,
			Group:   &group,
			Binding: &binding,
		}, nil
	case string(AnnotationTypeProvider):
		if len(args) < 4 || len(args) > 5 {
			return nil, fmt.Errorf("line %d: @wim provider annotation requires three or four arguments (group, binding, provider identity[, binding role])", lineNum)
		}
		group, binding, err := parseIndices(args[1], args[2], lineNum)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(validProviderIdentities, AnnotationArg(args[3])) {
			return nil, fmt.Errorf("line %d: unknown provider identity %q in @wim provider annotation", lineNum, args[3])
		}
		providerArgs := []AnnotationArg{AnnotationArg(args[3])}
		if len(args) == 5 {
			if !slices.Contains(validBindingRoles, AnnotationArg(args[4])) {
				return nil, fmt.Errorf("line %d: unknown binding role %q in @wim provider annotation", lineNum, args[4])
			}
			providerArgs = append(providerArgs, AnnotationArg(args[4]))
		}
		return &Annotation{
			Type:    AnnotationTypeProvider,
			Args:    providerArgs,
			Line:    lineNum,
			Group:   &group,
			Binding: &binding,
		}, nil
	default:
		return nil, fmt.Errorf("line %d: unknown @wim annotation type %q", lineNum, args[0])
	}
}

func parseIndices(groupArg, bindingArg string, lineNum int) (int, int, error) {
	group, err := strconv.Atoi(groupArg)
	if err != nil {
		return 0, 0, fmt.Errorf("line %d: invalid group number %q: %w", lineNum, groupArg, err)
	}
	binding, err := strconv.Atoi(bindingArg)
	if err != nil {
		return 0, 0, fmt.Errorf("line %d: invalid binding number %q: %w", lineNum, bindingArg, err)
	}
	return group, binding, nil
}
