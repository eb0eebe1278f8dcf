package shader

import (
	"strconv"
	"strings"

	"github.com/cogentcore/webgpu/wgpu"
)

type vertexFormatInfo struct {
	format wgpu.VertexFormat
	size   uint64
}

// wgslTypeLayout is the size and alignment of a host-shareable WGSL type.
type wgslTypeLayout struct {
	size  uint64
	align uint64
}

type parsedField struct {
	name      string
	typeName  string
	location  int
	isBuiltin bool
}

type parsedStruct struct {
	name   string
	fields []parsedField
}

// scalarLayouts holds the size and alignment of the scalar element types.
var scalarLayouts = map[string]wgslTypeLayout{
	"f32":  {4, 4},
	"i32":  {4, 4},
	"u32":  {4, 4},
	"f16":  {2, 2},
	"bool": {4, 4},
}

// roundUpAlign rounds value up to a multiple of alignment, which must be a power of two.
func roundUpAlign(alignment, value uint64) uint64 {
	if alignment == 0 {
		return value
	}
	return (value + alignment - 1) &^ (alignment - 1)
}

// vectorLayout returns the layout of vecN<T>: vec3 is aligned like vec4.
func vectorLayout(n uint64, scalar wgslTypeLayout) wgslTypeLayout {
	alignN := n
	if n == 3 {
		alignN = 4
	}
	return wgslTypeLayout{size: n * scalar.size, align: alignN * scalar.align}
}

// resolveTypeLayout resolves scalars, vectors, matrices, atomics, known structs and arrays.
// Runtime-sized arrays resolve to their element stride.
//
// Parameters:
//   - typeName: the WGSL type, e.g. "mat4x4<f32>", "ObjectData", "array<ObjectData>"
//   - known: layouts of structs resolved so far
//
// Returns:
//   - wgslTypeLayout: the resolved layout
//   - bool: false for unknown types
func resolveTypeLayout(typeName string, known map[string]wgslTypeLayout) (wgslTypeLayout, bool) {
	typeName = canonicalType(typeName)
	if l, ok := scalarLayouts[typeName]; ok {
		return l, true
	}
	if l, ok := known[typeName]; ok {
		return l, true
	}

	base, param := splitTypeParams(typeName)
	switch {
	case base == "atomic":
		return scalarLayouts[param], param == "i32" || param == "u32"
	case len(base) == 4 && strings.HasPrefix(base, "vec"):
		n, err := strconv.ParseUint(base[3:], 10, 64)
		scalar, ok := scalarLayouts[param]
		if err != nil || !ok {
			return wgslTypeLayout{}, false
		}
		return vectorLayout(n, scalar), true
	case len(base) == 6 && strings.HasPrefix(base, "mat"):
		cols, errC := strconv.ParseUint(base[3:4], 10, 64)
		rows, errR := strconv.ParseUint(base[5:6], 10, 64)
		scalar, ok := scalarLayouts[param]
		if errC != nil || errR != nil || !ok {
			return wgslTypeLayout{}, false
		}
		column := vectorLayout(rows, scalar)
		stride := roundUpAlign(column.align, column.size)
		return wgslTypeLayout{size: cols * stride, align: column.align}, true
	case base == "array":
		elemName, countStr, fixed := strings.Cut(param, ",")
		elem, ok := resolveTypeLayout(elemName, known)
		if !ok {
			return wgslTypeLayout{}, false
		}
		stride := roundUpAlign(elem.align, elem.size)
		if !fixed {
			return wgslTypeLayout{size: stride, align: elem.align}, true
		}
		count, err := strconv.ParseUint(strings.TrimSpace(countStr), 10, 64)
		if err != nil {
			return wgslTypeLayout{}, false
		}
		return wgslTypeLayout{size: count * stride, align: elem.align}, true
	}
	return wgslTypeLayout{}, false
}

// structLayout lays out the non-builtin fields of a struct in order. The size is rounded up
// to the largest field alignment.
func structLayout(ps parsedStruct, known map[string]wgslTypeLayout) (wgslTypeLayout, bool) {
	var offset uint64
	maxAlign := uint64(1)
	for _, f := range ps.fields {
		if f.isBuiltin {
			continue
		}
		l, ok := resolveTypeLayout(f.typeName, known)
		if !ok {
			return wgslTypeLayout{}, false
		}
		offset = roundUpAlign(l.align, offset) + l.size
		maxAlign = max(maxAlign, l.align)
	}
	return wgslTypeLayout{size: roundUpAlign(maxAlign, offset), align: maxAlign}, true
}

// computeStructSizes resolves struct layouts until no further struct can be resolved,
// so structs may reference structs declared after them.
func computeStructSizes(structs []parsedStruct) map[string]wgslTypeLayout {
	resolved := make(map[string]wgslTypeLayout, len(structs))
	remaining := structs
	for len(remaining) > 0 {
		var next []parsedStruct
		for _, ps := range remaining {
			if l, ok := structLayout(ps, resolved); ok {
				resolved[ps.name] = l
			} else {
				next = append(next, ps)
			}
		}
		if len(next) == len(remaining) {
			break
		}
		remaining = next
	}
	return resolved
}

// isVertexInput reports whether the struct has @location fields and no @builtin field.
func (ps parsedStruct) isVertexInput() bool {
	hasLocation := false
	for _, f := range ps.fields {
		if f.isBuiltin {
			return false
		}
		hasLocation = hasLocation || f.location >= 0
	}
	return hasLocation
}

// vertexBufferLayout packs the fields tightly in declaration order.
func (ps parsedStruct) vertexBufferLayout() (wgpu.VertexBufferLayout, bool) {
	attrs := make([]wgpu.VertexAttribute, 0, len(ps.fields))
	var offset uint64
	for _, f := range ps.fields {
		info, ok := vertexFormats[f.typeName]
		if !ok {
			return wgpu.VertexBufferLayout{}, false
		}
		attrs = append(attrs, wgpu.VertexAttribute{
			Format:         info.format,
			Offset:         offset,
			ShaderLocation: uint32(f.location),
		})
		offset += info.size
	}
	return wgpu.VertexBufferLayout{
		ArrayStride: offset,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes:  attrs,
	}, true
}
