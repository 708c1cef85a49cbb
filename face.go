package prism

import "fmt"

// Face is a triangle of a mesh: three vertex indices plus optional per-face and per-vertex normals, colors and tangents.
// The per-vertex slices are either empty or hold exactly one entry per vertex (3).
type Face struct {
	A, B, C int

	Normal        Vector
	VertexNormals []Vector

	Color        *Color
	VertexColors []*Color

	VertexTangents []Vector

	MaterialIndex int
}

// FaceOption configures a Face as it's created by NewFace.
type FaceOption func(*Face)

// WithNormal sets the Face's normal.
func WithNormal(normal Vector) FaceOption {
	return func(f *Face) {
		f.Normal = normal
	}
}

// WithVertexNormals sets the Face's per-vertex normals.
func WithVertexNormals(normals ...Vector) FaceOption {
	return func(f *Face) {
		f.VertexNormals = append([]Vector(nil), normals...)
	}
}

// WithColor sets the Face's color. The Color is used as-is, not copied.
func WithColor(color *Color) FaceOption {
	return func(f *Face) {
		f.Color = color
	}
}

// WithVertexColors sets the Face's per-vertex colors. The Colors are used as-is, not copied.
func WithVertexColors(colors ...*Color) FaceOption {
	return func(f *Face) {
		f.VertexColors = append([]*Color(nil), colors...)
	}
}

// WithVertexTangents sets the Face's per-vertex tangents.
func WithVertexTangents(tangents ...Vector) FaceOption {
	return func(f *Face) {
		f.VertexTangents = append([]Vector(nil), tangents...)
	}
}

// WithMaterialIndex sets the index of the Material the Face is drawn with.
func WithMaterialIndex(index int) FaceOption {
	return func(f *Face) {
		f.MaterialIndex = index
	}
}

// NewFace creates a new Face from the vertex indices a, b and c. Without options, the normal is zero,
// the color is white, and the per-vertex slices are empty.
func NewFace(a, b, c int, options ...FaceOption) *Face {
	face := &Face{
		A:              a,
		B:              b,
		C:              c,
		Color:          NewColor(1, 1, 1, 1),
		VertexNormals:  []Vector{},
		VertexColors:   []*Color{},
		VertexTangents: []Vector{},
	}
	for _, opt := range options {
		opt(face)
	}
	return face
}

// Validate returns an error wrapping ErrInvalidFace if any per-vertex slice holds something other than 0 or 3 entries,
// or if a vertex color is nil.
func (face *Face) Validate() error {
	check := func(name string, n int) error {
		if n != 0 && n != 3 {
			return fmt.Errorf("%w: %s has %d entries, not 0 or 3", ErrInvalidFace, name, n)
		}
		return nil
	}
	if err := check("vertex normals", len(face.VertexNormals)); err != nil {
		return err
	}
	if err := check("vertex colors", len(face.VertexColors)); err != nil {
		return err
	}
	if err := check("vertex tangents", len(face.VertexTangents)); err != nil {
		return err
	}
	for i, c := range face.VertexColors {
		if c == nil {
			return fmt.Errorf("%w: vertex color %d is nil", ErrInvalidFace, i)
		}
	}
	return nil
}

// Indices returns the Face's three vertex indices.
func (face *Face) Indices() [3]int {
	return [3]int{face.A, face.B, face.C}
}

// Clone returns a deep copy of the Face; no Color or slice is shared with the original.
func (face *Face) Clone() *Face {
	newFace := NewFace(face.A, face.B, face.C)
	newFace.Normal = face.Normal
	if face.Color != nil {
		newFace.Color.Copy(face.Color)
	} else {
		newFace.Color = nil
	}
	newFace.MaterialIndex = face.MaterialIndex

	newFace.VertexNormals = append(newFace.VertexNormals, face.VertexNormals...)
	for _, c := range face.VertexColors {
		newFace.VertexColors = append(newFace.VertexColors, c.Clone())
	}
	newFace.VertexTangents = append(newFace.VertexTangents, face.VertexTangents...)

	return newFace
}
