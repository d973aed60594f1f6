package euler

import (
	"math"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
	"golang.org/x/exp/slices"
)

// A Mesh is an indexed triangle mesh.
//
// The points of a Mesh are unique under exact coordinate equality, and every
// point is referenced by at least one face. The order of indices in a face
// determines the orientation of the triangle.
//
// A Mesh is never modified after it is created. Transformations produce new
// meshes which share no storage with the original.
type Mesh struct {
	points []model3d.Coord3D
	faces  [][3]int
}

// NewMesh creates a mesh from a list of points and a list of faces indexing
// into the points.
//
// Duplicate points are merged, and points which no face references are
// dropped. The resulting points are ordered by first use.
func NewMesh(points []model3d.Coord3D, faces [][]int) (*Mesh, error) {
	for i, p := range points {
		if !finiteCoord(p) {
			return nil, errors.Wrapf(ErrInvalidMesh, "point %d is not finite: %v", i, p)
		}
	}
	b := newMeshBuilder()
	for i, f := range faces {
		if len(f) != 3 {
			return nil, errors.Wrapf(ErrInvalidMesh, "face %d has %d vertices", i, len(f))
		}
		var t model3d.Triangle
		for j, idx := range f {
			if idx < 0 || idx >= len(points) {
				return nil, errors.Wrapf(ErrInvalidMesh,
					"face %d: index %d out of range [0, %d)", i, idx, len(points))
			}
			t[j] = points[idx]
		}
		b.Add(&t)
	}
	return b.Mesh(), nil
}

// NewMeshTriangles creates a mesh from a flat list of triangles, merging
// vertices which are exactly equal.
func NewMeshTriangles(tris []*model3d.Triangle) (*Mesh, error) {
	b := newMeshBuilder()
	for i, t := range tris {
		for _, c := range t {
			if !finiteCoord(c) {
				return nil, errors.Wrapf(ErrInvalidMesh, "triangle %d is not finite: %v", i, *t)
			}
		}
		b.Add(t)
	}
	return b.Mesh(), nil
}

// FromModel3D converts a model3d mesh into an indexed mesh.
//
// The face order of the result follows m.TriangleSlice(), which is not
// guaranteed to be stable across calls.
func FromModel3D(m *model3d.Mesh) (*Mesh, error) {
	return NewMeshTriangles(m.TriangleSlice())
}

// ToModel3D creates a model3d mesh with the triangles of m.
func (m *Mesh) ToModel3D() *model3d.Mesh {
	return model3d.NewMeshTriangles(m.Triangles())
}

// NumPoints returns the number of unique points.
func (m *Mesh) NumPoints() int {
	return len(m.points)
}

// NumFaces returns the number of triangles.
func (m *Mesh) NumFaces() int {
	return len(m.faces)
}

// Empty returns true if the mesh has no faces.
func (m *Mesh) Empty() bool {
	return len(m.faces) == 0
}

// Points returns a copy of the points of the mesh.
func (m *Mesh) Points() []model3d.Coord3D {
	return slices.Clone(m.points)
}

// Faces returns a copy of the faces of the mesh.
func (m *Mesh) Faces() [][3]int {
	return slices.Clone(m.faces)
}

// Triangle returns the i-th face as a triangle.
func (m *Mesh) Triangle(i int) *model3d.Triangle {
	f := m.faces[i]
	return &model3d.Triangle{m.points[f[0]], m.points[f[1]], m.points[f[2]]}
}

// Triangles creates a flat list of the triangles in the mesh, in face order.
func (m *Mesh) Triangles() []*model3d.Triangle {
	res := make([]*model3d.Triangle, len(m.faces))
	for i := range m.faces {
		res[i] = m.Triangle(i)
	}
	return res
}

// Iterate calls f for every triangle in face order.
func (m *Mesh) Iterate(f func(i int, t *model3d.Triangle)) {
	for i := range m.faces {
		f(i, m.Triangle(i))
	}
}

// Clone creates a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	return &Mesh{
		points: slices.Clone(m.points),
		faces:  slices.Clone(m.faces),
	}
}

// Area computes the total area of the triangles.
func (m *Mesh) Area() float64 {
	var res float64
	m.Iterate(func(_ int, t *model3d.Triangle) {
		res += t.Area()
	})
	return res
}

// Min gets the minimum point of the bounding box.
//
// For an empty mesh, the origin is returned.
func (m *Mesh) Min() model3d.Coord3D {
	if len(m.points) == 0 {
		return model3d.Origin
	}
	res := m.points[0]
	for _, p := range m.points[1:] {
		res = res.Min(p)
	}
	return res
}

// Max gets the maximum point of the bounding box.
//
// For an empty mesh, the origin is returned.
func (m *Mesh) Max() model3d.Coord3D {
	if len(m.points) == 0 {
		return model3d.Origin
	}
	res := m.points[0]
	for _, p := range m.points[1:] {
		res = res.Max(p)
	}
	return res
}

// meshBuilder accumulates triangles into an indexed mesh, merging points
// which are exactly equal.
type meshBuilder struct {
	points []model3d.Coord3D
	index  map[model3d.Coord3D]int
	faces  [][3]int
}

func newMeshBuilder() *meshBuilder {
	return &meshBuilder{index: map[model3d.Coord3D]int{}}
}

func (b *meshBuilder) Add(t *model3d.Triangle) {
	var face [3]int
	for i, c := range t {
		face[i] = b.pointIndex(c)
	}
	b.faces = append(b.faces, face)
}

func (b *meshBuilder) pointIndex(c model3d.Coord3D) int {
	if idx, ok := b.index[c]; ok {
		return idx
	}
	idx := len(b.points)
	b.index[c] = idx
	b.points = append(b.points, c)
	return idx
}

func (b *meshBuilder) Mesh() *Mesh {
	return &Mesh{points: b.points, faces: b.faces}
}

func finiteCoord(c model3d.Coord3D) bool {
	for _, x := range [3]float64{c.X, c.Y, c.Z} {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
