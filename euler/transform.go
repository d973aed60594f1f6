package euler

import (
	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
)

// Transform creates a new mesh by applying f to every point.
//
// Face winding is kept as-is, so f should be orientation-preserving if the
// result is meant to be a consistently oriented solid. Points which become
// equal under f are merged.
func (m *Mesh) Transform(f func(c model3d.Coord3D) model3d.Coord3D) (*Mesh, error) {
	mapped := make([]model3d.Coord3D, len(m.points))
	for i, p := range m.points {
		c := f(p)
		if !finiteCoord(c) {
			return nil, errors.Wrapf(ErrDegenerateGeometry, "transform %v to non-finite %v", p, c)
		}
		mapped[i] = c
	}
	b := newMeshBuilder()
	for _, face := range m.faces {
		b.Add(&model3d.Triangle{mapped[face[0]], mapped[face[1]], mapped[face[2]]})
	}
	return b.Mesh(), nil
}

// Rotate multiplies every point by the matrix r.
func (m *Mesh) Rotate(r *model3d.Matrix3) (*Mesh, error) {
	res, err := m.Transform(r.MulColumn)
	if err != nil {
		return nil, errors.Wrap(err, "rotate mesh")
	}
	return res, nil
}

// Scale multiplies the points component-wise by s.
func (m *Mesh) Scale(s model3d.Coord3D) (*Mesh, error) {
	res, err := m.Transform(func(c model3d.Coord3D) model3d.Coord3D {
		return c.Mul(s)
	})
	if err != nil {
		return nil, errors.Wrap(err, "scale mesh")
	}
	return res, nil
}

// Translate adds t to every point.
func (m *Mesh) Translate(t model3d.Coord3D) (*Mesh, error) {
	res, err := m.Transform(t.Add)
	if err != nil {
		return nil, errors.Wrap(err, "translate mesh")
	}
	return res, nil
}

// axesMatrix creates a matrix whose rows are the given axes.
func axesMatrix(axes [3]model3d.Coord3D) *model3d.Matrix3 {
	return &model3d.Matrix3{
		axes[0].X, axes[0].Y, axes[0].Z,
		axes[1].X, axes[1].Y, axes[1].Z,
		axes[2].X, axes[2].Y, axes[2].Z,
	}
}
