package euler

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
)

// Align moves a mesh so that its barycenter is at the origin and its
// principal axes lie along the x, y, and z axes, in order of ascending
// eigenvalue.
func Align(m *Mesh, kind IntegralKind, concurrency int) (*Mesh, error) {
	aligned, err := NewShape(m, kind, concurrency).Align()
	if err != nil {
		return nil, err
	}
	return aligned.Mesh(), nil
}

// A Shape pairs a mesh with a lazily computed AffineEulerMatrix.
//
// Transformations return new Shapes whose matrix has not yet been computed,
// so the matrix of a Shape always describes its own mesh.
// A Shape is safe for concurrent use.
type Shape struct {
	mesh        *Mesh
	kind        IntegralKind
	concurrency int

	lock   sync.Mutex
	matrix *AffineEulerMatrix
}

// NewShape creates a Shape for the mesh, using the integral kind to compute
// moments. See NewAffineEulerMatrix for the concurrency argument.
func NewShape(m *Mesh, kind IntegralKind, concurrency int) *Shape {
	return &Shape{mesh: m, kind: kind, concurrency: concurrency}
}

// Mesh returns the underlying mesh.
func (s *Shape) Mesh() *Mesh {
	return s.mesh
}

// Dirty returns true if the moments have not been computed for the current
// mesh.
func (s *Shape) Dirty() bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.matrix == nil
}

// Matrix returns the moments of the mesh, computing them if necessary.
func (s *Shape) Matrix() (*AffineEulerMatrix, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.matrix == nil {
		matrix, err := NewAffineEulerMatrix(s.mesh, s.kind, s.concurrency)
		if err != nil {
			return nil, err
		}
		s.matrix = matrix
	}
	res := *s.matrix
	return &res, nil
}

// Barycenter computes the center of mass of the mesh.
func (s *Shape) Barycenter() (model3d.Coord3D, error) {
	matrix, err := s.Matrix()
	if err != nil {
		return model3d.Coord3D{}, err
	}
	return matrix.Barycenter()
}

// PrincipalAxes computes the principal axes of the mesh.
func (s *Shape) PrincipalAxes() ([3]model3d.Coord3D, error) {
	matrix, err := s.Matrix()
	if err != nil {
		return [3]model3d.Coord3D{}, err
	}
	return matrix.PrincipalAxes()
}

// Rotate creates a rotated Shape.
func (s *Shape) Rotate(r *model3d.Matrix3) (*Shape, error) {
	return s.derive(s.mesh.Rotate(r))
}

// Scale creates a Shape scaled component-wise.
func (s *Shape) Scale(scale model3d.Coord3D) (*Shape, error) {
	return s.derive(s.mesh.Scale(scale))
}

// Translate creates a translated Shape.
func (s *Shape) Translate(t model3d.Coord3D) (*Shape, error) {
	return s.derive(s.mesh.Translate(t))
}

// Align creates a Shape centered at its barycenter and rotated so that its
// principal axes map to the coordinate axes.
//
// The translation is applied first, since the barycenter is expressed in
// the frame of the original mesh.
func (s *Shape) Align() (*Shape, error) {
	matrix, err := s.Matrix()
	if err != nil {
		return nil, errors.Wrap(err, "align")
	}
	center, err := matrix.Barycenter()
	if err != nil {
		return nil, errors.Wrap(err, "align")
	}
	axes, err := matrix.PrincipalAxes()
	if err != nil {
		return nil, errors.Wrap(err, "align")
	}
	translated, err := s.Translate(center.Scale(-1))
	if err != nil {
		return nil, errors.Wrap(err, "align")
	}
	res, err := translated.Rotate(axesMatrix(axes))
	if err != nil {
		return nil, errors.Wrap(err, "align")
	}
	return res, nil
}

func (s *Shape) derive(m *Mesh, err error) (*Shape, error) {
	if err != nil {
		return nil, err
	}
	return NewShape(m, s.kind, s.concurrency), nil
}
