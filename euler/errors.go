// Package euler computes the moments of triangulated solids by boundary
// integration, and uses them to align meshes and split them by planes.
package euler

import "github.com/pkg/errors"

var (
	// ErrInvalidMesh is the cause of errors produced by malformed input,
	// such as out-of-range face indices, non-triangular faces, or
	// zero-area triangles given to an integrator.
	ErrInvalidMesh = errors.New("invalid mesh")

	// ErrDegenerateGeometry is the cause of errors produced when a
	// well-formed input has no well-defined result, such as a barycenter
	// of something with zero mass or a plane crossing with a zero
	// denominator.
	ErrDegenerateGeometry = errors.New("degenerate geometry")
)
