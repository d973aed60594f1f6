package euler

import (
	"math"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
	"golang.org/x/exp/constraints"
)

// An IntegralKind integrates the monomial x^alpha * y^beta * z^gamma over a
// mesh, either over its surface or over the volume it encloses.
type IntegralKind func(m *Mesh, alpha, beta, gamma int) (float64, error)

// ParseIntegralKind maps "surface" to SurfaceIntegral and "volume" to
// VolumeIntegral.
func ParseIntegralKind(name string) (IntegralKind, error) {
	switch name {
	case "surface":
		return SurfaceIntegral, nil
	case "volume":
		return VolumeIntegral, nil
	}
	return nil, errors.Errorf("unknown integral kind: %q", name)
}

// SurfaceIntegral integrates x^alpha * y^beta * z^gamma over the surface of
// the mesh.
func SurfaceIntegral(m *Mesh, alpha, beta, gamma int) (float64, error) {
	var res float64
	for i := range m.faces {
		v, err := TriangleIntegral(m.Triangle(i), alpha, beta, gamma)
		if err != nil {
			return 0, errors.Wrapf(err, "surface integral: face %d", i)
		}
		res += v
	}
	if !finite(res) {
		return 0, errors.Wrapf(ErrDegenerateGeometry, "surface integral is %f", res)
	}
	return res, nil
}

// VolumeIntegral integrates x^alpha * y^beta * z^gamma over the volume
// enclosed by the mesh, which should be closed and have outward-facing
// normals.
//
// The volume integral is reduced to a surface integral with the divergence
// theorem, using the field (x^(alpha+1) * y^beta * z^gamma / (alpha+1), 0, 0).
func VolumeIntegral(m *Mesh, alpha, beta, gamma int) (float64, error) {
	var res float64
	for i := range m.faces {
		t := m.Triangle(i)
		c := t[1].Sub(t[0]).Cross(t[2].Sub(t[0]))
		norm := c.Norm()
		if norm == 0 {
			return 0, errors.Wrapf(ErrInvalidMesh, "volume integral: face %d has zero area", i)
		} else if !finite(norm) {
			return 0, errors.Wrapf(ErrDegenerateGeometry,
				"volume integral: face %d normal overflows", i)
		}
		v, err := TriangleIntegral(t, alpha+1, beta, gamma)
		if err != nil {
			return 0, errors.Wrapf(err, "volume integral: face %d", i)
		}
		res += (c.X / norm) * v
	}
	res /= float64(alpha + 1)
	if !finite(res) {
		return 0, errors.Wrapf(ErrDegenerateGeometry, "volume integral is %f", res)
	}
	return res, nil
}

// SurfaceArea computes the area of the mesh by integration.
func SurfaceArea(m *Mesh) (float64, error) {
	return SurfaceIntegral(m, 0, 0, 0)
}

// Volume computes the volume enclosed by the mesh by integration.
func Volume(m *Mesh) (float64, error) {
	return VolumeIntegral(m, 0, 0, 0)
}

// TriangleIntegral integrates x^alpha * y^beta * z^gamma over a triangle
// using the closed form of Cattani and Paoluzzi, "Boundary integration over
// linear polyhedra" (1990).
func TriangleIntegral(t *model3d.Triangle, alpha, beta, gamma int) (float64, error) {
	if alpha < 0 || beta < 0 || gamma < 0 {
		return 0, errors.Errorf("negative exponent (%d, %d, %d)", alpha, beta, gamma)
	}
	a := t[1].Sub(t[0])
	b := t[2].Sub(t[0])
	norm := a.Cross(b).Norm()
	if norm == 0 {
		return 0, errors.Wrapf(ErrInvalidMesh, "zero-area triangle %v", *t)
	} else if !finite(norm) {
		return 0, errors.Wrapf(ErrDegenerateGeometry, "area of triangle %v overflows", *t)
	}
	o := t[0]

	var s1 float64
	for h := 0; h <= alpha; h++ {
		for k := 0; k <= beta; k++ {
			for m := 0; m <= gamma; m++ {
				var s2 float64
				for i := 0; i <= h; i++ {
					var s3 float64
					for j := 0; j <= k; j++ {
						var s4 float64
						for l := 0; l <= m; l++ {
							s4 += float64(choose(m, l)) * ipow(a.Z, m-l) * ipow(b.Z, l) *
								unitTriangleIntegral(h+k+m-i-j-l, i+j+l)
						}
						s3 += float64(choose(k, j)) * ipow(a.Y, k-j) * ipow(b.Y, j) * s4
					}
					s2 += float64(choose(h, i)) * ipow(a.X, h-i) * ipow(b.X, i) * s3
				}
				s1 += float64(choose(alpha, h)*choose(beta, k)*choose(gamma, m)) *
					ipow(o.X, alpha-h) * ipow(o.Y, beta-k) * ipow(o.Z, gamma-m) * s2
			}
		}
	}
	res := s1 * norm
	if !finite(res) {
		return 0, errors.Wrapf(ErrDegenerateGeometry, "integral over triangle %v is %f", *t, res)
	}
	return res, nil
}

// unitTriangleIntegral integrates u^alpha * v^beta over the unit
// triangle u, v >= 0, u + v <= 1.
func unitTriangleIntegral(alpha, beta int) float64 {
	var res float64
	for h := 0; h <= alpha+1; h++ {
		sign := 1.0
		if h%2 == 1 {
			sign = -1
		}
		res += float64(choose(alpha+1, h)) * sign / float64(h+beta+1)
	}
	return res / float64(alpha+1)
}

// choose computes the binomial coefficient n choose k.
//
// The multiplication happens before the division, so every intermediate
// result is an exact integer.
func choose[T constraints.Integer](n, k T) T {
	if k == 0 || k == n {
		return 1
	}
	return choose(n-1, k-1) * n / k
}

// ipow computes x^n for n >= 0 by repeated multiplication, so that
// ipow(0, 0) == 1.
func ipow(x float64, n int) float64 {
	res := 1.0
	for i := 0; i < n; i++ {
		res *= x
	}
	return res
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
