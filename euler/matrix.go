package euler

import (
	"math"

	"github.com/pkg/errors"
	"github.com/unixpickle/essentials"
	"github.com/unixpickle/model3d/model3d"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/mat"
)

// matrixExponents lists the monomials of the upper triangle of an
// AffineEulerMatrix in row-major order.
var matrixExponents = [10][3]int{
	{2, 0, 0}, {1, 1, 0}, {1, 0, 1}, {1, 0, 0},
	{0, 2, 0}, {0, 1, 1}, {0, 1, 0},
	{0, 0, 2}, {0, 0, 1},
	{0, 0, 0},
}

// An AffineEulerMatrix is a symmetric matrix of the zeroth, first, and
// second order moments of a shape.
//
// Entry (i, j) for i, j < 3 is the integral of x_i*x_j, entry (i, 3) is the
// integral of x_i, and entry (3, 3) is the mass (area or volume).
type AffineEulerMatrix [4][4]float64

// NewAffineEulerMatrix computes the moments of m with the integral kind.
//
// The ten independent entries are evaluated with up to concurrency
// Goroutines. If concurrency is 0, GOMAXPROCS is used.
func NewAffineEulerMatrix(m *Mesh, kind IntegralKind, concurrency int) (*AffineEulerMatrix, error) {
	var vals [len(matrixExponents)]float64
	var errs [len(matrixExponents)]error
	essentials.ConcurrentMap(concurrency, len(matrixExponents), func(i int) {
		e := matrixExponents[i]
		vals[i], errs[i] = kind(m, e[0], e[1], e[2])
	})
	for i, err := range errs {
		if err != nil {
			return nil, errors.Wrapf(err, "affine Euler matrix: exponents %v", matrixExponents[i])
		}
		if !finite(vals[i]) {
			return nil, errors.Wrapf(ErrDegenerateGeometry,
				"affine Euler matrix: exponents %v gave %f", matrixExponents[i], vals[i])
		}
	}
	return &AffineEulerMatrix{
		{vals[0], vals[1], vals[2], vals[3]},
		{vals[1], vals[4], vals[5], vals[6]},
		{vals[2], vals[5], vals[7], vals[8]},
		{vals[3], vals[6], vals[8], vals[9]},
	}, nil
}

// Mass returns the area or volume of the shape.
func (a *AffineEulerMatrix) Mass() float64 {
	return a[3][3]
}

// Barycenter computes the center of mass.
func (a *AffineEulerMatrix) Barycenter() (model3d.Coord3D, error) {
	if a[3][3] == 0 {
		return model3d.Coord3D{}, errors.Wrap(ErrDegenerateGeometry, "barycenter of zero mass")
	}
	res := model3d.XYZ(a[3][0], a[3][1], a[3][2]).Scale(1 / a[3][3])
	if !finiteCoord(res) {
		return model3d.Coord3D{}, errors.Wrapf(ErrDegenerateGeometry, "barycenter is %v", res)
	}
	return res, nil
}

// PrincipalAxes computes the eigenvectors of the second order moments,
// sorted by ascending eigenvalue.
//
// The axes are unit length and mutually orthogonal. Each axis is flipped so
// that its largest component is positive, and the last axis is then negated
// if needed so that the axes form a right-handed frame.
//
// When two eigenvalues are equal or nearly equal, the order of the
// corresponding axes (and the axes themselves, within their eigenspace) is
// not numerically stable. Use PrincipalValues to detect this case.
func (a *AffineEulerMatrix) PrincipalAxes() ([3]model3d.Coord3D, error) {
	axes, _, err := a.principal()
	return axes, err
}

// PrincipalValues returns the eigenvalues of the second order moments in
// ascending order, corresponding to the results of PrincipalAxes.
func (a *AffineEulerMatrix) PrincipalValues() ([3]float64, error) {
	_, values, err := a.principal()
	return values, err
}

func (a *AffineEulerMatrix) principal() (axes [3]model3d.Coord3D, values [3]float64, err error) {
	sym := mat.NewSymDense(3, []float64{
		a[0][0], a[0][1], a[0][2],
		a[1][0], a[1][1], a[1][2],
		a[2][0], a[2][1], a[2][2],
	})
	var eig mat.EigenSym
	if !eig.Factorize(sym, true) {
		return axes, values, errors.Wrap(ErrDegenerateGeometry, "eigen decomposition failed")
	}
	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	type eigenPair struct {
		Value  float64
		Vector model3d.Coord3D
	}
	pairs := make([]eigenPair, 3)
	for i, v := range eig.Values(nil) {
		pairs[i] = eigenPair{
			Value:  v,
			Vector: canonicalSign(model3d.XYZ(vecs.At(0, i), vecs.At(1, i), vecs.At(2, i)).Normalize()),
		}
	}
	slices.SortStableFunc(pairs, func(p1, p2 eigenPair) bool {
		return p1.Value < p2.Value
	})
	for i, p := range pairs {
		axes[i] = p.Vector
		values[i] = p.Value
	}
	if axes[0].Cross(axes[1]).Dot(axes[2]) < 0 {
		axes[2] = axes[2].Scale(-1)
	}
	return axes, values, nil
}

// canonicalSign flips c so that its largest-magnitude component is
// positive.
func canonicalSign(c model3d.Coord3D) model3d.Coord3D {
	largest := c.X
	for _, x := range []float64{c.Y, c.Z} {
		if math.Abs(x) > math.Abs(largest) {
			largest = x
		}
	}
	if largest < 0 {
		return c.Scale(-1)
	}
	return c
}
