package euler

import (
	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
)

// A Plane is the set of points p where Normal.Dot(p) == Offset.
//
// The normal need not be unit length, in which case SignedDist is scaled
// accordingly. Only its sign matters for splitting.
type Plane struct {
	Normal model3d.Coord3D
	Offset float64
}

// XYPlane is the plane z = 0, with the positive side at z > 0.
var XYPlane = Plane{Normal: model3d.Z(1)}

// SignedDist computes Normal.Dot(c) - Offset.
func (p Plane) SignedDist(c model3d.Coord3D) float64 {
	return p.Normal.Dot(c) - p.Offset
}

func (p Plane) validate() error {
	if p.Normal == model3d.Origin || !finiteCoord(p.Normal) || !finite(p.Offset) {
		return errors.Wrapf(ErrDegenerateGeometry, "invalid plane %v", p)
	}
	return nil
}

// SplitMesh splits a mesh across a plane, dividing up triangles in the
// process to produce a perfect cut.
//
// Triangles with every vertex on the positive side (or on the plane) go to
// positive. Triangles with every vertex on the negative side (or on the
// plane), including triangles lying entirely in the plane, go to negative.
// Vertices are classified by the exact sign of their signed distance.
//
// Triangles crossing the plane are divided, and the pieces keep the
// orientation of the original triangle. Crossing points are computed the
// same way for both triangles sharing an edge, so a closed input produces
// closed outputs.
//
// The two halves are left open along the cut; no cap is added. Each half is
// therefore not a closed surface on its own, and only the sum of their
// volume integrals equals the volume integral of m.
func SplitMesh(m *Mesh, p Plane) (positive, negative *Mesh, err error) {
	if err := p.validate(); err != nil {
		return nil, nil, errors.Wrap(err, "split mesh")
	}
	pos := newMeshBuilder()
	neg := newMeshBuilder()
	for i := range m.faces {
		posTris, negTris, err := splitTriangle(m.Triangle(i), p)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "split mesh: face %d", i)
		}
		for _, t := range posTris {
			pos.Add(t)
		}
		for _, t := range negTris {
			neg.Add(t)
		}
	}
	return pos.Mesh(), neg.Mesh(), nil
}

// ClippedTriangles returns the indices of the faces which have vertices on
// both sides of the plane or touch it.
func ClippedTriangles(m *Mesh, p Plane) []int {
	var res []int
	for i := range m.faces {
		var pos, neg, on int
		for _, c := range m.Triangle(i) {
			switch sideOf(p.SignedDist(c)) {
			case 1:
				pos++
			case -1:
				neg++
			default:
				on++
			}
		}
		if on > 0 || (pos > 0 && neg > 0) {
			res = append(res, i)
		}
	}
	return res
}

func splitTriangle(t *model3d.Triangle, p Plane) (positive, negative []*model3d.Triangle,
	err error) {
	var dists [3]float64
	var sides [3]int
	var numPos, numNeg, numOn int
	for i, c := range t {
		dists[i] = p.SignedDist(c)
		if !finite(dists[i]) {
			return nil, nil, errors.Wrapf(ErrDegenerateGeometry,
				"signed distance of %v is %f", c, dists[i])
		}
		sides[i] = sideOf(dists[i])
		switch sides[i] {
		case 1:
			numPos++
		case -1:
			numNeg++
		default:
			numOn++
		}
	}

	if numNeg == 0 && numPos > 0 {
		return []*model3d.Triangle{t}, nil, nil
	} else if numPos == 0 {
		return nil, []*model3d.Triangle{t}, nil
	}

	if numOn == 1 {
		// One vertex is on the plane, and the opposite edge is cut.
		var onIdx int
		for i, s := range sides {
			if s == 0 {
				onIdx = i
			}
		}
		i1, i2 := (onIdx+1)%3, (onIdx+2)%3
		posIdx, negIdx := i1, i2
		if sides[i1] < 0 {
			posIdx, negIdx = i2, i1
		}
		mid, err := crossing(t[posIdx], dists[posIdx], t[negIdx], dists[negIdx])
		if err != nil {
			return nil, nil, err
		}
		posTri := *t
		posTri[negIdx] = mid
		negTri := *t
		negTri[posIdx] = mid
		return nonDegenerate(&posTri), nonDegenerate(&negTri), nil
	}

	// The apex is the vertex alone on its side. Rotating the vertex order
	// to start at the apex preserves orientation.
	var apexIdx int
	for i, s := range sides {
		if s != sides[(i+1)%3] && s != sides[(i+2)%3] {
			apexIdx = i
		}
	}
	apex := t[apexIdx]
	base0 := t[(apexIdx+1)%3]
	base1 := t[(apexIdx+2)%3]
	apexDist := dists[apexIdx]
	base0Dist := dists[(apexIdx+1)%3]
	base1Dist := dists[(apexIdx+2)%3]

	var crossA, crossB model3d.Coord3D
	if sides[apexIdx] > 0 {
		crossA, err = crossing(apex, apexDist, base0, base0Dist)
		if err == nil {
			crossB, err = crossing(apex, apexDist, base1, base1Dist)
		}
	} else {
		crossA, err = crossing(base0, base0Dist, apex, apexDist)
		if err == nil {
			crossB, err = crossing(base1, base1Dist, apex, apexDist)
		}
	}
	if err != nil {
		return nil, nil, err
	}

	apexTris := nonDegenerate(&model3d.Triangle{apex, crossA, crossB})
	baseTris := append(
		nonDegenerate(&model3d.Triangle{base0, crossB, crossA}),
		nonDegenerate(&model3d.Triangle{base0, base1, crossB})...,
	)
	if sides[apexIdx] > 0 {
		return apexTris, baseTris, nil
	} else {
		return baseTris, apexTris, nil
	}
}

// crossing finds where the segment from a positive point to a negative
// point crosses the plane.
//
// Always parameterizing from the positive end makes the result identical
// for both triangles that share the segment.
func crossing(posPoint model3d.Coord3D, posDist float64, negPoint model3d.Coord3D,
	negDist float64) (model3d.Coord3D, error) {
	denom := posDist - negDist
	if denom == 0 {
		return model3d.Coord3D{}, errors.Wrapf(ErrDegenerateGeometry,
			"crossing between %v and %v has zero denominator", posPoint, negPoint)
	}
	t := -posDist / denom
	res := posPoint.Add(posPoint.Sub(negPoint).Scale(t))
	if !finiteCoord(res) {
		return model3d.Coord3D{}, errors.Wrapf(ErrDegenerateGeometry,
			"crossing between %v and %v is not finite", posPoint, negPoint)
	}
	return res, nil
}

// nonDegenerate drops a piece with exactly zero area, which can happen when
// a vertex is within rounding error of the plane and a crossing point lands
// on or in line with it.
func nonDegenerate(t *model3d.Triangle) []*model3d.Triangle {
	if t[1].Sub(t[0]).Cross(t[2].Sub(t[0])).Norm() == 0 {
		return nil
	}
	return []*model3d.Triangle{t}
}

func sideOf(dist float64) int {
	if dist > 0 {
		return 1
	} else if dist < 0 {
		return -1
	}
	return 0
}
