package euler

import (
	"math"
	"testing"

	"github.com/unixpickle/model3d/model3d"
)

// testCube creates the unit cube [0, 1]^3 with 12 outward-facing triangles.
func testCube(t *testing.T) *Mesh {
	tris := [][3][3]float64{
		{{1, 0, 0}, {0, 0, 0}, {1, 1, 0}},
		{{1, 1, 0}, {0, 0, 0}, {0, 1, 0}},
		{{0, 0, 1}, {1, 0, 1}, {1, 1, 1}},
		{{0, 0, 1}, {1, 1, 1}, {0, 1, 1}},
		{{0, 0, 0}, {1, 0, 0}, {1, 0, 1}},
		{{0, 0, 0}, {1, 0, 1}, {0, 0, 1}},
		{{1, 1, 0}, {0, 1, 0}, {1, 1, 1}},
		{{1, 1, 1}, {0, 1, 0}, {0, 1, 1}},
		{{0, 0, 0}, {0, 1, 1}, {0, 1, 0}},
		{{0, 0, 0}, {0, 0, 1}, {0, 1, 1}},
		{{1, 1, 1}, {1, 0, 0}, {1, 1, 0}},
		{{1, 0, 1}, {1, 0, 0}, {1, 1, 1}},
	}
	var res []*model3d.Triangle
	for _, tri := range tris {
		var mt model3d.Triangle
		for i, c := range tri {
			mt[i] = model3d.XYZ(c[0], c[1], c[2])
		}
		res = append(res, &mt)
	}
	mesh, err := NewMeshTriangles(res)
	if err != nil {
		t.Fatal(err)
	}
	return mesh
}

// testBox creates an axis-aligned box from min to max.
func testBox(t *testing.T, min, max model3d.Coord3D) *Mesh {
	scaled, err := testCube(t).Scale(max.Sub(min))
	if err != nil {
		t.Fatal(err)
	}
	res, err := scaled.Translate(min)
	if err != nil {
		t.Fatal(err)
	}
	return res
}

// testRegularTetrahedron creates a regular tetrahedron inscribed in the
// cube [-1, 1]^3, which has volume 8/3.
func testRegularTetrahedron(t *testing.T) *Mesh {
	mesh, err := NewMesh(
		[]model3d.Coord3D{
			model3d.XYZ(1, 1, 1),
			model3d.XYZ(1, -1, -1),
			model3d.XYZ(-1, 1, -1),
			model3d.XYZ(-1, -1, 1),
		},
		[][]int{{0, 1, 2}, {0, 3, 1}, {0, 2, 3}, {1, 3, 2}},
	)
	if err != nil {
		t.Fatal(err)
	}
	return mesh
}

func testSphere(t *testing.T) *Mesh {
	mesh, err := FromModel3D(model3d.NewMeshIcosphere(model3d.XYZ(0.1, -0.2, 0.3), 1.0, 3))
	if err != nil {
		t.Fatal(err)
	}
	return mesh
}

// testRotation creates a rotation matrix around an axis.
func testRotation(axis model3d.Coord3D, theta float64) *model3d.Matrix3 {
	a := axis.Normalize()
	c, s := math.Cos(theta), math.Sin(theta)
	t := 1 - c
	return &model3d.Matrix3{
		t*a.X*a.X + c, t*a.X*a.Y - s*a.Z, t*a.X*a.Z + s*a.Y,
		t*a.X*a.Y + s*a.Z, t*a.Y*a.Y + c, t*a.Y*a.Z - s*a.X,
		t*a.X*a.Z - s*a.Y, t*a.Y*a.Z + s*a.X, t*a.Z*a.Z + c,
	}
}

func mustIntegrate(t *testing.T, kind IntegralKind, m *Mesh, alpha, beta, gamma int) float64 {
	res, err := kind(m, alpha, beta, gamma)
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func mustMatrix(t *testing.T, m *Mesh, kind IntegralKind) *AffineEulerMatrix {
	res, err := NewAffineEulerMatrix(m, kind, 0)
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func assertClose(t *testing.T, name string, expected, actual, tol float64) {
	t.Helper()
	if math.Abs(expected-actual) > tol {
		t.Errorf("%s: expected %f but got %f", name, expected, actual)
	}
}
