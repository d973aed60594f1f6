package euler

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
)

func TestChoose(t *testing.T) {
	row := []int{1}
	for n := 0; n <= 10; n++ {
		for k := 0; k <= n; k++ {
			if actual := choose(n, k); actual != row[k] {
				t.Errorf("choose(%d, %d): expected %d but got %d", n, k, row[k], actual)
			}
		}
		next := make([]int, n+2)
		next[0], next[n+1] = 1, 1
		for k := 1; k <= n; k++ {
			next[k] = row[k-1] + row[k]
		}
		row = next
	}
}

func TestUnitTriangleIntegral(t *testing.T) {
	factorial := func(n int) float64 {
		res := 1.0
		for i := 2; i <= n; i++ {
			res *= float64(i)
		}
		return res
	}
	for alpha := 0; alpha < 6; alpha++ {
		for beta := 0; beta < 6; beta++ {
			expected := factorial(alpha) * factorial(beta) / factorial(alpha+beta+2)
			actual := unitTriangleIntegral(alpha, beta)
			if math.Abs(actual-expected) > 1e-12 {
				t.Errorf("(%d, %d): expected %f but got %f", alpha, beta, expected, actual)
			}
		}
	}
}

func TestCubeIntegrals(t *testing.T) {
	cube := testCube(t)
	assertClose(t, "area", 6, mustIntegrate(t, SurfaceIntegral, cube, 0, 0, 0), 1e-9)
	assertClose(t, "volume", 1, mustIntegrate(t, VolumeIntegral, cube, 0, 0, 0), 1e-9)

	// Moments of the solid cube are products of 1-D moments.
	assertClose(t, "x", 0.5, mustIntegrate(t, VolumeIntegral, cube, 1, 0, 0), 1e-9)
	assertClose(t, "xy", 0.25, mustIntegrate(t, VolumeIntegral, cube, 1, 1, 0), 1e-9)
	assertClose(t, "zz", 1.0/3, mustIntegrate(t, VolumeIntegral, cube, 0, 0, 2), 1e-9)
	assertClose(t, "xyz", 0.125, mustIntegrate(t, VolumeIntegral, cube, 1, 1, 1), 1e-9)
}

func TestSurfaceAreaRetriangulation(t *testing.T) {
	square := []model3d.Coord3D{
		model3d.XYZ(0, 0, 0),
		model3d.XYZ(10, 0, 0),
		model3d.XYZ(10, 10, 0),
		model3d.XYZ(0, 10, 0),
		model3d.XYZ(5, 5, 0),
	}
	triangulations := [][][]int{
		{{0, 1, 3}, {1, 2, 3}},
		{{0, 1, 2}, {0, 2, 3}},
		{{0, 1, 4}, {1, 2, 4}, {2, 3, 4}, {3, 0, 4}},
	}
	for _, alpha := range []int{0, 1, 2} {
		var expected float64
		for i, faces := range triangulations {
			mesh, err := NewMesh(square, faces)
			if err != nil {
				t.Fatal(err)
			}
			actual := mustIntegrate(t, SurfaceIntegral, mesh, alpha, 0, 0)
			if i == 0 {
				expected = actual
			} else if math.Abs(actual-expected) > 1e-9*math.Max(1, math.Abs(expected)) {
				t.Errorf("alpha=%d triangulation %d: expected %f but got %f", alpha, i,
					expected, actual)
			}
		}
		if alpha == 0 {
			assertClose(t, "area", 100, expected, 1e-9)
		}
	}
}

func TestRegularTetrahedronVolume(t *testing.T) {
	tetra := testRegularTetrahedron(t)
	matrix := mustMatrix(t, tetra, VolumeIntegral)
	assertClose(t, "volume", 8.0/3, mustIntegrate(t, VolumeIntegral, tetra, 0, 0, 0), 1e-9)
	assertClose(t, "mass", 8.0/3, matrix.Mass(), 1e-9)

	// Edge length is 2*sqrt(2).
	side := 2 * math.Sqrt2
	area, err := SurfaceArea(tetra)
	if err != nil {
		t.Fatal(err)
	}
	assertClose(t, "area", math.Sqrt(3)*side*side, area, 1e-9)
}

func TestSurfaceIntegralMatchesArea(t *testing.T) {
	sphere := testSphere(t)
	area, err := SurfaceArea(sphere)
	if err != nil {
		t.Fatal(err)
	}
	assertClose(t, "area", sphere.Area(), area, 1e-9)

	volume, err := Volume(sphere)
	if err != nil {
		t.Fatal(err)
	}
	if volume <= 0 || volume > 4*math.Pi/3 {
		t.Errorf("unexpected icosphere volume: %f", volume)
	}
}

func TestVolumeIntegralTranslation(t *testing.T) {
	// The integral of x over a solid equals volume times barycenter x.
	box := testBox(t, model3d.XYZ(-3, 2, 5), model3d.XYZ(-1, 5, 6))
	volume := mustIntegrate(t, VolumeIntegral, box, 0, 0, 0)
	assertClose(t, "volume", 6, volume, 1e-9)
	assertClose(t, "x", -2*6, mustIntegrate(t, VolumeIntegral, box, 1, 0, 0), 1e-9)
	assertClose(t, "y", 3.5*6, mustIntegrate(t, VolumeIntegral, box, 0, 1, 0), 1e-9)
	assertClose(t, "z", 5.5*6, mustIntegrate(t, VolumeIntegral, box, 0, 0, 1), 1e-9)
}

func TestTriangleIntegralErrors(t *testing.T) {
	degenerate := &model3d.Triangle{
		model3d.XYZ(0, 0, 0),
		model3d.XYZ(1, 1, 1),
		model3d.XYZ(2, 2, 2),
	}
	if _, err := TriangleIntegral(degenerate, 0, 0, 0); errors.Cause(err) != ErrInvalidMesh {
		t.Errorf("expected invalid mesh but got %v", err)
	}

	mesh, err := NewMeshTriangles([]*model3d.Triangle{degenerate})
	if err != nil {
		t.Fatal(err)
	}
	for _, kind := range []IntegralKind{SurfaceIntegral, VolumeIntegral} {
		if _, err := kind(mesh, 1, 0, 0); errors.Cause(err) != ErrInvalidMesh {
			t.Errorf("expected invalid mesh but got %v", err)
		}
	}

	valid := &model3d.Triangle{model3d.X(1), model3d.Y(1), model3d.Z(1)}
	if _, err := TriangleIntegral(valid, -1, 0, 0); err == nil {
		t.Error("expected error for negative exponent")
	}
}

func TestIntegralsOverflow(t *testing.T) {
	// Coordinates are finite but face normals exceed the float64 range.
	huge, err := testCube(t).Scale(model3d.XYZ(1e200, 1e200, 1e200))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Volume(huge); errors.Cause(err) != ErrDegenerateGeometry {
		t.Errorf("volume: expected degenerate geometry but got %v", err)
	}
	if _, err := SurfaceArea(huge); errors.Cause(err) != ErrDegenerateGeometry {
		t.Errorf("area: expected degenerate geometry but got %v", err)
	}
	if _, err := SurfaceIntegral(huge, 2, 0, 0); errors.Cause(err) != ErrDegenerateGeometry {
		t.Errorf("surface integral: expected degenerate geometry but got %v", err)
	}

	// Face areas are finite but the moment is not.
	large, err := testCube(t).Scale(model3d.XYZ(1e100, 1e100, 1e100))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := VolumeIntegral(large, 2, 2, 0); errors.Cause(err) != ErrDegenerateGeometry {
		t.Errorf("volume integral: expected degenerate geometry but got %v", err)
	}
}

func TestParseIntegralKind(t *testing.T) {
	cube := testCube(t)
	for name, expected := range map[string]float64{"surface": 6, "volume": 1} {
		kind, err := ParseIntegralKind(name)
		if err != nil {
			t.Fatal(err)
		}
		assertClose(t, name, expected, mustIntegrate(t, kind, cube, 0, 0, 0), 1e-9)
	}
	if _, err := ParseIntegralKind("line"); err == nil {
		t.Error("expected error for unknown kind")
	}
}
