package euler

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
)

// LoadMesh reads a mesh from an OFF or STL file, chosen by the file
// extension.
func LoadMesh(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "load mesh")
	}
	defer f.Close()

	var res *Mesh
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".off":
		res, err = ReadOFF(f)
	case ".stl":
		var tris []*model3d.Triangle
		tris, err = model3d.ReadSTL(f)
		if err == nil {
			res, err = NewMeshTriangles(tris)
		}
	default:
		err = errors.Errorf("unsupported extension: %s", ext)
	}
	if err != nil {
		return nil, errors.Wrap(err, "load mesh")
	}
	return res, nil
}

// SaveMesh writes a mesh to an OFF or STL file, chosen by the file
// extension.
//
// STL output does not preserve the point indices, only the triangles.
func SaveMesh(path string, m *Mesh) error {
	var err error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".off":
		var f *os.File
		f, err = os.Create(path)
		if err == nil {
			err = WriteOFF(f, m)
			if closeErr := f.Close(); err == nil {
				err = closeErr
			}
		}
	case ".stl":
		err = m.ToModel3D().SaveGroupedSTL(path)
	default:
		err = errors.Errorf("unsupported extension: %s", ext)
	}
	if err != nil {
		return errors.Wrap(err, "save mesh")
	}
	return nil
}
