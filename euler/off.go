package euler

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
)

// ReadOFF decodes a mesh in the Object File Format.
//
// Only triangular faces are supported. Comments starting with '#' and blank
// lines are ignored, as are per-face color values.
func ReadOFF(r io.Reader) (*Mesh, error) {
	tokens, err := offTokens(r)
	if err != nil {
		return nil, errors.Wrap(err, "read OFF")
	}
	res, err := parseOFF(tokens)
	if err != nil {
		return nil, errors.Wrap(err, "read OFF")
	}
	return res, nil
}

func parseOFF(lines [][]string) (*Mesh, error) {
	if len(lines) == 0 {
		return nil, errors.Wrap(ErrInvalidMesh, "empty file")
	}
	header := lines[0]
	if header[0] == "OFF" {
		header = header[1:]
	} else if strings.HasPrefix(header[0], "OFF") {
		return nil, errors.Errorf("unsupported header: %s", header[0])
	} else {
		return nil, errors.Errorf("missing OFF header")
	}
	lines = lines[1:]
	if len(header) == 0 {
		if len(lines) == 0 {
			return nil, errors.Wrap(ErrInvalidMesh, "missing element counts")
		}
		header = lines[0]
		lines = lines[1:]
	}
	if len(header) < 2 {
		return nil, errors.Wrap(ErrInvalidMesh, "missing element counts")
	}
	counts, err := parseInts(header[:2])
	if err != nil {
		return nil, errors.Wrap(err, "element counts")
	}
	numPoints, numFaces := counts[0], counts[1]
	if numPoints < 0 || numFaces < 0 || numPoints > len(lines) ||
		numFaces > len(lines)-numPoints {
		return nil, errors.Wrapf(ErrInvalidMesh,
			"expected %d points and %d faces but got %d lines", numPoints, numFaces, len(lines))
	}

	points := make([]model3d.Coord3D, numPoints)
	for i, line := range lines[:numPoints] {
		if len(line) < 3 {
			return nil, errors.Wrapf(ErrInvalidMesh, "point %d has %d coordinates", i, len(line))
		}
		var coords [3]float64
		for j, tok := range line[:3] {
			coords[j], err = strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "point %d", i)
			}
		}
		points[i] = model3d.XYZ(coords[0], coords[1], coords[2])
	}

	faces := make([][]int, numFaces)
	for i, line := range lines[numPoints : numPoints+numFaces] {
		n, err := strconv.Atoi(line[0])
		if err != nil {
			return nil, errors.Wrapf(err, "face %d", i)
		}
		if n < 0 || len(line) < n+1 {
			return nil, errors.Wrapf(ErrInvalidMesh, "face %d is truncated", i)
		}
		faces[i], err = parseInts(line[1 : n+1])
		if err != nil {
			return nil, errors.Wrapf(err, "face %d", i)
		}
	}
	return NewMesh(points, faces)
}

// WriteOFF encodes a mesh in the Object File Format.
func WriteOFF(w io.Writer, m *Mesh) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "OFF\n%d %d 0\n", len(m.points), len(m.faces))
	for _, p := range m.points {
		fmt.Fprintf(bw, "%s %s %s\n", formatFloat(p.X), formatFloat(p.Y), formatFloat(p.Z))
	}
	for _, f := range m.faces {
		fmt.Fprintf(bw, "3 %d %d %d\n", f[0], f[1], f[2])
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "write OFF")
	}
	return nil
}

// offTokens splits the input into whitespace-separated tokens per line,
// skipping comments and empty lines.
func offTokens(r io.Reader) ([][]string, error) {
	var res [][]string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}
		fields := strings.Fields(line)
		if len(fields) > 0 {
			res = append(res, fields)
		}
	}
	return res, scanner.Err()
}

func parseInts(tokens []string) ([]int, error) {
	res := make([]int, len(tokens))
	for i, tok := range tokens {
		x, err := strconv.Atoi(tok)
		if err != nil {
			return nil, err
		}
		res[i] = x
	}
	return res, nil
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
