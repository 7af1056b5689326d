package model

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/kadrey/headcast/pkg/la"
)

// LoadOBJ parses a Wavefront OBJ file at path into a Mesh.
//
// Grounded on original_source/src/model.rs's Wavefront::parse_string:
// line-oriented, '#'-comments and blank lines skipped, "v "/"vn "/"vt "
// lines take the first two (for vt) or three (for v/vn) floats, "f " lines
// parse three "v/vt/vn" corner tokens (1-based, converted to 0-based; the
// vn component is ignored, matching the original), and only
// triangular faces are accepted.
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("model: open %s: %w", path, err)
	}
	defer f.Close()
	return ParseOBJ(f, path)
}

// ParseOBJ parses OBJ source from r. name is used only as the resulting
// Mesh's Name.
func ParseOBJ(r io.Reader, name string) (*Mesh, error) {
	mesh := NewMesh(name)
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			v, err := parseFloats3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("model: line %d: %w", lineNo, err)
			}
			mesh.Vertices = append(mesh.Vertices, v)
		case "vn":
			n, err := parseFloats3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("model: line %d: %w", lineNo, err)
			}
			mesh.Normals = append(mesh.Normals, n)
		case "vt":
			if len(fields) < 3 {
				return nil, fmt.Errorf("model: line %d: malformed vt", lineNo)
			}
			u, err := strconv.ParseFloat(fields[1], 32)
			if err != nil {
				return nil, fmt.Errorf("model: line %d: %w", lineNo, err)
			}
			v, err := strconv.ParseFloat(fields[2], 32)
			if err != nil {
				return nil, fmt.Errorf("model: line %d: %w", lineNo, err)
			}
			mesh.UVs = append(mesh.UVs, la.V2(float32(u), float32(v)))
		case "f":
			face, err := parseFace(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("model: line %d: %w", lineNo, err)
			}
			mesh.Faces = append(mesh.Faces, face)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	mesh.CalculateBounds()
	return mesh, nil
}

func parseFloats3(fields []string) (la.Vec3, error) {
	if len(fields) < 3 {
		return la.Vec3{}, fmt.Errorf("expected 3 components, got %d", len(fields))
	}
	var v [3]float32
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return la.Vec3{}, err
		}
		v[i] = float32(f)
	}
	return la.V3(v[0], v[1], v[2]), nil
}

// parseFace parses three "v/vt/vn" (or "v/vt", or "v") corner tokens into a
// Face, converting OBJ's 1-based indices to 0-based. Only triangles are
// accepted; the original source's parser has the same restriction.
func parseFace(tokens []string) (Face, error) {
	if len(tokens) != 3 {
		return Face{}, fmt.Errorf("only triangular faces are supported, got %d corners", len(tokens))
	}
	var f Face
	for i, tok := range tokens {
		parts := strings.Split(tok, "/")
		vIdx, err := strconv.Atoi(parts[0])
		if err != nil {
			return Face{}, err
		}
		f.V[i] = vIdx - 1
		if len(parts) >= 2 && parts[1] != "" {
			tIdx, err := strconv.Atoi(parts[1])
			if err != nil {
				return Face{}, err
			}
			f.T[i] = tIdx - 1
		}
		// parts[2] (vn index), if present, is ignored, matching
		// original_source/src/model.rs.
	}
	return f, nil
}
