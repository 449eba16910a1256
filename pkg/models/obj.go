package models

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/solweaver/orrery/pkg/math3d"
	"github.com/solweaver/orrery/pkg/render"
)

// LoadOBJ parses a Wavefront OBJ file into a flattened triangle list.
// Polygonal faces are fan-triangulated. Missing normals are computed flat
// per face.
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open obj: %w", err)
	}
	defer f.Close()

	var (
		positions []math3d.Vec3
		normals   []math3d.Vec3
		uvs       []math3d.Vec2
	)
	mesh := NewMesh(filepath.Base(path))

	scanner := bufio.NewScanner(f)
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
				return nil, fmt.Errorf("obj line %d: %w", lineNo, err)
			}
			positions = append(positions, v)
		case "vn":
			v, err := parseFloats3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("obj line %d: %w", lineNo, err)
			}
			normals = append(normals, v)
		case "vt":
			if len(fields) < 3 {
				return nil, fmt.Errorf("obj line %d: short vt", lineNo)
			}
			u, err1 := strconv.ParseFloat(fields[1], 64)
			v, err2 := strconv.ParseFloat(fields[2], 64)
			if err1 != nil || err2 != nil {
				return nil, fmt.Errorf("obj line %d: bad vt", lineNo)
			}
			uvs = append(uvs, math3d.V2(u, v))
		case "f":
			refs := fields[1:]
			if len(refs) < 3 {
				return nil, fmt.Errorf("obj line %d: face with %d vertices", lineNo, len(refs))
			}
			corners := make([]render.Vertex, len(refs))
			for i, ref := range refs {
				v, err := resolveFaceRef(ref, positions, normals, uvs)
				if err != nil {
					return nil, fmt.Errorf("obj line %d: %w", lineNo, err)
				}
				corners[i] = v
			}
			// Fan triangulation.
			for i := 1; i+1 < len(corners); i++ {
				mesh.Vertices = append(mesh.Vertices, corners[0], corners[i], corners[i+1])
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read obj: %w", err)
	}
	if len(mesh.Vertices) == 0 {
		return nil, fmt.Errorf("obj %s: no faces", path)
	}

	mesh.CalculateNormals()
	return mesh, nil
}

// resolveFaceRef parses a face corner reference (v, v/vt, v//vn or v/vt/vn).
// OBJ indices are 1-based; negative indices count from the end.
func resolveFaceRef(ref string, positions, normals []math3d.Vec3, uvs []math3d.Vec2) (render.Vertex, error) {
	parts := strings.Split(ref, "/")

	pi, err := objIndex(parts[0], len(positions))
	if err != nil {
		return render.Vertex{}, fmt.Errorf("position ref %q: %w", ref, err)
	}

	var uv math3d.Vec2
	if len(parts) > 1 && parts[1] != "" {
		ti, err := objIndex(parts[1], len(uvs))
		if err != nil {
			return render.Vertex{}, fmt.Errorf("texcoord ref %q: %w", ref, err)
		}
		uv = uvs[ti]
	}

	var n math3d.Vec3
	if len(parts) > 2 && parts[2] != "" {
		ni, err := objIndex(parts[2], len(normals))
		if err != nil {
			return render.Vertex{}, fmt.Errorf("normal ref %q: %w", ref, err)
		}
		n = normals[ni]
	}

	return render.NewVertex(positions[pi], n, uv), nil
}

func objIndex(s string, count int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if i < 0 {
		i = count + i
	} else {
		i--
	}
	if i < 0 || i >= count {
		return 0, fmt.Errorf("index %s out of range (have %d)", s, count)
	}
	return i, nil
}

func parseFloats3(fields []string) (math3d.Vec3, error) {
	if len(fields) < 3 {
		return math3d.Vec3{}, fmt.Errorf("want 3 components, have %d", len(fields))
	}
	var out [3]float64
	for i := range 3 {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return math3d.Vec3{}, fmt.Errorf("bad float %q", fields[i])
		}
		out[i] = v
	}
	return math3d.V3(out[0], out[1], out[2]), nil
}
