package render3d

import (
	"sort"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
)

// Mesh holds CPU-side vertex data for one primitive. Meshes are built once
// by the cache and shared read-only across frames and objects.
type Mesh struct {
	Vertices      []float32 // x,y,z triples
	Normals       []float32 // x,y,z triples
	UVs           []float32 // u,v pairs
	Indices       []uint32
	TriangleCount int
}

// MeshCache builds and memoizes primitive meshes keyed by geometry
// descriptor. Repeated lookups with an identical descriptor return the
// same mesh; a Geometry of unknown type yields a unit box instead of an
// error. The cache is owned by a single Renderer and is not safe for
// concurrent use.
type MeshCache struct {
	meshes map[string]*Mesh
}

// NewMeshCache returns an empty mesh cache.
func NewMeshCache() *MeshCache {
	return &MeshCache{meshes: make(map[string]*Mesh)}
}

// Get returns the mesh for a geometry descriptor, building it on first
// use. Unrecognized types fall back to a unit box; this is policy, not an
// error path, so malformed descriptors never abort a frame.
func (c *MeshCache) Get(g Geometry) *Mesh {
	switch g.Type {
	case GeometryBox, GeometrySphere, GeometryPlane:
	default:
		g = Geometry{Type: GeometryBox}
	}

	key := cacheKey(g)
	if m, ok := c.meshes[key]; ok {
		return m
	}

	var m *Mesh
	switch g.Type {
	case GeometrySphere:
		m = buildSphere(
			param(g.Params, "radius", 1),
			int(param(g.Params, "widthSegments", 16)),
			int(param(g.Params, "heightSegments", 12)),
		)
	case GeometryPlane:
		m = buildPlane(
			param(g.Params, "width", 1),
			param(g.Params, "height", 1),
		)
	default:
		m = buildBox(
			param(g.Params, "width", 1),
			param(g.Params, "height", 1),
			param(g.Params, "depth", 1),
		)
	}

	c.meshes[key] = m
	return m
}

// Len returns the number of cached meshes.
func (c *MeshCache) Len() int {
	return len(c.meshes)
}

// Clear drops all cached meshes.
func (c *MeshCache) Clear() {
	c.meshes = make(map[string]*Mesh)
}

// cacheKey serializes a descriptor as type plus sorted parameters, so
// parameter map iteration order cannot split cache entries.
func cacheKey(g Geometry) string {
	var b strings.Builder
	b.WriteString(string(g.Type))
	names := make([]string, 0, len(g.Params))
	for name := range g.Params {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		b.WriteByte('|')
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(strconv.FormatFloat(float64(g.Params[name]), 'g', -1, 32))
	}
	return b.String()
}

func param(params map[string]float32, name string, def float32) float32 {
	if v, ok := params[name]; ok {
		return v
	}
	return def
}

// buildBox builds an axis-aligned box centered at the origin with four
// vertices per face, so every face carries its own flat normal.
func buildBox(width, height, depth float32) *Mesh {
	x, y, z := width/2, height/2, depth/2

	type face struct {
		normal  Vector3
		corners [4]Vector3
	}
	faces := []face{
		// front (+Z)
		{Vec3(0, 0, 1), [4]Vector3{{-x, -y, z}, {x, -y, z}, {x, y, z}, {-x, y, z}}},
		// back (-Z)
		{Vec3(0, 0, -1), [4]Vector3{{x, -y, -z}, {-x, -y, -z}, {-x, y, -z}, {x, y, -z}}},
		// top (+Y)
		{Vec3(0, 1, 0), [4]Vector3{{-x, y, z}, {x, y, z}, {x, y, -z}, {-x, y, -z}}},
		// bottom (-Y)
		{Vec3(0, -1, 0), [4]Vector3{{-x, -y, -z}, {x, -y, -z}, {x, -y, z}, {-x, -y, z}}},
		// right (+X)
		{Vec3(1, 0, 0), [4]Vector3{{x, -y, z}, {x, -y, -z}, {x, y, -z}, {x, y, z}}},
		// left (-X)
		{Vec3(-1, 0, 0), [4]Vector3{{-x, -y, -z}, {-x, -y, z}, {-x, y, z}, {-x, y, -z}}},
	}
	faceUVs := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	m := &Mesh{}
	for _, f := range faces {
		base := uint32(len(m.Vertices) / 3)
		for i, p := range f.corners {
			m.Vertices = append(m.Vertices, p.X, p.Y, p.Z)
			m.Normals = append(m.Normals, f.normal.X, f.normal.Y, f.normal.Z)
			m.UVs = append(m.UVs, faceUVs[i][0], faceUVs[i][1])
		}
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	m.TriangleCount = len(m.Indices) / 3
	return m
}

// buildSphere builds a UV sphere centered at the origin as a
// latitude/longitude grid, skipping the degenerate triangles at the poles.
func buildSphere(radius float32, widthSegments, heightSegments int) *Mesh {
	if widthSegments < 3 {
		widthSegments = 3
	}
	if heightSegments < 2 {
		heightSegments = 2
	}

	m := &Mesh{}
	for y := 0; y <= heightSegments; y++ {
		v := float32(y) / float32(heightSegments)
		phi := v * math32.Pi
		for x := 0; x <= widthSegments; x++ {
			u := float32(x) / float32(widthSegments)
			theta := u * 2 * math32.Pi

			px := -radius * math32.Cos(theta) * math32.Sin(phi)
			py := radius * math32.Cos(phi)
			pz := radius * math32.Sin(theta) * math32.Sin(phi)

			m.Vertices = append(m.Vertices, px, py, pz)
			// Centered at the origin, so the normal is position/radius.
			m.Normals = append(m.Normals, px/radius, py/radius, pz/radius)
			m.UVs = append(m.UVs, u, 1-v)
		}
	}

	for y := 0; y < heightSegments; y++ {
		for x := 0; x < widthSegments; x++ {
			a := uint32(y*(widthSegments+1) + x + 1)
			b := uint32(y*(widthSegments+1) + x)
			c := uint32((y+1)*(widthSegments+1) + x)
			d := uint32((y+1)*(widthSegments+1) + x + 1)

			if y != 0 {
				m.Indices = append(m.Indices, a, b, d)
			}
			if y != heightSegments-1 {
				m.Indices = append(m.Indices, b, c, d)
			}
		}
	}
	m.TriangleCount = len(m.Indices) / 3
	return m
}

// buildPlane builds a single-sided quad in the XY plane facing +Z.
func buildPlane(width, height float32) *Mesh {
	x, y := width/2, height/2
	return &Mesh{
		Vertices: []float32{
			-x, -y, 0,
			x, -y, 0,
			x, y, 0,
			-x, y, 0,
		},
		Normals: []float32{
			0, 0, 1,
			0, 0, 1,
			0, 0, 1,
			0, 0, 1,
		},
		UVs: []float32{
			0, 0,
			1, 0,
			1, 1,
			0, 1,
		},
		Indices:       []uint32{0, 1, 2, 0, 2, 3},
		TriangleCount: 2,
	}
}
