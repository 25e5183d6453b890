package render3d_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/moodscape/render3d"
)

func TestBoxMesh(t *testing.T) {
	cache := render3d.NewMeshCache()
	mesh := cache.Get(render3d.Geometry{
		Type:   render3d.GeometryBox,
		Params: map[string]float32{"width": 2, "height": 2, "depth": 2},
	})

	// 4 vertices per face, 6 faces, duplicated for flat normals.
	assert.Equal(t, 24, len(mesh.Vertices)/3)
	assert.Equal(t, 24, len(mesh.Normals)/3)
	assert.Equal(t, 24, len(mesh.UVs)/2)
	assert.Equal(t, 36, len(mesh.Indices))
	assert.Equal(t, 12, mesh.TriangleCount)

	// All corners sit on the half-extent.
	for _, v := range mesh.Vertices {
		assert.InDelta(t, 1, float64(abs(v)), 1e-6)
	}
	// Face normals are unit length axis vectors.
	for i := 0; i < len(mesh.Normals); i += 3 {
		n := render3d.Vec3(mesh.Normals[i], mesh.Normals[i+1], mesh.Normals[i+2])
		assert.InDelta(t, 1, n.Length(), 1e-6)
	}
}

func TestSphereMesh(t *testing.T) {
	cache := render3d.NewMeshCache()
	mesh := cache.Get(render3d.Geometry{
		Type:   render3d.GeometrySphere,
		Params: map[string]float32{"radius": 1, "widthSegments": 4, "heightSegments": 2},
	})

	// (heightSegments+1) * (widthSegments+1) grid vertices.
	assert.Equal(t, 15, len(mesh.Vertices)/3)
	// Each pole row contributes one triangle per column instead of two.
	assert.Equal(t, 8, mesh.TriangleCount)

	// Normals equal position/radius for an origin-centered sphere.
	for i := 0; i < len(mesh.Vertices); i += 3 {
		assert.InDelta(t, mesh.Vertices[i], mesh.Normals[i], 1e-6)
		assert.InDelta(t, mesh.Vertices[i+1], mesh.Normals[i+1], 1e-6)
		assert.InDelta(t, mesh.Vertices[i+2], mesh.Normals[i+2], 1e-6)
	}
}

func TestPlaneMesh(t *testing.T) {
	cache := render3d.NewMeshCache()
	mesh := cache.Get(render3d.Geometry{
		Type:   render3d.GeometryPlane,
		Params: map[string]float32{"width": 4, "height": 2},
	})

	assert.Equal(t, 4, len(mesh.Vertices)/3)
	assert.Equal(t, 2, mesh.TriangleCount)

	// Single-sided, facing +Z.
	for i := 0; i < len(mesh.Normals); i += 3 {
		assert.Equal(t, float32(0), mesh.Normals[i])
		assert.Equal(t, float32(0), mesh.Normals[i+1])
		assert.Equal(t, float32(1), mesh.Normals[i+2])
	}
}

func TestUnknownTypeFallsBackToUnitBox(t *testing.T) {
	cache := render3d.NewMeshCache()

	unknown := cache.Get(render3d.Geometry{Type: "torus"})
	unitBox := cache.Get(render3d.Geometry{
		Type:   render3d.GeometryBox,
		Params: map[string]float32{"width": 1, "height": 1, "depth": 1},
	})

	assert.Equal(t, unitBox.Vertices, unknown.Vertices)
	assert.Equal(t, unitBox.Normals, unknown.Normals)
	assert.Equal(t, unitBox.Indices, unknown.Indices)
	assert.Equal(t, unitBox.TriangleCount, unknown.TriangleCount)
}

func TestCustomTypeFallsBackToUnitBox(t *testing.T) {
	cache := render3d.NewMeshCache()
	custom := cache.Get(render3d.Geometry{Type: render3d.GeometryCustom})
	assert.Equal(t, 12, custom.TriangleCount)
}

func TestCacheMemoizes(t *testing.T) {
	cache := render3d.NewMeshCache()
	desc := render3d.Geometry{
		Type:   render3d.GeometrySphere,
		Params: map[string]float32{"radius": 2, "widthSegments": 8, "heightSegments": 6},
	}

	first := cache.Get(desc)
	second := cache.Get(desc)

	// Identical descriptors hit the same cached mesh, not a rebuild.
	assert.Same(t, first, second)
	assert.Equal(t, 1, cache.Len())
}

func TestCacheDistinguishesParameters(t *testing.T) {
	cache := render3d.NewMeshCache()

	small := cache.Get(render3d.Geometry{
		Type:   render3d.GeometryBox,
		Params: map[string]float32{"width": 1, "height": 1, "depth": 1},
	})
	wide := cache.Get(render3d.Geometry{
		Type:   render3d.GeometryBox,
		Params: map[string]float32{"width": 3, "height": 1, "depth": 1},
	})

	assert.NotSame(t, small, wide)
	assert.NotEqual(t, small.Vertices, wide.Vertices)
	assert.Equal(t, 2, cache.Len())
}

func TestCacheClear(t *testing.T) {
	cache := render3d.NewMeshCache()
	cache.Get(render3d.Geometry{Type: render3d.GeometryBox})
	cache.Clear()
	assert.Equal(t, 0, cache.Len())
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
