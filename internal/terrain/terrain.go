// Package terrain owns the static collision mesh for a stage: a flat
// vertex array, a triangle index list and one precomputed face normal
// per triangle. The mesh is immutable after load and shared by
// reference across every tick.
package terrain

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"mesawalk/internal/geom"
)

// Terrain holds the collision mesh as flat arrays. Triangles are not
// materialized; Triangle builds a lightweight view per access so memory
// stays proportional to the mesh itself.
type Terrain struct {
	Vertices    []rl.Vector3
	Indices     []uint16
	FaceNormals []rl.Vector3
}

// TriangleCount returns the number of faces in the mesh.
func (t *Terrain) TriangleCount() int {
	return len(t.Indices) / 3
}

// Triangle returns the i-th face with its vertices and face normal.
func (t *Terrain) Triangle(i int) geom.Triangle {
	return geom.Triangle{
		A:      t.Vertices[t.Indices[3*i]],
		B:      t.Vertices[t.Indices[3*i+1]],
		C:      t.Vertices[t.Indices[3*i+2]],
		Normal: t.FaceNormals[i],
	}
}

// Bounds returns the axis-aligned extent of all vertices.
func (t *Terrain) Bounds() (min, max rl.Vector3) {
	if len(t.Vertices) == 0 {
		return rl.Vector3{}, rl.Vector3{}
	}
	min, max = t.Vertices[0], t.Vertices[0]
	for _, v := range t.Vertices[1:] {
		min = rl.Vector3Min(min, v)
		max = rl.Vector3Max(max, v)
	}
	return min, max
}
