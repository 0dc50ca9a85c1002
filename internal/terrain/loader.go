package terrain

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// The .ozt terrain format is three sequential little-endian blocks:
//
//	u32 byte count, then that many bytes of vertex data (3×f32 each)
//	u32 raw byte count, then count/2 u16 indices (3 per triangle)
//	u32 byte count, then that many bytes of face normals (3×f32 each)
//
// A malformed file is a load error, not a degraded mesh: the terrain is
// required for all collision, so callers treat failure as fatal.

const vertexStride = 12 // 3×f32

// Load reads a terrain mesh from the file at path.
func Load(path string) (*Terrain, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open terrain: %w", err)
	}
	defer f.Close()

	t, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read terrain %s: %w", path, err)
	}

	log.Info("terrain loaded", "path", path, "vertices", len(t.Vertices), "triangles", t.TriangleCount())
	return t, nil
}

// Read decodes a terrain mesh from r and validates it: the index list
// must be a multiple of 3, every index must reference a vertex, and
// there must be exactly one face normal per triangle.
func Read(r io.Reader) (*Terrain, error) {
	vertices, err := readVectorBlock(r, "vertex")
	if err != nil {
		return nil, err
	}

	indices, err := readIndexBlock(r)
	if err != nil {
		return nil, err
	}

	normals, err := readVectorBlock(r, "face normal")
	if err != nil {
		return nil, err
	}

	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("index count %d is not a multiple of 3", len(indices))
	}
	if len(normals) != len(indices)/3 {
		return nil, fmt.Errorf("face normal count %d does not match triangle count %d", len(normals), len(indices)/3)
	}
	for i, idx := range indices {
		if int(idx) >= len(vertices) {
			return nil, fmt.Errorf("index %d at position %d exceeds vertex count %d", idx, i, len(vertices))
		}
	}

	return &Terrain{
		Vertices:    vertices,
		Indices:     indices,
		FaceNormals: normals,
	}, nil
}

func readVectorBlock(r io.Reader, kind string) ([]rl.Vector3, error) {
	var byteCount uint32
	if err := binary.Read(r, binary.LittleEndian, &byteCount); err != nil {
		return nil, fmt.Errorf("reading %s byte count: %w", kind, err)
	}
	if byteCount%vertexStride != 0 {
		return nil, fmt.Errorf("%s block of %d bytes is not a multiple of %d", kind, byteCount, vertexStride)
	}

	raw := make([]float32, byteCount/4)
	if err := binary.Read(r, binary.LittleEndian, raw); err != nil {
		return nil, fmt.Errorf("reading %s data: %w", kind, err)
	}

	vectors := make([]rl.Vector3, 0, byteCount/vertexStride)
	for i := 0; i < len(raw); i += 3 {
		vectors = append(vectors, rl.Vector3{X: raw[i], Y: raw[i+1], Z: raw[i+2]})
	}
	return vectors, nil
}

func readIndexBlock(r io.Reader) ([]uint16, error) {
	// The stored count is a raw byte count; each index is a u16.
	var byteCount uint32
	if err := binary.Read(r, binary.LittleEndian, &byteCount); err != nil {
		return nil, fmt.Errorf("reading index byte count: %w", err)
	}

	indices := make([]uint16, byteCount/2)
	if err := binary.Read(r, binary.LittleEndian, indices); err != nil {
		return nil, fmt.Errorf("reading index data: %w", err)
	}
	return indices, nil
}
