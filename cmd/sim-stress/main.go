// Stress test timing the brute-force resolution passes against growing
// terrain sizes. The per-tick cost is linear in the triangle count; this
// prints the actual numbers so mesh budgets can be picked with data.
package main

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"mesawalk/internal/config"
	"mesawalk/internal/sim"
	"mesawalk/internal/stage"
	"mesawalk/internal/terrain"
)

func main() {
	gridSizes := []int{8, 16, 32, 64, 96}

	for _, n := range gridSizes {
		stressResolve(n)
	}
}

func stressResolve(gridSize int) {
	mesh := rollingTerrain(gridSize, 4.0)
	boxes := stage.BuildMesaField(config.Default().Mesas)

	cfg := config.Default()
	world := sim.NewWorld(mesh, boxes, stage.ParamsFromConfig(cfg))
	player := sim.NewPlayer(rl.Vector3{Z: 3}, cfg.PlayerRadius, cfg.PlayerHeight, cfg.MaxJumps)

	rng := rand.New(rand.NewSource(42))
	const ticks = 1000
	dt := float32(1.0 / 60.0)

	start := time.Now()
	for i := 0; i < ticks; i++ {
		in := sim.StandingInput(player)
		in.Move = rl.Vector2{
			X: rng.Float32()*2 - 1,
			Y: rng.Float32()*2 - 1,
		}
		in.Jump = i%90 < 5
		world.Step(player, in, dt)
	}
	perTick := time.Since(start) / ticks

	fmt.Printf("%6d triangles | %4d mesas: %10v/tick (%s at %v)\n",
		mesh.TriangleCount(), len(boxes),
		perTick.Round(time.Nanosecond),
		player.State, player.Position)
}

// rollingTerrain builds a gridSize² quad grid with gentle sine hills,
// two triangles per quad.
func rollingTerrain(gridSize int, spacing float32) *terrain.Terrain {
	t := &terrain.Terrain{}

	height := func(x, y float32) float32 {
		return float32(math.Sin(float64(x)*0.1)+math.Cos(float64(y)*0.1)) * 2
	}

	half := float32(gridSize) * spacing / 2
	for i := 0; i <= gridSize; i++ {
		y := float32(i)*spacing - half
		for j := 0; j <= gridSize; j++ {
			x := float32(j)*spacing - half
			t.Vertices = append(t.Vertices, rl.Vector3{X: x, Y: y, Z: height(x, y)})
		}
	}

	stride := uint16(gridSize + 1)
	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			v := uint16(i)*stride + uint16(j)
			t.Indices = append(t.Indices,
				v, v+1, v+stride,
				v+1, v+stride+1, v+stride,
			)
		}
	}

	for i := 0; i < len(t.Indices); i += 3 {
		a := t.Vertices[t.Indices[i]]
		b := t.Vertices[t.Indices[i+1]]
		c := t.Vertices[t.Indices[i+2]]
		normal := rl.Vector3Normalize(rl.Vector3CrossProduct(
			rl.Vector3Subtract(b, a),
			rl.Vector3Subtract(c, a),
		))
		t.FaceNormals = append(t.FaceNormals, normal)
	}

	return t
}
