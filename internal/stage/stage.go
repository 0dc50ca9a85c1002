// Package stage assembles a simulation world from its config: the
// terrain mesh from disk plus the generated mesa field.
package stage

import (
	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"

	"mesawalk/internal/config"
	"mesawalk/internal/geom"
	"mesawalk/internal/sim"
	"mesawalk/internal/terrain"
)

// Build loads the stage's terrain and constructs the world. Terrain
// failures abort the build; there is no degraded mode without a
// collision mesh.
func Build(cfg config.Stage) (*sim.World, error) {
	t, err := terrain.Load(cfg.TerrainPath)
	if err != nil {
		return nil, err
	}

	boxes := BuildMesaField(cfg.Mesas)
	log.Info("stage built", "triangles", t.TriangleCount(), "mesas", len(boxes))

	return sim.NewWorld(t, boxes, ParamsFromConfig(cfg)), nil
}

// ParamsFromConfig maps stage tuning onto simulation constants.
func ParamsFromConfig(cfg config.Stage) sim.Params {
	return sim.Params{
		Gravity:         cfg.Gravity,
		MoveSpeed:       cfg.MoveSpeed,
		JumpSpeed:       cfg.JumpSpeed,
		RiseVelocityCap: cfg.RiseVelocityCap,
		MaxJumps:        cfg.MaxJumps,
		Spawn:           rl.Vector3{X: cfg.Spawn[0], Y: cfg.Spawn[1], Z: cfg.Spawn[2]},
	}
}

// BuildMesaField lays out the grid of stepped mesas as collision boxes.
// Heights rise by HeightStep per grid ring, and every box sits on the
// ground plane: a mesa of half-height h is centered at Z = h so it
// spans 0 to 2h.
func BuildMesaField(f config.MesaField) []geom.AABB {
	boxes := make([]geom.AABB, 0, f.Rows*f.Columns)

	for i := 0; i < f.Rows; i++ {
		y := float32(i)*f.Spacing + f.Origin[1]
		for j := 0; j < f.Columns; j++ {
			x := float32(j)*f.Spacing + f.Origin[0]
			halfHeight := f.HeightStep * float32(i+j+1)

			boxes = append(boxes, geom.AABB{
				Position: rl.Vector3{X: x, Y: y, Z: halfHeight},
				Width:    f.Footprint,
				Depth:    f.Footprint,
				Height:   halfHeight,
			})
		}
	}

	return boxes
}
