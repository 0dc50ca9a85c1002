// Package config loads stage configuration from TOML. Every tunable has
// a default so a missing file still yields a playable stage; a present
// file only overrides what it names.
package config

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"
)

// Stage collects the tunables for one stage: simulation constants,
// player and camera dimensions, the terrain asset and the mesa field
// layout.
type Stage struct {
	TerrainPath string `toml:"terrain_path"`

	Gravity         float32 `toml:"gravity"`           // m/s², applied while falling
	MoveSpeed       float32 `toml:"move_speed"`        // horizontal speed at full stick
	JumpSpeed       float32 `toml:"jump_speed"`        // vertical launch speed
	RiseVelocityCap float32 `toml:"rise_velocity_cap"` // upward velocity is clamped to this
	MaxJumps        int     `toml:"max_jumps"`

	PlayerRadius float32 `toml:"player_radius"`
	PlayerHeight float32 `toml:"player_height"`
	CameraRadius float32 `toml:"camera_radius"`

	Spawn       [3]float32 `toml:"spawn"`
	CameraSpawn [3]float32 `toml:"camera_spawn"`

	Mesas MesaField `toml:"mesas"`
}

// MesaField describes the grid of stepped box obstacles: Rows×Columns
// mesas, each Footprint half-extent wide, whose heights rise by
// HeightStep per grid ring.
type MesaField struct {
	Rows       int        `toml:"rows"`
	Columns    int        `toml:"columns"`
	Spacing    float32    `toml:"spacing"`
	Footprint  float32    `toml:"footprint"`
	HeightStep float32    `toml:"height_step"`
	Origin     [2]float32 `toml:"origin"`
}

// Default returns the built-in stage tuning.
func Default() Stage {
	return Stage{
		TerrainPath:     "models/terrain.ozt",
		Gravity:         20.0,
		MoveSpeed:       5.0,
		JumpSpeed:       10.0,
		RiseVelocityCap: 10.0,
		MaxJumps:        2,
		PlayerRadius:    0.15,
		PlayerHeight:    1.8,
		CameraRadius:    0.2,
		Spawn:           [3]float32{0, 0, 3},
		CameraSpawn:     [3]float32{0, -8, 5.5},
		Mesas: MesaField{
			Rows:       12,
			Columns:    10,
			Spacing:    7.5,
			Footprint:  2.5,
			HeightStep: 0.5,
			Origin:     [2]float32{20, -40},
		},
	}
}

// Load reads a stage TOML file over the defaults.
func Load(path string) (Stage, error) {
	stage := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return stage, fmt.Errorf("read stage config: %w", err)
	}
	if err := toml.Unmarshal(data, &stage); err != nil {
		return stage, fmt.Errorf("parse stage config %s: %w", path, err)
	}

	if err := stage.validate(); err != nil {
		return stage, fmt.Errorf("stage config %s: %w", path, err)
	}

	log.Debug("stage config loaded", "path", path)
	return stage, nil
}

func (s Stage) validate() error {
	if s.PlayerRadius <= 0 {
		return fmt.Errorf("player_radius must be positive, got %v", s.PlayerRadius)
	}
	if s.CameraRadius <= 0 {
		return fmt.Errorf("camera_radius must be positive, got %v", s.CameraRadius)
	}
	if s.MaxJumps < 0 {
		return fmt.Errorf("max_jumps must not be negative, got %d", s.MaxJumps)
	}
	if s.Mesas.Rows < 0 || s.Mesas.Columns < 0 {
		return fmt.Errorf("mesa grid must not be negative, got %dx%d", s.Mesas.Rows, s.Mesas.Columns)
	}
	return nil
}
