// Headless simulation driver: loads the stage, then runs a scripted
// fixed-step session through the collision core, logging state
// transitions. Useful for profiling and for eyeballing resolution
// behavior without a headset or a window.
package main

import (
	"flag"
	"os"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"

	"mesawalk/internal/config"
	"mesawalk/internal/sim"
	"mesawalk/internal/stage"
)

func main() {
	configPath := flag.String("config", "", "stage TOML (built-in defaults if empty)")
	ticks := flag.Int("ticks", 600, "number of simulation ticks to run")
	dt := flag.Float64("dt", 1.0/60.0, "fixed timestep in seconds")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatal("stage config", "err", err)
		}
	}

	world, err := stage.Build(cfg)
	if err != nil {
		log.Fatal("stage build", "err", err)
	}

	player := sim.NewPlayer(
		rl.Vector3{X: cfg.Spawn[0], Y: cfg.Spawn[1], Z: cfg.Spawn[2]},
		cfg.PlayerRadius, cfg.PlayerHeight, cfg.MaxJumps,
	)
	camera := sim.NewCamera(
		rl.Vector3{X: cfg.CameraSpawn[0], Y: cfg.CameraSpawn[1], Z: cfg.CameraSpawn[2]},
		cfg.CameraRadius,
	)

	// Scripted session: walk toward the mesa field, jumping every
	// couple of seconds.
	step := float32(*dt)
	for tick := 0; tick < *ticks; tick++ {
		in := sim.StandingInput(player)
		in.Move = rl.Vector2{X: 1, Y: 0}
		in.Jump = tick%120 >= 110

		events := world.Step(player, in, step)
		world.StepCamera(camera, rl.Vector3{X: 1}, step)

		switch {
		case events.Jumped:
			log.Info("jumped", "tick", tick, "jumps_left", player.JumpsRemaining)
		case events.Landed:
			log.Info("landed", "tick", tick, "foot_z", player.Segment.P1.Z, "normal_z", player.ContactNormal.Z)
		case events.LeftGround:
			log.Info("left ground", "tick", tick)
		}
	}

	log.Info("session finished",
		"state", player.State.String(),
		"position", player.Position,
		"camera", camera.Position,
	)
	os.Exit(0)
}
