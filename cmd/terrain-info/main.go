// Terrain inspection tool: prints the stats of a .ozt collision mesh
// and optionally fires a pick ray at it.
package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"

	"mesawalk/internal/terrain"
)

func main() {
	rayArg := flag.String("ray", "", "pick ray as ox,oy,oz:dx,dy,dz")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatal("usage: terrain-info [-ray ox,oy,oz:dx,dy,dz] <terrain.ozt>")
	}

	t, err := terrain.Load(flag.Arg(0))
	if err != nil {
		log.Fatal("load", "err", err)
	}

	min, max := t.Bounds()
	fmt.Printf("vertices:  %d\n", len(t.Vertices))
	fmt.Printf("triangles: %d\n", t.TriangleCount())
	fmt.Printf("bounds:    (%.2f, %.2f, %.2f) .. (%.2f, %.2f, %.2f)\n",
		min.X, min.Y, min.Z, max.X, max.Y, max.Z)

	if *rayArg == "" {
		return
	}

	origin, direction, err := parseRay(*rayArg)
	if err != nil {
		log.Fatal("ray", "err", err)
	}

	hit, ok := terrain.Raycast(t, origin, direction)
	if !ok {
		fmt.Println("ray: no hit")
		return
	}
	fmt.Printf("ray: triangle %d at (%.3f, %.3f, %.3f), t=%.3f\n",
		hit.TriangleIndex, hit.Point.X, hit.Point.Y, hit.Point.Z, hit.Distance)
}

func parseRay(s string) (origin, direction rl.Vector3, err error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return origin, direction, fmt.Errorf("expected ox,oy,oz:dx,dy,dz, got %q", s)
	}
	if origin, err = parseVec3(parts[0]); err != nil {
		return origin, direction, err
	}
	if direction, err = parseVec3(parts[1]); err != nil {
		return origin, direction, err
	}
	return origin, direction, nil
}

func parseVec3(s string) (rl.Vector3, error) {
	var v rl.Vector3
	if _, err := fmt.Sscanf(s, "%f,%f,%f", &v.X, &v.Y, &v.Z); err != nil {
		return v, fmt.Errorf("bad vector %q: %w", s, err)
	}
	return v, nil
}
