// Package path walks beams across the tile grid.
package path

import (
	"context"

	"missile-engine/internal/beam"
	"missile-engine/internal/ecs"
	"missile-engine/internal/gamemap"
	"missile-engine/internal/system"
)

// Grid flies beams along a straight line of cells.
type Grid struct{}

// Fire walks b from its origin through its target. The beam stops before
// an opaque cell, at its range, or on its first hit unless it penetrates.
// A beam that hits nothing comes down on its target, or flies on to its
// range when it penetrates. Tracer beams are never stopped by hits.
func (Grid) Fire(ctx context.Context, b *beam.Beam, env *beam.Env) {
	b.Landing = b.Origin
	for _, p := range Line(b.Origin, b.Target, b.Range) {
		if !env.Map.IsTransparent(p.X, p.Y) {
			break
		}
		b.Landing = p
		if id := system.CreatureAt(env.World, p); id != ecs.NilEntity {
			imp, ok := beam.Affect(ctx, env, b, id)
			if ok && imp.Hit && !b.Tracer && !b.Penetrates() {
				break
			}
		}
		if p == b.Target && !b.Penetrates() {
			break
		}
	}
	beam.Explode(ctx, env, b, b.Landing)
}

// Line returns up to n cells from origin toward target, continuing past
// target along the same slope. The origin itself is not included.
func Line(origin, target gamemap.Point, n int) []gamemap.Point {
	dx, dy := target.X-origin.X, target.Y-origin.Y
	if (dx == 0 && dy == 0) || n <= 0 {
		return nil
	}
	adx, ady := abs(dx), abs(dy)
	sx, sy := sign(dx), sign(dy)
	out := make([]gamemap.Point, 0, n)
	x, y := origin.X, origin.Y
	if adx >= ady {
		err := adx / 2
		for len(out) < n {
			x += sx
			err -= ady
			if err < 0 {
				y += sy
				err += adx
			}
			out = append(out, gamemap.Point{X: x, Y: y})
		}
		return out
	}
	err := ady / 2
	for len(out) < n {
		y += sy
		err -= adx
		if err < 0 {
			x += sx
			err += ady
		}
		out = append(out, gamemap.Point{X: x, Y: y})
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
