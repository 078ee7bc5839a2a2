package system

import (
	"missile-engine/internal/component"
	"missile-engine/internal/ecs"
	"missile-engine/internal/gamemap"
)

// Alert wakes every AI-driven creature within radius of origin and returns
// how many were alerted. Noise travels regardless of line of sight.
func Alert(w *ecs.World, origin gamemap.Point, radius int) int {
	if radius <= 0 {
		return 0
	}
	n := 0
	for _, id := range w.Query(component.CAI, component.CPosition) {
		pos := gamemap.Point(w.Get(id, component.CPosition).(component.Position))
		if gamemap.Distance(pos, origin) > radius {
			continue
		}
		ai := w.Get(id, component.CAI).(component.AI)
		if !ai.Alerted {
			ai.Alerted = true
			w.Add(id, ai)
			n++
		}
	}
	return n
}
