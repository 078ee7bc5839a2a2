package system

import (
	"missile-engine/internal/component"
	"missile-engine/internal/ecs"
	"missile-engine/internal/gamemap"
	"testing"
)

func TestAlertWithinRadius(t *testing.T) {
	w := ecs.NewWorld()
	near := w.CreateEntity()
	w.Add(near, component.Position{X: 3, Y: 0})
	w.Add(near, component.AI{SightRange: 8})
	far := w.CreateEntity()
	w.Add(far, component.Position{X: 9, Y: 0})
	w.Add(far, component.AI{SightRange: 8})

	if n := Alert(w, gamemap.Point{}, 5); n != 1 {
		t.Fatalf("Alert alerted %d; want 1", n)
	}
	if !w.Get(near, component.CAI).(component.AI).Alerted {
		t.Error("near monster should be alerted")
	}
	if w.Get(far, component.CAI).(component.AI).Alerted {
		t.Error("far monster should not hear the noise")
	}
	if n := Alert(w, gamemap.Point{}, 5); n != 0 {
		t.Errorf("already alerted monsters counted again: %d", n)
	}
	if n := Alert(w, gamemap.Point{}, 0); n != 0 {
		t.Errorf("silent noise alerted %d", n)
	}
}
