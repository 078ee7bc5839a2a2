package ui

import (
	"context"
	"strings"
	"testing"

	"missile-engine/internal/beam"
	"missile-engine/internal/component"
	"missile-engine/internal/ecs"
	"missile-engine/internal/gamemap"
	"missile-engine/internal/item"

	"github.com/gdamore/tcell/v2"
)

// newSimScreen creates an initialized 80×24 simulation screen.
func newSimScreen(t *testing.T) tcell.Screen {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	ss.SetSize(80, 24)
	if err := ss.Init(); err != nil {
		t.Fatalf("SimulationScreen.Init: %v", err)
	}
	t.Cleanup(ss.Fini)
	return ss
}

// row reads back the runes on screen row y.
func row(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestCameraRoundTrip(t *testing.T) {
	c := NewCamera(gamemap.Point{X: 30, Y: 10}, 80, 16)
	sx, sy, ok := c.WorldToScreen(gamemap.Point{X: 30, Y: 10})
	if !ok || sx != 40 || sy != 8 {
		t.Fatalf("center at (%d,%d) visible=%v; want (40,8)", sx, sy, ok)
	}
	if got := c.ScreenToWorld(sx, sy); got != (gamemap.Point{X: 30, Y: 10}) {
		t.Errorf("ScreenToWorld = %v", got)
	}
	if _, _, ok := c.WorldToScreen(gamemap.Point{X: 0, Y: 0}); ok {
		t.Error("far corner should be off screen")
	}
}

func TestTileGlyphs(t *testing.T) {
	cases := []struct {
		tile    gamemap.Tile
		visible bool
		want    string
	}{
		{gamemap.MakeWall(), true, RangeTiles.Wall},
		{gamemap.MakeFloor(), true, RangeTiles.Floor},
		{gamemap.MakeLava(), true, RangeTiles.Lava},
		{gamemap.MakeDeepWater(), true, RangeTiles.DeepWater},
		{gamemap.MakeShallowWater(), true, RangeTiles.ShallowWater},
		{gamemap.MakeDoor(), true, RangeTiles.Door},
		{gamemap.MakeWall(), false, RangeTiles.DimWall},
		{gamemap.MakeLava(), false, RangeTiles.DimFloor},
		{gamemap.Tile{Kind: gamemap.TileFloor, Cloud: gamemap.CloudTeleport, CloudTurns: 3}, true, CloudGlyph},
	}
	for _, c := range cases {
		if got := RangeTiles.Tile(c.tile, c.visible); got != c.want {
			t.Errorf("Tile(%v, %v) = %q; want %q", c.tile.Kind, c.visible, got, c.want)
		}
	}
	if ItemGlyph(item.Item{Class: item.ClassMissile, Missile: item.MissileArrow}) != "🏹" {
		t.Error("arrows should draw as a bow")
	}
}

func TestDrawFrameHidesWhatThePlayerCannotSee(t *testing.T) {
	ss := newSimScreen(t)
	w := ecs.NewWorld()
	gmap := gamemap.New(30, 10)
	gmap.Carve(gamemap.Rect{X1: 1, Y1: 1, X2: 28, Y2: 8}, gamemap.MakeFloor())
	for y := 1; y <= 8; y++ {
		gmap.Set(10, y, gamemap.MakeWall())
	}
	player := w.CreateEntity()
	w.Add(player, component.TagPlayer{})
	w.Add(player, component.Position{X: 5, Y: 4})
	w.Add(player, component.Renderable{Glyph: "@", FGColor: tcell.ColorWhite})
	goblin := w.CreateEntity()
	w.Add(goblin, component.Position{X: 7, Y: 4})
	w.Add(goblin, component.Renderable{Glyph: "g", FGColor: tcell.ColorGreen})
	hidden := w.CreateEntity()
	w.Add(hidden, component.Position{X: 14, Y: 4})
	w.Add(hidden, component.Renderable{Glyph: "h", FGColor: tcell.ColorRed})

	r := NewRenderer(ss)
	r.CenterOn(gamemap.Point{X: 5, Y: 4})
	r.DrawFrame(w, gmap, player)

	check := func(p gamemap.Point, want rune) {
		t.Helper()
		sx, sy, ok := r.WorldToScreen(p)
		if !ok {
			t.Fatalf("%v off screen", p)
		}
		if got, _, _, _ := ss.GetContent(sx, sy); got != want {
			t.Errorf("cell %v = %q; want %q", p, got, want)
		}
	}
	check(gamemap.Point{X: 5, Y: 4}, '@')
	check(gamemap.Point{X: 7, Y: 4}, 'g')
	sx, sy, _ := r.WorldToScreen(gamemap.Point{X: 14, Y: 4})
	if got, _, _, _ := ss.GetContent(sx, sy); got == 'h' {
		t.Error("monster behind the wall was drawn")
	}
}

func TestDrawHUD(t *testing.T) {
	ss := newSimScreen(t)
	r := NewRenderer(ss)
	r.DrawHUD(HUD{
		Status:   "HP 30/30",
		Ammo:     "arrows x10",
		Targets:  []Target{{Glyph: "g", Name: "goblin", Dist: 4}, {Glyph: "k", Name: "kobold", Dist: 6}},
		Selected: 1,
		Messages: []string{"one", "two", "three", "four", "five"},
	})
	_, h := ss.Size()
	top := h - HUDRows
	if got := row(ss, top+1); !strings.HasPrefix(got, "HP 30/30  arrows x10") {
		t.Errorf("status row = %q", got)
	}
	if got := row(ss, top+2); !strings.Contains(got, ">2:k kobold(6)") || !strings.Contains(got, " 1:g goblin(4)") {
		t.Errorf("target row = %q", got)
	}
	if got := row(ss, top+4); !strings.HasPrefix(got, "two") {
		t.Errorf("oldest shown message = %q; want two", got)
	}
	if got := row(ss, h-1); !strings.HasPrefix(got, "five") {
		t.Errorf("newest message = %q; want five", got)
	}
}

func TestDrawHUDNoTargets(t *testing.T) {
	ss := newSimScreen(t)
	r := NewRenderer(ss)
	r.DrawHUD(HUD{Selected: -1})
	_, h := ss.Size()
	if got := row(ss, h-HUDRows+2); !strings.HasPrefix(got, "No targets in sight.") {
		t.Errorf("target row = %q", got)
	}
}

func TestConfirm(t *testing.T) {
	cases := []struct {
		name string
		keys []*tcell.EventKey
		want bool
	}{
		{"yes", []*tcell.EventKey{key('y')}, true},
		{"no", []*tcell.EventKey{key('n')}, false},
		{"ignores other keys", []*tcell.EventKey{key('x'), key('z'), key('Y')}, true},
		{"escape", []*tcell.EventKey{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ss := newSimScreen(t)
			for _, k := range c.keys {
				if err := ss.PostEvent(k); err != nil {
					t.Fatalf("PostEvent: %v", err)
				}
			}
			con := NewConsole(ss)
			if got := con.Confirm(context.Background(), "Fire? (y/n)"); got != c.want {
				t.Errorf("Confirm = %v; want %v", got, c.want)
			}
			_, h := ss.Size()
			if got := row(ss, h-1); !strings.HasPrefix(got, "Fire? (y/n)") {
				t.Errorf("prompt row = %q", got)
			}
		})
	}
}

func TestConfirmCancelledContext(t *testing.T) {
	ss := newSimScreen(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if NewConsole(ss).Confirm(ctx, "Fire?") {
		t.Error("cancelled context should decline")
	}
}

func TestAllyDecider(t *testing.T) {
	ss := newSimScreen(t)
	d := NewConsole(ss).AllyDecider()
	// No allies in the way: no question is asked.
	if !d.Decide(context.Background(), nil, beam.TraceStats{FoeCount: 1, FoePower: 3}) {
		t.Error("clear shot should not need confirming")
	}
	_ = ss.PostEvent(key('n'))
	if d.Decide(context.Background(), nil, beam.TraceStats{FriendCount: 2, FriendPower: 4}) {
		t.Error("declined prompt should stop the shot")
	}
	_, h := ss.Size()
	if got := row(ss, h-1); !strings.Contains(got, "2 allies") {
		t.Errorf("prompt row = %q", got)
	}
}
