package generate

import (
	"math/rand"
	"testing"

	"missile-engine/internal/gamemap"
	"missile-engine/internal/item"
)

func defaultTestConfig(seed int64) *Config {
	return &Config{
		MapWidth:    40,
		MapHeight:   13,
		Pools:       3,
		Cover:       4,
		Bays:        3,
		EnemyBudget: 12,
		EnemyTable: []EnemySpawnEntry{
			{Species: "kobold", ThreatCost: 2},
			{Species: "orc archer", ThreatCost: 5},
		},
		AllyCount: 2,
		AllyTable: []EnemySpawnEntry{{Species: "war dog", ThreatCost: 1}},
		ItemCount: 3,
		ItemTable: []ItemSpawnEntry{{Item: item.Item{Class: item.ClassMissile, Missile: item.MissileArrow, Quantity: 10}}},
		Rand:      rand.New(rand.NewSource(seed)),
	}
}

func TestGenerateLayout(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		cfg := defaultTestConfig(seed)
		gmap, lay := Generate(cfg)
		if gmap.Width != 40 || gmap.Height != 13 {
			t.Fatalf("size = %dx%d", gmap.Width, gmap.Height)
		}
		if !gmap.IsWalkable(lay.Spawn.X, lay.Spawn.Y) {
			t.Errorf("seed %d: spawn %v is not walkable", seed, lay.Spawn)
		}
		// The border is solid apart from the entry door.
		for x := 0; x < gmap.Width; x++ {
			if gmap.At(x, 0).Kind != gamemap.TileWall || gmap.At(x, gmap.Height-1).Kind != gamemap.TileWall {
				t.Fatalf("seed %d: border breached at column %d", seed, x)
			}
		}
		// Hazards never reach the firing line.
		for y := lay.Line.Y1; y <= lay.Line.Y2; y++ {
			for x := lay.Line.X1; x <= lay.Line.X2; x++ {
				if k := gmap.At(x, y).Kind; k != gamemap.TileFloor {
					t.Fatalf("seed %d: firing line tile (%d,%d) is %v", seed, x, y, k)
				}
			}
		}
	}
}

func TestGenerateTinyConfigIsClamped(t *testing.T) {
	gmap, lay := Generate(&Config{MapWidth: 3, MapHeight: 2, Rand: rand.New(rand.NewSource(1))})
	if gmap.Width < 16 || gmap.Height < 7 {
		t.Errorf("size = %dx%d; want at least 16x7", gmap.Width, gmap.Height)
	}
	if !gmap.IsWalkable(lay.Spawn.X, lay.Spawn.Y) {
		t.Error("spawn not walkable")
	}
}

func TestPopulateBudgetRespected(t *testing.T) {
	cfg := defaultTestConfig(7)
	gmap, lay := Generate(cfg)
	res := Populate(gmap, lay, cfg)
	spent := 0
	for _, e := range res.Enemies {
		spent += e.Entry.ThreatCost
	}
	if spent > cfg.EnemyBudget {
		t.Errorf("spent %d of budget %d", spent, cfg.EnemyBudget)
	}
	if len(res.Enemies) == 0 {
		t.Error("no enemies placed")
	}
}

func TestPopulateEveryBayGetsEnemy(t *testing.T) {
	cfg := defaultTestConfig(3)
	cfg.Cover = 0
	gmap, lay := Generate(cfg)
	res := Populate(gmap, lay, cfg)
	for i, bay := range Bays(lay.Field, cfg.Bays) {
		found := false
		for _, e := range res.Enemies {
			if e.X >= bay.X1 && e.X <= bay.X2 {
				found = true
			}
		}
		if !found {
			t.Errorf("bay %d has no enemy", i)
		}
	}
}

func TestPopulateNoSharedTiles(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		cfg := defaultTestConfig(seed)
		gmap, lay := Generate(cfg)
		res := Populate(gmap, lay, cfg)
		seen := map[gamemap.Point]bool{lay.Spawn: true}
		check := func(x, y int) {
			p := gamemap.Point{X: x, Y: y}
			if seen[p] {
				t.Errorf("seed %d: %v used twice", seed, p)
			}
			if !gmap.IsWalkable(x, y) {
				t.Errorf("seed %d: %v is not walkable", seed, p)
			}
			seen[p] = true
		}
		for _, e := range res.Enemies {
			check(e.X, e.Y)
		}
		for _, a := range res.Allies {
			check(a.X, a.Y)
			if a.X <= lay.Line.X2 || a.X >= lay.Field.X1 {
				t.Errorf("seed %d: ally at column %d is not ahead of the line", seed, a.X)
			}
		}
		for _, it := range res.Items {
			check(it.X, it.Y)
		}
	}
}

func TestBays(t *testing.T) {
	field := gamemap.Rect{X1: 10, Y1: 1, X2: 21, Y2: 5}
	bays := Bays(field, 3)
	if len(bays) != 3 {
		t.Fatalf("len = %d", len(bays))
	}
	if bays[0].X1 != 10 || bays[2].X2 != 21 {
		t.Errorf("bays %v do not cover the field", bays)
	}
	for i := 1; i < len(bays); i++ {
		if bays[i].X1 != bays[i-1].X2+1 {
			t.Errorf("gap between bay %d and %d", i-1, i)
		}
	}
	if got := Bays(field, 0); len(got) != 1 || got[0] != field {
		t.Errorf("Bays(field, 0) = %v", got)
	}
}

func TestAffordableEnemiesFilter(t *testing.T) {
	table := []EnemySpawnEntry{{Species: "a", ThreatCost: 1}, {Species: "b", ThreatCost: 4}, {Species: "c", ThreatCost: 9}}
	got := affordableEnemies(table, 4)
	if len(got) != 2 || got[1].Species != "b" {
		t.Errorf("affordable = %v", got)
	}
	if cheapestEntry(table[1:]).Species != "b" {
		t.Error("cheapest of b,c should be b")
	}
}
