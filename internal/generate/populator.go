package generate

import "missile-engine/internal/gamemap"

// CreatureSpawn describes one creature to create.
type CreatureSpawn struct {
	Entry EnemySpawnEntry
	X, Y  int
}

// ItemSpawn describes one floor item to create.
type ItemSpawn struct {
	Entry ItemSpawnEntry
	X, Y  int
}

// PopulateResult is returned by Populate with entity spawn data.
type PopulateResult struct {
	Enemies []CreatureSpawn
	Allies  []CreatureSpawn
	Items   []ItemSpawn
}

// Populate places targets in the field, allies on the firing line and
// spare ammunition near the spawn.
func Populate(gmap *gamemap.GameMap, lay Layout, cfg *Config) PopulateResult {
	var result PopulateResult

	// occupied tracks every position already claimed this pass so that no two
	// entities share a tile.
	occupied := map[gamemap.Point]bool{lay.Spawn: true}
	pick := func(r gamemap.Rect) (int, int, bool) {
		return pickFree(gmap, r, cfg, occupied)
	}
	claim := func(x, y int) { occupied[gamemap.Point{X: x, Y: y}] = true }

	bays := Bays(lay.Field, cfg.Bays)
	budget := cfg.EnemyBudget

	// Phase 1: guarantee one enemy in every bay (cheapest that fits budget).
	if len(cfg.EnemyTable) > 0 {
		for _, bay := range bays {
			aff := affordableEnemies(cfg.EnemyTable, budget)
			if len(aff) == 0 {
				break
			}
			entry := cheapestEntry(aff)
			x, y, ok := pick(bay)
			if !ok {
				continue
			}
			claim(x, y)
			result.Enemies = append(result.Enemies, CreatureSpawn{Entry: entry, X: x, Y: y})
			budget -= entry.ThreatCost
		}
	}

	// Phase 2: spend the remaining budget on random bays and species.
	for budget > 0 && len(cfg.EnemyTable) > 0 && len(bays) > 0 {
		bay := bays[cfg.Rand.Intn(len(bays))]
		affordable := affordableEnemies(cfg.EnemyTable, budget)
		if len(affordable) == 0 {
			break
		}
		entry := affordable[cfg.Rand.Intn(len(affordable))]
		budget -= entry.ThreatCost
		x, y, ok := pick(bay)
		if !ok {
			continue
		}
		claim(x, y)
		result.Enemies = append(result.Enemies, CreatureSpawn{Entry: entry, X: x, Y: y})
	}

	// Allies stand a little ahead of the player so they can get in the way.
	ahead := gamemap.Rect{X1: lay.Line.X2 + 1, Y1: lay.Line.Y1, X2: lay.Line.X2 + 2, Y2: lay.Line.Y2}
	for i := 0; i < cfg.AllyCount && len(cfg.AllyTable) > 0; i++ {
		entry := cfg.AllyTable[cfg.Rand.Intn(len(cfg.AllyTable))]
		x, y, ok := pick(ahead)
		if !ok {
			continue
		}
		claim(x, y)
		result.Allies = append(result.Allies, CreatureSpawn{Entry: entry, X: x, Y: y})
	}

	for i := 0; i < cfg.ItemCount && len(cfg.ItemTable) > 0; i++ {
		entry := cfg.ItemTable[cfg.Rand.Intn(len(cfg.ItemTable))]
		x, y, ok := pick(lay.Line)
		if !ok {
			continue
		}
		claim(x, y)
		result.Items = append(result.Items, ItemSpawn{Entry: entry, X: x, Y: y})
	}

	return result
}

// Bays splits the field into n vertical strips of roughly equal width.
func Bays(field gamemap.Rect, n int) []gamemap.Rect {
	width := field.X2 - field.X1 + 1
	n = min(max(n, 1), max(width, 1))
	out := make([]gamemap.Rect, 0, n)
	for i := range n {
		x1 := field.X1 + i*width/n
		x2 := field.X1 + (i+1)*width/n - 1
		out = append(out, gamemap.Rect{X1: x1, Y1: field.Y1, X2: x2, Y2: field.Y2})
	}
	return out
}

func affordableEnemies(table []EnemySpawnEntry, budget int) []EnemySpawnEntry {
	var out []EnemySpawnEntry
	for _, e := range table {
		if e.ThreatCost <= budget {
			out = append(out, e)
		}
	}
	return out
}

// cheapestEntry returns the entry with the lowest ThreatCost from a non-empty slice.
func cheapestEntry(entries []EnemySpawnEntry) EnemySpawnEntry {
	best := entries[0]
	for _, e := range entries[1:] {
		if e.ThreatCost < best.ThreatCost {
			best = e
		}
	}
	return best
}

// pickFree tries up to 20 times to find an unoccupied floor tile inside r.
// ok is false when every attempt hit an occupied or unwalkable tile.
func pickFree(gmap *gamemap.GameMap, r gamemap.Rect, cfg *Config, occupied map[gamemap.Point]bool) (int, int, bool) {
	const maxAttempts = 20
	for range maxAttempts {
		x, y := randomIn(r, cfg.Rand)
		if gmap.IsWalkable(x, y) && !occupied[gamemap.Point{X: x, Y: y}] {
			return x, y, true
		}
	}
	return 0, 0, false
}
