package game

import (
	"math"
	"math/rand"

	"missile-engine/assets"
	"missile-engine/internal/generate"
)

// MaxDifficulty is the hardest range on offer.
const MaxDifficulty = 3

// rangeConfig builds a generate.Config for the given difficulty.
func rangeConfig(difficulty int, rng *rand.Rand) *generate.Config {
	difficulty = min(max(difficulty, 1), MaxDifficulty)
	t := 0.0
	if MaxDifficulty > 1 {
		t = float64(difficulty-1) / float64(MaxDifficulty-1)
	}

	return &generate.Config{
		MapWidth:    lerpi(32, 44, t),
		MapHeight:   lerpi(11, 15, t),
		Pools:       lerpi(2, 5, t),
		Cover:       lerpi(2, 6, t),
		Bays:        3,
		EnemyBudget: lerpi(5, 26, t),
		EnemyTable:  assets.EnemyTables[difficulty],
		AllyCount:   1 + rng.Intn(2),
		AllyTable:   assets.AllyTable,
		ItemCount:   lerpi(2, 4, t),
		ItemTable:   assets.SpareAmmo,
		Rand:        rng,
	}
}

func lerpi(a, b int, t float64) int {
	return int(math.Round(float64(a) + t*float64(b-a)))
}
