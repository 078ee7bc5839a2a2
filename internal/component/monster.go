package component

import "missile-engine/internal/ecs"

const CMonster ecs.ComponentType = 12

// Monster carries the species traits that shape a monster's shots.
type Monster struct {
	Species            string
	Fighter            bool // skilled: +20% damage
	Archer             bool // trained marksman: extra skill
	ThrowsRocks        bool
	FixedLauncherBrand bool // launcher keeps its element over branded ammo
	Str, Dex           int  // zero means derive from level
}

func (Monster) Type() ecs.ComponentType { return CMonster }
