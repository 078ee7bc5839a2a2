package component

import (
	"missile-engine/internal/ecs"
	"missile-engine/internal/item"
)

const (
	CStats  ecs.ComponentType = 10
	CSkills ecs.ComponentType = 11
)

// Stats are the attributes the ballistic formula reads. StrBase and
// DexBase are the species baseline the stat curves centre on.
type Stats struct {
	Str, Dex         int
	StrBase, DexBase int
	SlayHit, SlayDam int // from rings and similar
	ShieldPenalty    int
}

func (Stats) Type() ecs.ComponentType { return CStats }

// Skills holds trained skill levels indexed by item.Skill.
type Skills struct {
	Levels [5]int
}

func (Skills) Type() ecs.ComponentType { return CSkills }

// Level returns the trained level of s.
func (s Skills) Level(sk item.Skill) int {
	if int(sk) >= len(s.Levels) {
		return 0
	}
	return s.Levels[sk]
}
