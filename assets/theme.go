package assets

import (
	"missile-engine/internal/component"
	"missile-engine/internal/generate"
	"missile-engine/internal/item"
)

// Emoji constants used as entity glyphs.
const (
	GlyphRanger     = "🏹"
	GlyphSlinger    = "🧑"
	GlyphSkirmisher = "🥷"
	GlyphGoblin     = "👺"
	GlyphKobold     = "🦎"
	GlyphOrcArcher  = "👹"
	GlyphCentaur    = "🐎"
	GlyphHillGiant  = "🗿"
	GlyphMerfolk    = "🧜"
	GlyphDeepElf    = "🧝"
	GlyphSpriggan   = "🧚"
	GlyphFrostGiant = "🥶"
	GlyphWarDog     = "🐕"
	GlyphSquire     = "💂"
)

// ClassDef defines a player kit: stats, trained skills and what the
// player starts with.
type ClassDef struct {
	ID      string
	Name    string
	Emoji   string
	Lore    string // one-liner shown when the range opens
	Level   int
	MaxHP   int
	Str     int
	Dex     int
	Skills  [5]int // indexed by item.Skill
	Kit     []item.Item
	Wielded int // kit slot wielded at the start, -1 for none
}

// Classes is the ordered list of selectable player kits.
var Classes = []ClassDef{
	{
		ID:      "ranger",
		Name:    "Ranger",
		Emoji:   GlyphRanger,
		Lore:    "Bow in hand and a quiver of flame arrows for emergencies.",
		Level:   8,
		MaxHP:   45,
		Str:     11,
		Dex:     16,
		Skills:  [5]int{item.SkillThrowing: 4, item.SkillBows: 10},
		Kit:     []item.Item{Launcher(item.WeaponLongbow), Ammo(item.MissileArrow, item.BrandNormal, 30), Ammo(item.MissileArrow, item.BrandFlame, 8), Branded(item.WeaponSpear, item.BrandReturning)},
		Wielded: 0,
	},
	{
		ID:      "slinger",
		Name:    "Slinger",
		Emoji:   GlyphSlinger,
		Lore:    "Rocks are cheap. Stones from a sling hit harder than you would think.",
		Level:   6,
		MaxHP:   40,
		Str:     13,
		Dex:     14,
		Skills:  [5]int{item.SkillThrowing: 6, item.SkillSlings: 9, item.SkillDarts: 3},
		Kit:     []item.Item{Launcher(item.WeaponSling), Ammo(item.MissileStone, item.BrandNormal, 25), Ammo(item.MissileSlingBullet, item.BrandSteel, 6), Ammo(item.MissileDart, item.BrandNormal, 10)},
		Wielded: 0,
	},
	{
		ID:      "skirmisher",
		Name:    "Skirmisher",
		Emoji:   GlyphSkirmisher,
		Lore:    "Hands free, pockets full: javelins, poisoned darts and a net for anything fast.",
		Level:   7,
		MaxHP:   42,
		Str:     14,
		Dex:     15,
		Skills:  [5]int{item.SkillThrowing: 11, item.SkillDarts: 6},
		Kit:     []item.Item{Ammo(item.MissileJavelin, item.BrandNormal, 6), Ammo(item.MissileDart, item.BrandPoisoned, 12), Ammo(item.MissileNet, item.BrandNormal, 2), Ammo(item.MissileJavelin, item.BrandReturning, 1)},
		Wielded: -1,
	},
}

// ClassByID returns the kit with the given id.
func ClassByID(id string) (ClassDef, bool) {
	for _, c := range Classes {
		if c.ID == id {
			return c, true
		}
	}
	return ClassDef{}, false
}

// SpeciesDef describes one monster species on the range.
type SpeciesDef struct {
	ID         string
	Name       string
	Glyph      string
	Level      int
	MaxHP      int
	Evasion    int
	AC         int
	SightRange int
	Holiness   component.Holiness
	Resists    component.Resists
	Flying     bool
	Chaotic    bool
	Traits     component.Monster
	Kit        []item.Item
	Wielded    int // kit slot, -1 for none
}

// Species is the roster of everything that can stand on the range.
var Species = map[string]SpeciesDef{
	"goblin": {
		ID: "goblin", Name: "goblin", Glyph: GlyphGoblin, Level: 1, MaxHP: 8, Evasion: 10, AC: 2, SightRange: 7,
		Kit: []item.Item{Ammo(item.MissileDart, item.BrandNormal, 6)}, Wielded: -1,
	},
	"kobold": {
		ID: "kobold", Name: "kobold", Glyph: GlyphKobold, Level: 2, MaxHP: 10, Evasion: 12, AC: 2, SightRange: 7,
		Kit: []item.Item{Launcher(item.WeaponSling), Ammo(item.MissileStone, item.BrandNormal, 10)}, Wielded: 0,
	},
	"orc archer": {
		ID: "orc archer", Name: "orc archer", Glyph: GlyphOrcArcher, Level: 5, MaxHP: 28, Evasion: 9, AC: 4, SightRange: 8,
		Traits: component.Monster{Species: "orc", Archer: true},
		Kit:    []item.Item{Launcher(item.WeaponBow), Ammo(item.MissileArrow, item.BrandNormal, 12)}, Wielded: 0,
	},
	"centaur": {
		ID: "centaur", Name: "centaur", Glyph: GlyphCentaur, Level: 8, MaxHP: 44, Evasion: 8, AC: 4, SightRange: 9,
		Traits: component.Monster{Species: "centaur", Archer: true, Fighter: true},
		Kit:    []item.Item{Launcher(item.WeaponLongbow), Ammo(item.MissileArrow, item.BrandFlame, 10)}, Wielded: 0,
	},
	"hill giant": {
		ID: "hill giant", Name: "hill giant", Glyph: GlyphHillGiant, Level: 10, MaxHP: 80, Evasion: 3, AC: 3, SightRange: 7,
		Traits: component.Monster{Species: "giant", ThrowsRocks: true, Str: 24},
		Kit:    []item.Item{Ammo(item.MissileLargeRock, item.BrandNormal, 3)}, Wielded: -1,
	},
	"merfolk": {
		ID: "merfolk", Name: "merfolk javelineer", Glyph: GlyphMerfolk, Level: 9, MaxHP: 40, Evasion: 12, AC: 4, SightRange: 8,
		Traits:  component.Monster{Species: "merfolk", Fighter: true},
		Resists: component.Resists{Cold: 1},
		Kit:     []item.Item{Ammo(item.MissileJavelin, item.BrandNormal, 4)}, Wielded: -1,
	},
	"deep elf": {
		ID: "deep elf", Name: "deep elf sharpshooter", Glyph: GlyphDeepElf, Level: 9, MaxHP: 36, Evasion: 15, AC: 1, SightRange: 9,
		Traits: component.Monster{Species: "elf", Archer: true},
		Kit:    []item.Item{Launcher(item.WeaponHandCrossbow), Ammo(item.MissileBolt, item.BrandPenetrating, 6)}, Wielded: 0,
	},
	"spriggan": {
		ID: "spriggan", Name: "spriggan", Glyph: GlyphSpriggan, Level: 4, MaxHP: 14, Evasion: 18, AC: 1, SightRange: 8,
		Flying: true,
		Kit:    []item.Item{Launcher(item.WeaponBlowgun), Ammo(item.MissileNeedle, item.BrandSleep, 6)}, Wielded: 0,
	},
	"frost giant": {
		ID: "frost giant", Name: "frost giant", Glyph: GlyphFrostGiant, Level: 16, MaxHP: 120, Evasion: 3, AC: 9, SightRange: 8,
		Traits:  component.Monster{Species: "giant", FixedLauncherBrand: true, Str: 26},
		Resists: component.Resists{Cold: 3, Fire: -1},
		Kit:     []item.Item{Branded(item.WeaponLongbow, item.BrandFrost), Ammo(item.MissileArrow, item.BrandFlame, 8)}, Wielded: 0,
	},
	"war dog": {
		ID: "war dog", Name: "war dog", Glyph: GlyphWarDog, Level: 4, MaxHP: 20, Evasion: 12, AC: 2, SightRange: 7,
		Wielded: -1,
	},
	"squire": {
		ID: "squire", Name: "squire", Glyph: GlyphSquire, Level: 3, MaxHP: 18, Evasion: 8, AC: 5, SightRange: 7,
		Kit: []item.Item{Launcher(item.WeaponCrossbow), Ammo(item.MissileBolt, item.BrandNormal, 6)}, Wielded: 0,
	},
}

// EnemyTables lists what may be placed in the field at each difficulty
// (index 0 unused).
var EnemyTables = [4][]generate.EnemySpawnEntry{
	{},
	{
		{Species: "goblin", ThreatCost: 1},
		{Species: "kobold", ThreatCost: 2},
		{Species: "spriggan", ThreatCost: 3},
	},
	{
		{Species: "kobold", ThreatCost: 2},
		{Species: "orc archer", ThreatCost: 4},
		{Species: "merfolk", ThreatCost: 6},
		{Species: "deep elf", ThreatCost: 6},
	},
	{
		{Species: "orc archer", ThreatCost: 4},
		{Species: "centaur", ThreatCost: 7},
		{Species: "hill giant", ThreatCost: 8},
		{Species: "frost giant", ThreatCost: 12},
	},
}

// AllyTable lists the companions that may stand ahead of the firing line.
var AllyTable = []generate.EnemySpawnEntry{
	{Species: "war dog", ThreatCost: 2},
	{Species: "squire", ThreatCost: 2},
}
