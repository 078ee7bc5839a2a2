package item

// Brand is a special property carried by a launcher, thrown weapon or
// piece of ammunition.
type Brand uint8

const (
	BrandNormal Brand = iota
	BrandPoisoned
	BrandFlame
	BrandFrost
	BrandChaos
	BrandSilver
	BrandPenetrating
	BrandDispersal
	BrandElectric
	BrandHoly
	BrandParalysis
	BrandSleep
	BrandConfusion
	BrandSlow
	BrandFrenzy
	BrandExploding
	BrandSteel
	BrandVorpal
	BrandReturning
	numBrands
)

var brandNames = [numBrands]string{
	BrandNormal:      "normal",
	BrandPoisoned:    "poison",
	BrandFlame:       "flame",
	BrandFrost:       "frost",
	BrandChaos:       "chaos",
	BrandSilver:      "silver",
	BrandPenetrating: "penetration",
	BrandDispersal:   "dispersal",
	BrandElectric:    "electrocution",
	BrandHoly:        "holy wrath",
	BrandParalysis:   "paralysis",
	BrandSleep:       "sleeping",
	BrandConfusion:   "confusion",
	BrandSlow:        "slowing",
	BrandFrenzy:      "frenzy",
	BrandExploding:   "explosion",
	BrandSteel:       "steel",
	BrandVorpal:      "vorpality",
	BrandReturning:   "returning",
}

// String returns the noun used in "arrow of <brand>".
func (b Brand) String() string {
	if b >= numBrands {
		return "unknown"
	}
	return brandNames[b]
}

// Brands lists every brand in declaration order.
func Brands() []Brand {
	out := make([]Brand, 0, numBrands)
	for b := BrandNormal; b < numBrands; b++ {
		out = append(out, b)
	}
	return out
}

// Elemental reports whether b competes for the single elemental flavour.
func (b Brand) Elemental() bool {
	return b == BrandFlame || b == BrandFrost || b == BrandChaos
}

// NeedleStatus reports whether b is one of the blowgun status brands.
func (b Brand) NeedleStatus() bool {
	switch b {
	case BrandParalysis, BrandSleep, BrandConfusion, BrandSlow, BrandFrenzy:
		return true
	}
	return false
}

// Opposes reports whether b and other are opposite elements.
func (b Brand) Opposes(other Brand) bool {
	return (b == BrandFlame && other == BrandFrost) || (b == BrandFrost && other == BrandFlame)
}
