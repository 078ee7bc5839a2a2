package hook

// RangeKind names a range effect.
type RangeKind uint8

const (
	RangePenetrate RangeKind = iota
)

// RangeEffect changes how far a beam travels.
type RangeEffect struct {
	Kind RangeKind
}

// Continues reports whether the beam flies on past a victim it hit.
func (e RangeEffect) Continues() bool {
	return e.Kind == RangePenetrate
}

// Continues reports whether any of effects keeps the beam going.
func Continues(effects []RangeEffect) bool {
	for _, e := range effects {
		if e.Continues() {
			return true
		}
	}
	return false
}
