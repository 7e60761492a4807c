package layout

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitAuto    Unit = iota // Size determined by cell measurements
	UnitFixed               // Absolute size
	UnitPercent             // Percentage of the axis's available space
)

// Value describes how a line or element is sized.
type Value struct {
	Amount float64
	Unit   Unit
}

// Auto returns a Value that is computed from cell measurements.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// Fixed returns a Value representing an absolute size.
func Fixed(n float64) Value {
	return Value{Amount: n, Unit: UnitFixed}
}

// Percent returns a Value representing a percentage of available space.
// The value is on a 0-100 scale (50.0 = 50%).
func Percent(p float64) Value {
	return Value{Amount: p, Unit: UnitPercent}
}

// Resolve computes the actual size given available space.
// For UnitAuto, returns the fallback value.
func (v Value) Resolve(available, fallback float64) float64 {
	switch v.Unit {
	case UnitFixed:
		return v.Amount
	case UnitPercent:
		return available * v.Amount / 100.0
	default:
		return fallback
	}
}

// IsAuto returns true if this value should be computed from measurements.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}

// Part returns the AxisPart this value describes.
func (v Value) Part() AxisPart {
	switch v.Unit {
	case UnitFixed:
		return FixedPart(v.Amount)
	case UnitPercent:
		return PercentPart(v.Amount)
	default:
		return FlexPart()
	}
}
