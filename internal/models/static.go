package models

// Range is a lower/upper temperature pair in the record's fixed-point unit.
type Range struct {
	Lower int
	Upper int
}

// Reversed reports whether the lower bound exceeds the upper bound.
func (r Range) Reversed() bool { return r.Lower > r.Upper }

// Capabilities holds the static capability flags. A flag is set when non-zero.
type Capabilities struct {
	Auto   int
	Heat   int
	Cool   int
	Custom int
}

// Static is the capability and range descriptor (R03) of one indoor unit.
// Temperatures are tenths of a degree (0..635); the dead-band is tenths (0..70)
// or nil when the unit has no custom-auto capability.
type Static struct {
	caps     Capabilities
	auto     Range
	heat     Range
	cool     Range
	deadBand *int
	unitID   int
}

// NewStatic builds a Static record. deadBand is copied so the record stays immutable.
func NewStatic(caps Capabilities, auto, heat, cool Range, deadBand *int, unitID int) Static {
	s := Static{caps: caps, auto: auto, heat: heat, cool: cool, unitID: unitID}
	if deadBand != nil {
		v := *deadBand
		s.deadBand = &v
	}
	return s
}

// DeadBandFromWire maps the wire sentinel -1 to an absent dead-band.
func DeadBandFromWire(v int) *int {
	if v == NoDeadBand {
		return nil
	}
	return &v
}

func (s Static) Capabilities() Capabilities { return s.caps }
func (s Static) AutoRange() Range           { return s.auto }
func (s Static) HeatRange() Range           { return s.heat }
func (s Static) CoolRange() Range           { return s.cool }
func (s Static) UnitID() int                { return s.unitID }

// DeadBand returns the dead-band and whether one is defined.
func (s Static) DeadBand() (int, bool) {
	if s.deadBand == nil {
		return 0, false
	}
	return *s.deadBand, true
}

// Field returns the value stored at a wire index. An absent dead-band reads
// back as NoDeadBand.
func (s Static) Field(idx FieldIndex) (int, bool) {
	switch idx {
	case StaticUnitID:
		return s.unitID, true
	case StaticHasAuto:
		return s.caps.Auto, true
	case StaticHasHeat:
		return s.caps.Heat, true
	case StaticHasCool:
		return s.caps.Cool, true
	case StaticHasCustom:
		return s.caps.Custom, true
	case StaticLowerAuto:
		return s.auto.Lower, true
	case StaticUpperAuto:
		return s.auto.Upper, true
	case StaticLowerHeat:
		return s.heat.Lower, true
	case StaticUpperHeat:
		return s.heat.Upper, true
	case StaticLowerCool:
		return s.cool.Lower, true
	case StaticUpperCool:
		return s.cool.Upper, true
	case StaticDeadBand:
		if v, ok := s.DeadBand(); ok {
			return v, true
		}
		return NoDeadBand, true
	}
	return 0, false
}
