package models

// Dynamic is the requested temperature descriptor (R15) of one indoor unit.
// Bounds are whole degrees in 0..127.
type Dynamic struct {
	status int
	auto   Range
	heat   Range
	cool   Range
	unitID int
}

func NewDynamic(status int, auto, heat, cool Range, unitID int) Dynamic {
	return Dynamic{status: status, auto: auto, heat: heat, cool: cool, unitID: unitID}
}

func (d Dynamic) Status() int      { return d.status }
func (d Dynamic) AutoRange() Range { return d.auto }
func (d Dynamic) HeatRange() Range { return d.heat }
func (d Dynamic) CoolRange() Range { return d.cool }
func (d Dynamic) UnitID() int      { return d.unitID }

// Field returns the value stored at a wire index.
func (d Dynamic) Field(idx FieldIndex) (int, bool) {
	switch idx {
	case DynamicUnitID:
		return d.unitID, true
	case DynamicStatus:
		return d.status, true
	case DynamicLowerAuto:
		return d.auto.Lower, true
	case DynamicUpperAuto:
		return d.auto.Upper, true
	case DynamicLowerHeat:
		return d.heat.Lower, true
	case DynamicUpperHeat:
		return d.heat.Upper, true
	case DynamicLowerCool:
		return d.cool.Lower, true
	case DynamicUpperCool:
		return d.cool.Upper, true
	}
	return 0, false
}
