package models

// FieldIndex is a column position in the controller protocol's record layout.
// The numbering is part of the wire contract and must not be renumbered.
type FieldIndex int

// Record widths, in columns, of the rows the controller expects.
const (
	MonitorWidth = 64
	StaticWidth  = 83
	DynamicWidth = 9
)

// Monitor (R02) field indexes.
const (
	MonitorUnitID  FieldIndex = 1
	MonitorMode    FieldIndex = 9
	MonitorLimited FieldIndex = 55
)

// Static (R03) field indexes.
const (
	StaticUnitID    FieldIndex = 0
	StaticHasAuto   FieldIndex = 18
	StaticHasHeat   FieldIndex = 19
	StaticHasCool   FieldIndex = 20
	StaticLowerAuto FieldIndex = 37
	StaticUpperAuto FieldIndex = 38
	StaticLowerHeat FieldIndex = 39
	StaticUpperHeat FieldIndex = 40
	StaticLowerCool FieldIndex = 41
	StaticUpperCool FieldIndex = 42
	StaticHasCustom FieldIndex = 81
	StaticDeadBand  FieldIndex = 82
)

// Dynamic (R15) field indexes.
const (
	DynamicUnitID    FieldIndex = 0
	DynamicStatus    FieldIndex = 1
	DynamicLowerAuto FieldIndex = 3
	DynamicUpperAuto FieldIndex = 4
	DynamicLowerHeat FieldIndex = 5
	DynamicUpperHeat FieldIndex = 6
	DynamicLowerCool FieldIndex = 7
	DynamicUpperCool FieldIndex = 8
)

// NoDeadBand is the wire sentinel for an absent dead-band.
const NoDeadBand = -1

// Record is implemented by every record kind. Field reports false for an index
// the record does not carry.
type Record interface {
	Field(idx FieldIndex) (int, bool)
}

// Mode is the operating mode reported in the Monitor record.
type Mode int

const (
	ModeCool Mode = iota
	ModeDry
	ModeHeat
	ModeAuto
	ModeFan
	ModeMixed
	ModeNone
	ModeDualAuto
)

func (m Mode) String() string {
	switch m {
	case ModeCool:
		return "cool"
	case ModeDry:
		return "dry"
	case ModeHeat:
		return "heat"
	case ModeAuto:
		return "auto"
	case ModeFan:
		return "fan"
	case ModeMixed:
		return "mixed"
	case ModeNone:
		return "none"
	case ModeDualAuto:
		return "dual-auto"
	default:
		return "unknown"
	}
}

// Limited reports whether an indoor unit carries a temperature range restriction.
type Limited int

const (
	LimitedNone Limited = iota
	LimitedPresent
	LimitedMixed
	LimitedUnsupported
)

func (l Limited) String() string {
	switch l {
	case LimitedNone:
		return "none"
	case LimitedPresent:
		return "present"
	case LimitedMixed:
		return "mixed"
	case LimitedUnsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}
