package models

// Monitor is the operating-mode snapshot (R02) of one indoor unit.
type Monitor struct {
	mode    Mode
	limited Limited
	unitID  int
}

// NewMonitor builds a Monitor from parsed integers. Values are stored verbatim.
func NewMonitor(mode, limited, unitID int) Monitor {
	return Monitor{mode: Mode(mode), limited: Limited(limited), unitID: unitID}
}

func (m Monitor) Mode() Mode       { return m.mode }
func (m Monitor) Limited() Limited { return m.limited }
func (m Monitor) UnitID() int      { return m.unitID }

// Field returns the value stored at a wire index.
func (m Monitor) Field(idx FieldIndex) (int, bool) {
	switch idx {
	case MonitorUnitID:
		return m.unitID, true
	case MonitorMode:
		return int(m.mode), true
	case MonitorLimited:
		return int(m.limited), true
	}
	return 0, false
}
