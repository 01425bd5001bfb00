package service

import (
	"fmt"

	"hvac_fixtures/internal/models"
)

// Feature names reported by LogicError.
const (
	FeatureAuto     = "auto"
	FeatureDualAuto = "dual-auto"
	FeatureHeat     = "heat"
	FeatureCool     = "cool"
)

// Result is the outcome of Validate: exactly one of Ok, LogicError or ReversalError.
type Result interface {
	// Err returns nil for Ok and the failure itself otherwise.
	Err() error
	result()
}

// Ok is the explicit success outcome.
type Ok struct{}

func (Ok) Err() error { return nil }
func (Ok) result()    {}

// LogicError reports a mode the unit runs in, or is configured for, without
// the matching capability.
type LogicError struct {
	Feature string
	Detail  string
}

func (e LogicError) Error() string {
	return fmt.Sprintf("logic error [%s]: %s", e.Feature, e.Detail)
}
func (e LogicError) Err() error { return e }
func (LogicError) result()      {}

// ReversalError reports a range whose lower bound exceeds its upper bound.
type ReversalError struct {
	Lower  int
	Upper  int
	Detail string
}

func (e ReversalError) Error() string {
	return fmt.Sprintf("reversal error: %s (lower %d > upper %d)", e.Detail, e.Lower, e.Upper)
}
func (e ReversalError) Err() error { return e }
func (ReversalError) result()      {}

// Verdict is the validation result of one unit.
type Verdict struct {
	Case   int
	UnitID int
	Result Result
}

// Validator checks monitor/static pairs for consistency.
type Validator interface {
	Validate(m models.Monitor, s models.Static) Result
	ValidateCases(cases []models.Case) []Verdict
}

type ValidatorService struct{}

func NewValidatorService() *ValidatorService { return &ValidatorService{} }

func (ValidatorService) Validate(m models.Monitor, s models.Static) Result {
	return Validate(m, s)
}

// ValidateCases checks every unit of every case without stopping at failures.
func (ValidatorService) ValidateCases(cases []models.Case) []Verdict {
	var out []Verdict
	for _, c := range cases {
		for _, u := range c.Units {
			out = append(out, Verdict{
				Case:   c.Number,
				UnitID: u.Monitor.UnitID(),
				Result: Validate(u.Monitor, u.Static),
			})
		}
	}
	return out
}

// modeRule pairs an operating mode with the capability flag it needs.
type modeRule struct {
	mode    models.Mode
	flag    func(models.Capabilities) int
	feature string
	detail  string
}

// modeRules are evaluated in this order.
var modeRules = []modeRule{
	{models.ModeAuto, func(c models.Capabilities) int { return c.Auto }, FeatureAuto,
		"running in auto mode without auto capability"},
	{models.ModeDualAuto, func(c models.Capabilities) int { return c.Custom }, FeatureDualAuto,
		"running in dual-auto mode without dual-auto capability"},
	{models.ModeHeat, func(c models.Capabilities) int { return c.Heat }, FeatureHeat,
		"running in heat mode without heat capability"},
	{models.ModeCool, func(c models.Capabilities) int { return c.Cool }, FeatureCool,
		"running in cool mode without cool capability"},
}

// Validate applies the consistency rules in fixed order and reports the first
// violation: mode/capability mismatches, then dead-band presence against the
// custom-auto flag, then reversed auto, heat and cool ranges.
//
// The auto range is read through field 37 even though that field is never
// written to the static CSV.
func Validate(m models.Monitor, s models.Static) Result {
	caps := s.Capabilities()

	for _, r := range modeRules {
		if m.Mode() == r.mode && r.flag(caps) == 0 {
			return LogicError{Feature: r.feature, Detail: r.detail}
		}
	}

	_, hasDeadBand := s.DeadBand()
	if caps.Custom == 0 && hasDeadBand {
		return LogicError{Feature: FeatureDualAuto, Detail: "dead-band present without capability"}
	}
	if caps.Custom != 0 && !hasDeadBand {
		return LogicError{Feature: FeatureDualAuto, Detail: "dead-band missing despite capability"}
	}

	ranges := []struct {
		lower, upper models.FieldIndex
		detail       string
	}{
		{models.StaticLowerAuto, models.StaticUpperAuto, "auto range reversed"},
		{models.StaticLowerHeat, models.StaticUpperHeat, "heat range reversed"},
		{models.StaticLowerCool, models.StaticUpperCool, "cool range reversed"},
	}
	for _, r := range ranges {
		lower, _ := s.Field(r.lower)
		upper, _ := s.Field(r.upper)
		if lower > upper {
			return ReversalError{Lower: lower, Upper: upper, Detail: r.detail}
		}
	}

	return Ok{}
}
