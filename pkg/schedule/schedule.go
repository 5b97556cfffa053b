// Package schedule counts paydays.
//
// Two strategies exist. PhaseAnchored follows a fixed recurrence that starts
// at the last known payday of a pay profile. CalendarFixed is used when no pay
// profile exists and treats the 15th and the last day of every month as paydays.
//
// The two strategies can disagree on the number of paydays for the same range.
// This is not reconciled, use Compare to detect it.
package schedule

import (
	"github.com/envelope-zero/paycheck/internal/types"
)

// Mode names a payday counting strategy.
type Mode string

const (
	ModePhaseAnchored Mode = "phase-anchored"
	ModeCalendarFixed Mode = "calendar-fixed"
)

// PaydaySchedule is a sequence of paydays.
type PaydaySchedule interface {
	// Next returns the first payday on or after from.
	Next(from types.Date) types.Date

	// Paydays returns all paydays between from and to, both inclusive.
	Paydays(from, to types.Date) []types.Date

	// Count returns the number of paydays between from and to, both inclusive.
	Count(from, to types.Date) int

	// Mode returns the strategy of the schedule.
	Mode() Mode
}

// Select returns the schedule to use for a pay profile.
//
// With a usable profile, the phase anchored schedule is returned.
// Without one, the calendar fixed schedule is used.
func Select(lastPayday *types.Date, frequency Frequency) PaydaySchedule {
	if lastPayday == nil || lastPayday.IsZero() || !frequency.Valid() {
		return CalendarFixed{}
	}

	return PhaseAnchored{
		Anchor:    *lastPayday,
		Frequency: frequency,
	}
}

// RemainingPaydays returns the number of paydays of the phase anchored
// schedule defined by lastPayday and frequency that fall between start and
// target, both inclusive.
//
// It returns 0 if any input is missing or target is before start.
func RemainingPaydays(lastPayday *types.Date, frequency Frequency, target *types.Date, start types.Date) int {
	if lastPayday == nil || lastPayday.IsZero() || !frequency.Valid() {
		return 0
	}

	if target == nil || target.IsZero() {
		return 0
	}

	return PhaseAnchored{Anchor: *lastPayday, Frequency: frequency}.Count(start, *target)
}

// Comparison holds the paydays of two schedules for the same range.
type Comparison struct {
	From          types.Date
	To            types.Date
	PhaseAnchored []types.Date
	CalendarFixed []types.Date
	Discrepancy   bool // The schedules disagree on the number of paydays
}

// Compare computes the paydays of both strategies between from and to.
func Compare(phase PhaseAnchored, from, to types.Date) Comparison {
	c := Comparison{
		From:          from,
		To:            to,
		PhaseAnchored: phase.Paydays(from, to),
		CalendarFixed: CalendarFixed{}.Paydays(from, to),
	}

	c.Discrepancy = len(c.PhaseAnchored) != len(c.CalendarFixed)
	return c
}
