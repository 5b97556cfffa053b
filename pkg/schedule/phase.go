package schedule

import (
	"github.com/envelope-zero/paycheck/internal/types"
)

// PhaseAnchored is a recurring pay schedule anchored at a known payday.
//
// The schedule only walks forward from the anchor. Dates before the anchor
// are never paydays.
type PhaseAnchored struct {
	Anchor    types.Date
	Frequency Frequency
}

func (p PhaseAnchored) Mode() Mode {
	return ModePhaseAnchored
}

// step returns the payday following d.
//
// Monthly paydays step from the previous payday, not from the anchor, so a
// day clamped to the end of a short month carries into the following months.
func (p PhaseAnchored) step(d types.Date) types.Date {
	if days, ok := p.Frequency.days(); ok {
		return d.AddDays(days)
	}

	return d.AddMonths(1)
}

// Next returns the first payday on or after from.
func (p PhaseAnchored) Next(from types.Date) types.Date {
	if !p.Frequency.Valid() {
		return types.Date{}
	}

	cursor := p.Anchor

	// Skip whole periods for day based frequencies
	if days, ok := p.Frequency.days(); ok && from.After(p.Anchor) {
		elapsed := int(from.Time().Sub(p.Anchor.Time()).Hours() / 24)
		cursor = p.Anchor.AddDays(elapsed / days * days)
	}

	for cursor.Before(from) {
		cursor = p.step(cursor)
	}

	return cursor
}

func (p PhaseAnchored) Paydays(from, to types.Date) []types.Date {
	if !p.Frequency.Valid() || to.Before(from) {
		return nil
	}

	var paydays []types.Date
	for cursor := p.Next(from); !cursor.After(to); cursor = p.step(cursor) {
		paydays = append(paydays, cursor)
	}

	return paydays
}

func (p PhaseAnchored) Count(from, to types.Date) int {
	if !p.Frequency.Valid() || to.Before(from) {
		return 0
	}

	count := 0
	for cursor := p.Next(from); !cursor.After(to); cursor = p.step(cursor) {
		count++
	}

	return count
}
