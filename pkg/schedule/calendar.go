package schedule

import (
	"github.com/envelope-zero/paycheck/internal/types"
)

// midMonthPayday is the day of the month that is always a payday
// for the calendar fixed schedule.
const midMonthPayday = 15

// CalendarFixed is the schedule used when no pay profile is known.
// Paydays are the 15th and the last day of every month.
type CalendarFixed struct{}

func (CalendarFixed) Mode() Mode {
	return ModeCalendarFixed
}

func (CalendarFixed) Next(from types.Date) types.Date {
	if from.Day() <= midMonthPayday {
		return types.NewDate(from.Year(), from.Month(), midMonthPayday)
	}

	return from.EndOfMonth()
}

// following returns the payday after the payday d.
func (CalendarFixed) following(d types.Date) types.Date {
	if d.Day() == midMonthPayday {
		return d.EndOfMonth()
	}

	next := d.FirstOfMonth().AddMonths(1)
	return types.NewDate(next.Year(), next.Month(), midMonthPayday)
}

func (c CalendarFixed) Paydays(from, to types.Date) []types.Date {
	if to.Before(from) {
		return nil
	}

	var paydays []types.Date
	for d := c.Next(from); !d.After(to); d = c.following(d) {
		paydays = append(paydays, d)
	}

	return paydays
}

func (c CalendarFixed) Count(from, to types.Date) int {
	if to.Before(from) {
		return 0
	}

	count := 0
	for d := c.Next(from); !d.After(to); d = c.following(d) {
		count++
	}

	return count
}
