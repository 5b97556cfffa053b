package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/envelope-zero/paycheck/internal/display"
	"github.com/envelope-zero/paycheck/internal/types"
	"github.com/envelope-zero/paycheck/pkg/allocation"
	"github.com/envelope-zero/paycheck/pkg/schedule"
)

// RenderPlan renders a savings plan as computed for today.
func RenderPlan(result allocation.Result, today types.Date, f display.Formatter) string {
	var b strings.Builder

	b.WriteString(RenderTitle(fmt.Sprintf("SAVINGS PLAN %s", f.Date(today))))
	b.WriteString("\n\n")

	if result.Mode == schedule.ModeCalendarFixed {
		b.WriteString("  No pay profile set, paydays are counted on the 15th and the last day of each month.\n\n")
	}

	if len(result.Allocations) == 0 {
		b.WriteString("  No goals yet.\n")
		return b.String()
	}

	rows := make([][]string, 0, len(result.Allocations))
	for _, a := range result.Allocations {
		name := a.Goal.Name
		if !a.Goal.Active {
			name += " (inactive)"
		}

		paydays := "-"
		if a.RemainingPaydays != nil {
			paydays = strconv.Itoa(*a.RemainingPaydays)
		}

		rows = append(rows, []string{
			name,
			strconv.Itoa(a.Goal.Priority),
			f.Date(a.Goal.TargetDate),
			f.Amount(a.Goal.TargetAmount),
			paydays,
			f.Amount(a.RequiredPerPaycheck),
			f.Amount(a.RecommendedPerPaycheck),
		})
	}

	b.WriteString(RenderTable(Table{
		Title:   "Goals",
		Headers: []string{"Goal", "Priority", "Target date", "Target", "Paydays", "Required", "Recommended"},
		Rows:    rows,
	}))
	b.WriteString("\n")

	gap := "-"
	if result.Gap != nil {
		gap = f.Amount(*result.Gap)
		if result.Gap.IsNegative() {
			gap = shortfallStyle.Render(gap)
		} else {
			gap = surplusStyle.Render(gap)
		}
	}

	b.WriteString(RenderTable(Table{
		Title:   "Per paycheck",
		Headers: []string{"Total", "Amount"},
		Rows: [][]string{
			{"Savings", f.Amount(result.TotalSavings)},
			{"Required", f.Amount(result.TotalRequired)},
			{"Gap", gap},
		},
	}))

	return b.String()
}

// RenderPaydays renders a list of paydays.
func RenderPaydays(title string, paydays []types.Date, f display.Formatter) string {
	rows := make([][]string, 0, len(paydays))
	for i, p := range paydays {
		rows = append(rows, []string{strconv.Itoa(i + 1), f.Date(p), p.Time().Weekday().String()})
	}

	return RenderTable(Table{
		Title:   fmt.Sprintf("%s: %d paydays", title, len(paydays)),
		Headers: []string{"#", "Date", "Weekday"},
		Rows:    rows,
	})
}
