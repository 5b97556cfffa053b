package allocation

import (
	"github.com/envelope-zero/paycheck/internal/types"
	"github.com/envelope-zero/paycheck/pkg/schedule"
	"github.com/shopspring/decimal"
)

// Profile is the pay profile a plan is computed for.
type Profile struct {
	NetPay     decimal.Decimal
	Frequency  schedule.Frequency
	LastPayday types.Date
}

// Goal is a savings goal as seen by the planner.
type Goal struct {
	ID           uint
	Name         string
	TargetAmount decimal.Decimal
	TargetDate   types.Date
	Priority     int
	Active       bool
}

// Allocation is the recommendation for one goal.
type Allocation struct {
	Goal Goal

	// Paydays left until the target date. nil when there is no pay profile.
	RemainingPaydays *int

	// Paydays left until the target date under the schedule the plan uses.
	// Without a pay profile, this is the count of the calendar fixed schedule.
	ScheduledPaydays int

	RequiredPerPaycheck    decimal.Decimal
	RecommendedPerPaycheck decimal.Decimal
	PriorityWeight         int
	Score                  decimal.Decimal
}

// Chart holds parallel label and value series for active goals.
type Chart struct {
	Labels []string
	Values []decimal.Decimal
}

// Result is a complete recommendation.
type Result struct {
	Mode          schedule.Mode
	Allocations   []Allocation
	TotalSavings  decimal.Decimal
	TotalRequired decimal.Decimal
	Gap           *decimal.Decimal // nil when there is no pay profile
	Chart         Chart
}

// Required returns what a goal needs per paycheck.
//
// Inactive goals and goals planned without a pay profile need nothing.
// When no payday is left, the full target amount is required.
func Required(goal Goal, remainingPaydays int, hasProfile bool) decimal.Decimal {
	if !goal.Active || !hasProfile {
		return decimal.Zero
	}

	if remainingPaydays <= 0 {
		return goal.TargetAmount
	}

	return goal.TargetAmount.Div(decimal.NewFromInt(int64(remainingPaydays)))
}

// Plan computes the recommendation for all goals.
//
// profile may be nil. Goals are expected to be sorted by priority and
// target date already; the order is kept.
func Plan(profile *Profile, goals []Goal, today types.Date) Result {
	var sched schedule.PaydaySchedule = schedule.CalendarFixed{}
	if profile != nil {
		sched = schedule.Select(&profile.LastPayday, profile.Frequency)
	}

	// A profile with an unusable schedule is treated like no profile
	hasProfile := sched.Mode() == schedule.ModePhaseAnchored

	result := Result{
		Mode:          sched.Mode(),
		Allocations:   make([]Allocation, 0, len(goals)),
		TotalSavings:  decimal.Zero,
		TotalRequired: decimal.Zero,
		Chart: Chart{
			Labels: []string{},
			Values: []decimal.Decimal{},
		},
	}

	if hasProfile {
		result.TotalSavings = profile.NetPay
	}

	reqs := make([]Requirement, 0, len(goals))
	for _, goal := range goals {
		paydays := 0
		if !goal.TargetDate.Before(today) {
			paydays = sched.Count(today, goal.TargetDate)
		}

		allocation := Allocation{
			Goal:             goal,
			ScheduledPaydays: paydays,
		}

		if hasProfile {
			remaining := paydays
			allocation.RemainingPaydays = &remaining
		}

		allocation.RequiredPerPaycheck = Required(goal, paydays, hasProfile)
		result.TotalRequired = result.TotalRequired.Add(allocation.RequiredPerPaycheck)

		reqs = append(reqs, Requirement{
			Required: allocation.RequiredPerPaycheck,
			Priority: goal.Priority,
			Active:   goal.Active,
		})
		result.Allocations = append(result.Allocations, allocation)
	}

	for i, r := range Allocate(result.TotalSavings, reqs) {
		result.Allocations[i].PriorityWeight = r.Weight
		result.Allocations[i].Score = r.Score
		result.Allocations[i].RecommendedPerPaycheck = r.Recommended
	}

	if hasProfile {
		gap := result.TotalSavings.Sub(result.TotalRequired)
		result.Gap = &gap
	}

	for _, a := range result.Allocations {
		if !a.Goal.Active {
			continue
		}

		result.Chart.Labels = append(result.Chart.Labels, a.Goal.Name)
		result.Chart.Values = append(result.Chart.Values, a.RecommendedPerPaycheck)
	}

	return result
}
