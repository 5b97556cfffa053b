package models

import (
	"errors"

	"github.com/envelope-zero/paycheck/internal/types"
	"github.com/envelope-zero/paycheck/pkg/allocation"
	"gorm.io/gorm"
)

// Plan loads the pay profile and all goals and computes the recommendation for today.
//
// The returned goals have the same order as the allocations of the result.
// A missing pay profile is not an error.
func Plan(db *gorm.DB, today types.Date) (allocation.Result, []Goal, error) {
	var profile *allocation.Profile

	p, err := CurrentProfile(db)
	if err == nil {
		profile = p.Allocation()
	} else if !errors.Is(err, ErrResourceNotFound) {
		return allocation.Result{}, nil, err
	}

	goals, err := ListGoals(db)
	if err != nil {
		return allocation.Result{}, nil, err
	}

	planned := make([]allocation.Goal, 0, len(goals))
	for _, g := range goals {
		planned = append(planned, g.Allocation())
	}

	return allocation.Plan(profile, planned, today), goals, nil
}
