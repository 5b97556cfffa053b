// Package allocation distributes the savings of one paycheck over savings goals.
package allocation

import (
	"github.com/shopspring/decimal"
)

// Requirement is what one goal needs from every paycheck.
type Requirement struct {
	Required decimal.Decimal // Amount needed per paycheck to reach the goal on time
	Priority int             // Lower values take precedence. Values below 1 are treated as 1
	Active   bool            // Inactive goals receive nothing
}

// Recommendation is the share of the paycheck for one Requirement.
type Recommendation struct {
	Weight      int
	Score       decimal.Decimal
	Recommended decimal.Decimal
}

// Weight returns the divisor used for a priority. It is never below 1.
func Weight(priority int) int {
	if priority < 1 {
		return 1
	}

	return priority
}

// Score returns the score of a requirement: the required amount divided by
// the priority weight. Inactive goals and non-positive requirements score 0.
func Score(r Requirement) decimal.Decimal {
	if !r.Active || !r.Required.IsPositive() {
		return decimal.Zero
	}

	return r.Required.Div(decimal.NewFromInt(int64(Weight(r.Priority))))
}

// Allocate distributes total proportionally to the score of every requirement.
//
// The amount distributed is total or the sum of all positive requirements,
// whichever is smaller, so a single goal receives its requirement and not the
// whole paycheck. When total does not cover every requirement, all of it is
// distributed.
//
// The result has the same length and order as reqs. If total is not positive
// or no requirement has a positive score, every recommendation is zero.
func Allocate(total decimal.Decimal, reqs []Requirement) []Recommendation {
	recommendations := make([]Recommendation, len(reqs))

	scoreTotal := decimal.Zero
	requiredTotal := decimal.Zero
	for i, r := range reqs {
		score := Score(r)
		recommendations[i] = Recommendation{
			Weight:      Weight(r.Priority),
			Score:       score,
			Recommended: decimal.Zero,
		}
		scoreTotal = scoreTotal.Add(score)

		if score.IsPositive() {
			requiredTotal = requiredTotal.Add(r.Required)
		}
	}

	if !total.IsPositive() || !scoreTotal.IsPositive() {
		return recommendations
	}

	available := decimal.Min(total, requiredTotal)
	for i := range recommendations {
		if !recommendations[i].Score.IsPositive() {
			continue
		}

		recommendations[i].Recommended = available.Mul(recommendations[i].Score).Div(scoreTotal)
	}

	return recommendations
}
