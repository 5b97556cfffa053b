package v1

import (
	"github.com/envelope-zero/paycheck/internal/types"
	"github.com/envelope-zero/paycheck/pkg/schedule"
	"github.com/shopspring/decimal"
)

type Allocation struct {
	Goal                   Goal            `json:"goal"`                                 // The goal
	RemainingPaydays       *int            `json:"remainingPaydays" example:"5"`         // Paydays left until the target date. null without a pay profile
	ScheduledPaydays       int             `json:"scheduledPaydays" example:"5"`         // Paydays left until the target date under the schedule the plan uses
	RequiredPerPaycheck    decimal.Decimal `json:"requiredPerPaycheck" example:"400"`    // Amount needed per paycheck to reach the goal on time
	RecommendedPerPaycheck decimal.Decimal `json:"recommendedPerPaycheck" example:"400"` // Amount recommended per paycheck
	PriorityWeight         int             `json:"priorityWeight" example:"1"`           // The priority used as divisor for the score
	Score                  decimal.Decimal `json:"score" example:"400"`                  // Required per paycheck divided by the priority weight
}

type Chart struct {
	Labels []string          `json:"labels" example:"Vacation"` // Names of the active goals
	Values []decimal.Decimal `json:"values"`                    // Recommended amounts per paycheck of the active goals
}

type PlanLinks struct {
	Profile string `json:"profile" example:"https://example.com/api/v1/profile"` // The pay profile
	Goals   string `json:"goals" example:"https://example.com/api/v1/goals"`     // The goals
}

type Plan struct {
	Mode          schedule.Mode    `json:"mode" example:"phase-anchored"`                             // The payday schedule used
	Today         types.Date       `json:"today" example:"2024-01-05" swaggertype:"primitive,string"` // The day the plan is computed for
	Allocations   []Allocation     `json:"allocations"`                                               // Recommendations per goal, in priority order
	TotalSavings  decimal.Decimal  `json:"totalSavings" example:"1000"`                               // Net pay per paycheck. 0 without a pay profile
	TotalRequired decimal.Decimal  `json:"totalRequired" example:"400"`                               // Sum of the required amounts per paycheck
	Gap           *decimal.Decimal `json:"gap" example:"600"`                                         // Total savings minus total required. null without a pay profile
	Chart         Chart            `json:"chart"`                                                     // Chart series for the active goals
	Links         PlanLinks        `json:"links"`
}

type PlanResponse struct {
	Error *string `json:"error" example:"the today parameter must be a date in YYYY-MM-DD format"` // The error, if any occurred
	Data  *Plan   `json:"data"`                                                                    // The plan
}
