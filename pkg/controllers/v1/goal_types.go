package v1

import (
	"fmt"

	"github.com/envelope-zero/paycheck/internal/types"
	"github.com/envelope-zero/paycheck/pkg/models"
	"github.com/envelope-zero/paycheck/pkg/schedule"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type GoalEditable struct {
	Name         string          `json:"name" example:"Vacation" default:""`                                                           // Name of the goal
	TargetAmount decimal.Decimal `json:"targetAmount" example:"2000" minimum:"0.00000001" maximum:"999999999999.99999999" default:"0"` // How much money should be saved for this goal?
	TargetDate   types.Date      `json:"targetDate" example:"2024-03-01" swaggertype:"primitive,string"`                               // The date the goal should be reached
	Priority     int             `json:"priority" example:"1" minimum:"1"`                                                             // Rank of the goal, lower values take precedence. New goals are appended to the end if unset
	IsActive     *bool           `json:"isActive" example:"true" default:"true"`                                                       // Inactive goals receive no allocation
}

// model returns the database resource for the API representation of the editable fields
func (editable GoalEditable) model() models.Goal {
	active := true
	if editable.IsActive != nil {
		active = *editable.IsActive
	}

	return models.Goal{
		Name:         editable.Name,
		TargetAmount: editable.TargetAmount,
		TargetDate:   editable.TargetDate,
		Priority:     editable.Priority,
		IsActive:     active,
	}
}

// apply sets the fields of the goal that are listed in fields.
func (editable GoalEditable) apply(goal *models.Goal, fields []string) {
	for _, field := range fields {
		switch field {
		case "Name":
			goal.Name = editable.Name
		case "TargetAmount":
			goal.TargetAmount = editable.TargetAmount
		case "TargetDate":
			goal.TargetDate = editable.TargetDate
		case "Priority":
			goal.Priority = editable.Priority
		case "IsActive":
			if editable.IsActive != nil {
				goal.IsActive = *editable.IsActive
			}
		}
	}
}

type GoalLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/goals/3"`            // The Goal itself
	Paydays string `json:"paydays" example:"https://example.com/api/v1/goals/3/paydays"` // The paydays until the target date
}

type Goal struct {
	models.DefaultModel
	GoalEditable
	Links GoalLinks `json:"links"`
}

// newGoal returns the API v1 representation of the resource
func newGoal(c *gin.Context, model models.Goal) Goal {
	url := c.GetString(string(models.DBContextURL))
	active := model.IsActive

	return Goal{
		DefaultModel: model.DefaultModel,
		GoalEditable: GoalEditable{
			Name:         model.Name,
			TargetAmount: model.TargetAmount,
			TargetDate:   model.TargetDate,
			Priority:     model.Priority,
			IsActive:     &active,
		},
		Links: GoalLinks{
			Self:    fmt.Sprintf("%s/v1/goals/%d", url, model.ID),
			Paydays: fmt.Sprintf("%s/v1/goals/%d/paydays", url, model.ID),
		},
	}
}

type GoalListResponse struct {
	Data       []Goal      `json:"data"`                                                       // List of resources
	Error      *string     `json:"error" example:"the query string contains unparseable data"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                 // Pagination information
}

type GoalCreateResponse struct {
	Error *string        `json:"error" example:"the goal name must be unique"` // The error, if any occurred
	Data  []GoalResponse `json:"data"`                                         // List of created resources
}

func (t *GoalCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, GoalResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type GoalResponse struct {
	Error *string `json:"error" example:"there is no goal matching your query"` // The error, if any occurred
	Data  *Goal   `json:"data"`                                                 // The resource
}

type GoalQueryFilter struct {
	Name     string `form:"name" filterField:"false"`   // Glob pattern matching the name, e.g. "Vac*"
	Search   string `form:"search" filterField:"false"` // By string in name
	Active   string `form:"active" filterField:"false"` // Is the goal active?
	Priority int    `form:"priority"`                   // Exact priority
	Offset   uint   `form:"offset" filterField:"false"` // The offset of the first goal returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`  // Maximum number of goals to return. Defaults to 50.
}

type GoalOrderResponse struct {
	Error *string `json:"error" example:"the goal order must be a list of goal IDs"` // The error, if any occurred
	Data  []Goal  `json:"data"`                                                      // All goals in their new order
}

type Paydays struct {
	Mode          schedule.Mode `json:"mode" example:"phase-anchored"`                            // The schedule the plan uses for this goal
	From          types.Date    `json:"from" example:"2024-01-05" swaggertype:"primitive,string"` // First day of the range
	To            types.Date    `json:"to" example:"2024-03-01" swaggertype:"primitive,string"`   // Last day of the range, the target date of the goal
	PhaseAnchored []types.Date  `json:"phaseAnchored" swaggertype:"array,string"`                 // Paydays following the pay profile. null without a pay profile
	CalendarFixed []types.Date  `json:"calendarFixed" swaggertype:"array,string"`                 // Paydays on the 15th and the last day of each month
	Discrepancy   bool          `json:"discrepancy" example:"true"`                               // Whether the two schedules count a different number of paydays
}

type PaydaysResponse struct {
	Error *string  `json:"error" example:"there is no goal matching your query"` // The error, if any occurred
	Data  *Paydays `json:"data"`                                                 // The paydays
}
