package v1

import (
	"net/http"

	"github.com/envelope-zero/paycheck/internal/types"
	"github.com/envelope-zero/paycheck/pkg/allocation"
	"github.com/envelope-zero/paycheck/pkg/httputil"
	"github.com/envelope-zero/paycheck/pkg/models"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// PlanCount counts the computed plans by the payday schedule they used.
var PlanCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "plans_total",
		Help: "How many savings plans were computed, partitioned by payday schedule.",
	},
	[]string{"mode"},
)

// Metrics are the Prometheus collectors of the v1 API.
var Metrics = []prometheus.Collector{
	PlanCount,
}

func RegisterPlanRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsPlan)
	r.GET("", GetPlan)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Plan
// @Success		204
// @Router			/v1/plan [options]
func OptionsPlan(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get plan
// @Description	Returns the recommended allocation of each paycheck to the goals
// @Tags			Plan
// @Produce		json
// @Success		200		{object}	PlanResponse
// @Failure		400		{object}	PlanResponse
// @Failure		500		{object}	PlanResponse
// @Param			today	query		string	false	"Compute the plan as of this day in YYYY-MM-DD format. Defaults to today."
// @Router			/v1/plan [get]
func GetPlan(c *gin.Context) {
	today := types.Today()
	if param := c.Query("today"); param != "" {
		var err error
		today, err = types.ParseDate(param)
		if err != nil {
			e := errTodayInvalid.Error()
			c.JSON(http.StatusBadRequest, PlanResponse{
				Error: &e,
			})
			return
		}
	}

	result, goals, err := models.Plan(models.DB, today)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PlanResponse{
			Error: &e,
		})
		return
	}

	PlanCount.WithLabelValues(string(result.Mode)).Inc()

	apiResource := newPlan(c, result, goals, today)
	c.JSON(http.StatusOK, PlanResponse{Data: &apiResource})
}

// newPlan returns the API v1 representation of a plan
func newPlan(c *gin.Context, result allocation.Result, goals []models.Goal, today types.Date) Plan {
	url := c.GetString(string(models.DBContextURL))

	allocations := make([]Allocation, 0, len(result.Allocations))
	for i, a := range result.Allocations {
		allocations = append(allocations, Allocation{
			Goal:                   newGoal(c, goals[i]),
			RemainingPaydays:       a.RemainingPaydays,
			ScheduledPaydays:       a.ScheduledPaydays,
			RequiredPerPaycheck:    a.RequiredPerPaycheck,
			RecommendedPerPaycheck: a.RecommendedPerPaycheck,
			PriorityWeight:         a.PriorityWeight,
			Score:                  a.Score,
		})
	}

	return Plan{
		Mode:          result.Mode,
		Today:         today,
		Allocations:   allocations,
		TotalSavings:  result.TotalSavings,
		TotalRequired: result.TotalRequired,
		Gap:           result.Gap,
		Chart: Chart{
			Labels: result.Chart.Labels,
			Values: result.Chart.Values,
		},
		Links: PlanLinks{
			Profile: url + "/v1/profile",
			Goals:   url + "/v1/goals",
		},
	}
}
