package v1_test

import (
	"net/http"

	"github.com/envelope-zero/paycheck/internal/types"
	v1 "github.com/envelope-zero/paycheck/pkg/controllers/v1"
	"github.com/envelope-zero/paycheck/pkg/models"
	"github.com/envelope-zero/paycheck/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestPlan() {
	setTestProfile(suite.T(), v1.ProfileEditable{})
	createTestGoal(suite.T(), v1.GoalEditable{
		Name:         "Vacation",
		TargetAmount: decimal.NewFromFloat(2000),
		TargetDate:   types.NewDate(2024, 3, 1),
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/plan?today=2024-01-05", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.PlanResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)

	plan := response.Data
	assert.Equal(suite.T(), "phase-anchored", string(plan.Mode))
	assert.Equal(suite.T(), types.NewDate(2024, 1, 5), plan.Today)
	require.Len(suite.T(), plan.Allocations, 1)

	a := plan.Allocations[0]
	assert.Equal(suite.T(), "Vacation", a.Goal.Name)
	require.NotNil(suite.T(), a.RemainingPaydays)
	assert.Equal(suite.T(), 5, *a.RemainingPaydays)
	assert.True(suite.T(), a.RequiredPerPaycheck.Equal(decimal.NewFromFloat(400)), "got %s", a.RequiredPerPaycheck)
	assert.True(suite.T(), a.RecommendedPerPaycheck.Equal(decimal.NewFromFloat(400)), "got %s", a.RecommendedPerPaycheck)
	assert.Equal(suite.T(), 1, a.PriorityWeight)

	assert.True(suite.T(), plan.TotalSavings.Equal(decimal.NewFromFloat(1000)))
	assert.True(suite.T(), plan.TotalRequired.Equal(decimal.NewFromFloat(400)))
	require.NotNil(suite.T(), plan.Gap)
	assert.True(suite.T(), plan.Gap.Equal(decimal.NewFromFloat(600)), "got %s", plan.Gap)

	assert.Equal(suite.T(), []string{"Vacation"}, plan.Chart.Labels)
	assert.Equal(suite.T(), "http://example.com/v1/profile", plan.Links.Profile)
}

func (suite *TestSuiteStandard) TestPlanWithoutProfile() {
	createTestGoal(suite.T(), v1.GoalEditable{TargetDate: types.NewDate(2024, 3, 1)})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/plan?today=2024-01-05", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.PlanResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), "calendar-fixed", string(response.Data.Mode))
	assert.Nil(suite.T(), response.Data.Gap)
	assert.Nil(suite.T(), response.Data.Allocations[0].RemainingPaydays)
	assert.Equal(suite.T(), 4, response.Data.Allocations[0].ScheduledPaydays)
	assert.True(suite.T(), response.Data.Allocations[0].RequiredPerPaycheck.IsZero())
}

func (suite *TestSuiteStandard) TestPlanPriorities() {
	setTestProfile(suite.T(), v1.ProfileEditable{})
	createTestGoal(suite.T(), v1.GoalEditable{Name: "House", TargetAmount: decimal.NewFromFloat(5000), TargetDate: types.NewDate(2024, 3, 1), Priority: 1})
	createTestGoal(suite.T(), v1.GoalEditable{Name: "Car", TargetAmount: decimal.NewFromFloat(5000), TargetDate: types.NewDate(2024, 3, 1), Priority: 2})
	createTestGoal(suite.T(), v1.GoalEditable{Name: "Boat", TargetAmount: decimal.NewFromFloat(5000), TargetDate: types.NewDate(2024, 3, 1), Priority: 3, IsActive: boolPtr(false)})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/plan?today=2024-01-05", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.PlanResponse
	test.DecodeResponse(suite.T(), &r, &response)
	plan := response.Data

	require.Len(suite.T(), plan.Allocations, 3)
	assert.Equal(suite.T(), []string{"House", "Car"}, plan.Chart.Labels)
	assert.True(suite.T(), plan.Gap.IsNegative())

	house, car, boat := plan.Allocations[0], plan.Allocations[1], plan.Allocations[2]
	assert.True(suite.T(), house.RecommendedPerPaycheck.GreaterThan(car.RecommendedPerPaycheck))
	assert.True(suite.T(), boat.RecommendedPerPaycheck.IsZero())
	assert.True(suite.T(), house.RecommendedPerPaycheck.Add(car.RecommendedPerPaycheck).LessThanOrEqual(decimal.NewFromFloat(1000.000001)))
}

func (suite *TestSuiteStandard) TestPlanInvalidToday() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/plan?today=01/05/2024", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.PlanResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "the today parameter must be a date in YYYY-MM-DD format", *response.Error)
}

func (suite *TestSuiteStandard) TestPlanDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/plan", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)

	var response v1.PlanResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), models.ErrGeneral.Error(), *response.Error)
}
