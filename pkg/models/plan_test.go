package models_test

import (
	"github.com/envelope-zero/paycheck/internal/types"
	"github.com/envelope-zero/paycheck/pkg/models"
	"github.com/envelope-zero/paycheck/pkg/schedule"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestPlan() {
	_, err := models.SaveProfile(models.DB, validProfile())
	suite.Require().Nil(err)

	goal := suite.createTestGoal(models.Goal{
		Name:         "Vacation",
		TargetAmount: decimal.NewFromFloat(2000),
		TargetDate:   types.NewDate(2024, 3, 1),
		Priority:     1,
		IsActive:     true,
	})

	result, goals, err := models.Plan(models.DB, types.NewDate(2024, 1, 5))
	suite.Require().Nil(err)
	suite.Require().Len(goals, 1)
	suite.Require().Len(result.Allocations, 1)

	assert.Equal(suite.T(), goal.ID, goals[0].ID)
	assert.Equal(suite.T(), schedule.ModePhaseAnchored, result.Mode)
	assert.Equal(suite.T(), 5, *result.Allocations[0].RemainingPaydays)
	assert.True(suite.T(), result.Allocations[0].RecommendedPerPaycheck.Equal(decimal.NewFromFloat(400)))
	assert.True(suite.T(), result.Gap.Equal(decimal.NewFromFloat(600)))
}

func (suite *TestSuiteStandard) TestPlanWithoutProfile() {
	_ = suite.createTestGoal(models.Goal{Name: "Vacation", IsActive: true})

	result, _, err := models.Plan(models.DB, types.NewDate(2024, 1, 5))
	suite.Require().Nil(err)

	assert.Equal(suite.T(), schedule.ModeCalendarFixed, result.Mode)
	assert.Nil(suite.T(), result.Gap)
	assert.Nil(suite.T(), result.Allocations[0].RemainingPaydays)
}

func (suite *TestSuiteStandard) TestPlanDatabaseClosed() {
	suite.CloseDB()

	_, _, err := models.Plan(models.DB, types.NewDate(2024, 1, 5))
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}
