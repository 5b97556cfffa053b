package models_test

import (
	"strings"

	"github.com/envelope-zero/paycheck/internal/types"
	"github.com/envelope-zero/paycheck/pkg/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestGoalBeforeSave() {
	tests := []struct {
		name string
		goal models.Goal
		err  error
	}{
		{"Negative amount", models.Goal{Name: "Car", TargetAmount: decimal.NewFromFloat(-10), TargetDate: types.NewDate(2024, 3, 1)}, models.ErrGoalAmountNotPositive},
		{"Zero amount", models.Goal{Name: "Car", TargetAmount: decimal.Zero, TargetDate: types.NewDate(2024, 3, 1)}, models.ErrGoalAmountNotPositive},
		{"Empty name", models.Goal{Name: " \t", TargetAmount: decimal.NewFromFloat(750), TargetDate: types.NewDate(2024, 3, 1)}, models.ErrGoalNameEmpty},
		{"No target date", models.Goal{Name: "Car", TargetAmount: decimal.NewFromFloat(750)}, models.ErrGoalTargetDateMissing},
		{"Valid", models.Goal{Name: "Car", TargetAmount: decimal.NewFromFloat(750), TargetDate: types.NewDate(2024, 3, 1)}, nil},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			err := tt.goal.BeforeSave(&gorm.DB{})
			assert.Equal(suite.T(), tt.err, err)
		})
	}
}

func (suite *TestSuiteStandard) TestGoalPriorityCoerced() {
	goal := suite.createTestGoal(models.Goal{Priority: -5})
	assert.Equal(suite.T(), 1, goal.Priority)
}

func (suite *TestSuiteStandard) TestGoalTrimWhitespace() {
	name := "  There is whitespace here  \t"

	goal := suite.createTestGoal(models.Goal{
		Name: name,
	})

	assert.Equal(suite.T(), strings.TrimSpace(name), goal.Name)
}

func (suite *TestSuiteStandard) TestGoalNameUnique() {
	_ = suite.createTestGoal(models.Goal{Name: "Vacation"})

	duplicate := models.Goal{
		Name:         "Vacation",
		TargetAmount: decimal.NewFromFloat(10),
		TargetDate:   types.NewDate(2025, 1, 1),
	}
	err := models.DB.Create(&duplicate).Error
	assert.ErrorIs(suite.T(), err, models.ErrGoalNameNotUnique)
}

func (suite *TestSuiteStandard) TestGoalNotFound() {
	err := models.DB.First(&models.Goal{}, 4711).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
	assert.Equal(suite.T(), "there is no goal matching your query", err.Error())
}

func (suite *TestSuiteStandard) TestGoalDatabaseClosed() {
	suite.CloseDB()

	err := models.DB.First(&models.Goal{}, 1).Error
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}

func (suite *TestSuiteStandard) TestGoalDateRoundTrip() {
	goal := suite.createTestGoal(models.Goal{TargetDate: types.NewDate(2024, 2, 29)})

	var loaded models.Goal
	suite.Require().Nil(models.DB.First(&loaded, goal.ID).Error)
	assert.Equal(suite.T(), types.NewDate(2024, 2, 29), loaded.TargetDate)
	assert.True(suite.T(), goal.TargetAmount.Equal(loaded.TargetAmount))
}

func (suite *TestSuiteStandard) TestNextGoalPriority() {
	next, err := models.NextGoalPriority(models.DB)
	suite.Require().Nil(err)
	assert.Equal(suite.T(), 1, next)

	_ = suite.createTestGoal(models.Goal{Name: "A", Priority: 3})
	_ = suite.createTestGoal(models.Goal{Name: "B", Priority: 7})

	next, err = models.NextGoalPriority(models.DB)
	suite.Require().Nil(err)
	assert.Equal(suite.T(), 8, next)
}

func (suite *TestSuiteStandard) TestListGoalsOrder() {
	late := suite.createTestGoal(models.Goal{Name: "Late", Priority: 1, TargetDate: types.NewDate(2025, 6, 1)})
	early := suite.createTestGoal(models.Goal{Name: "Early", Priority: 1, TargetDate: types.NewDate(2024, 6, 1)})
	second := suite.createTestGoal(models.Goal{Name: "Second", Priority: 2, TargetDate: types.NewDate(2024, 1, 1)})

	goals, err := models.ListGoals(models.DB)
	suite.Require().Nil(err)
	suite.Require().Len(goals, 3)

	assert.Equal(suite.T(), []uint{early.ID, late.ID, second.ID}, []uint{goals[0].ID, goals[1].ID, goals[2].ID})
}

func (suite *TestSuiteStandard) TestGoalAllocation() {
	goal := suite.createTestGoal(models.Goal{Name: "Bike", Priority: 2, IsActive: true})

	a := goal.Allocation()
	assert.Equal(suite.T(), goal.ID, a.ID)
	assert.Equal(suite.T(), "Bike", a.Name)
	assert.Equal(suite.T(), 2, a.Priority)
	assert.True(suite.T(), a.Active)
	assert.True(suite.T(), goal.TargetAmount.Equal(a.TargetAmount))
}
