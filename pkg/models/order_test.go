package models_test

import (
	"encoding/json"

	"github.com/envelope-zero/paycheck/pkg/models"
	"github.com/stretchr/testify/assert"
)

func decode(s string) any {
	var payload any
	if err := json.Unmarshal([]byte(s), &payload); err != nil {
		panic(err)
	}
	return payload
}

func (suite *TestSuiteStandard) TestParseOrder() {
	tests := []struct {
		name    string
		payload any
		want    []uint
		err     error
	}{
		{"Plain list", decode(`[3, 1, 2]`), []uint{3, 1, 2}, nil},
		{"Numeric strings", decode(`["3", " 1 "]`), []uint{3, 1}, nil},
		{"Non-integers skipped", decode(`[3, "a", 1.5, null, true, {}, -2, 0, 2]`), []uint{3, 2}, nil},
		{"Duplicates keep the first position", decode(`[2, 1, 2]`), []uint{2, 1}, nil},
		{"Object", decode(`{"order": [1, 2]}`), nil, models.ErrInvalidInput},
		{"String", decode(`"1,2"`), nil, models.ErrInvalidInput},
		{"Nil", nil, nil, models.ErrInvalidInput},
		{"Empty list", decode(`[]`), nil, models.ErrValidation},
		{"Nothing usable", decode(`["a", 0.5]`), nil, models.ErrValidation},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			ids, err := models.ParseOrder(tt.payload)
			if tt.err != nil {
				assert.ErrorIs(suite.T(), err, tt.err)
				return
			}

			assert.Nil(suite.T(), err)
			assert.Equal(suite.T(), tt.want, ids)
		})
	}
}

func (suite *TestSuiteStandard) TestReorderGoals() {
	g1 := suite.createTestGoal(models.Goal{Name: "One", Priority: 1})
	g2 := suite.createTestGoal(models.Goal{Name: "Two", Priority: 2})
	g3 := suite.createTestGoal(models.Goal{Name: "Three", Priority: 3})

	goals, err := models.ReorderGoals(models.DB, []uint{g3.ID, 99, g1.ID, g2.ID})
	suite.Require().Nil(err)
	suite.Require().Len(goals, 3)

	priorities := map[uint]int{}
	for _, g := range goals {
		priorities[g.ID] = g.Priority
	}

	assert.Equal(suite.T(), map[uint]int{g3.ID: 1, g1.ID: 2, g2.ID: 3}, priorities)
	assert.Equal(suite.T(), g3.ID, goals[0].ID, "goals are returned in the new order")
}

func (suite *TestSuiteStandard) TestReorderGoalsPartial() {
	g1 := suite.createTestGoal(models.Goal{Name: "One", Priority: 1})
	g2 := suite.createTestGoal(models.Goal{Name: "Two", Priority: 2})
	g3 := suite.createTestGoal(models.Goal{Name: "Three", Priority: 5})

	_, err := models.ReorderGoals(models.DB, []uint{g2.ID})
	suite.Require().Nil(err)

	var reloaded []models.Goal
	suite.Require().Nil(models.DB.Order("id ASC").Find(&reloaded).Error)

	assert.Equal(suite.T(), g1.ID, reloaded[0].ID)
	assert.Equal(suite.T(), 1, reloaded[0].Priority)
	assert.Equal(suite.T(), 1, reloaded[1].Priority, "reordered goal is numbered from 1")
	assert.Equal(suite.T(), g3.ID, reloaded[2].ID)
	assert.Equal(suite.T(), 5, reloaded[2].Priority, "goals not in the list keep their priority")
}

func (suite *TestSuiteStandard) TestReorderGoalsUnknownOnly() {
	_ = suite.createTestGoal(models.Goal{Name: "One"})

	_, err := models.ReorderGoals(models.DB, []uint{98, 99})
	assert.ErrorIs(suite.T(), err, models.ErrValidation)

	_, err = models.ReorderGoals(models.DB, nil)
	assert.ErrorIs(suite.T(), err, models.ErrValidation)
}

func (suite *TestSuiteStandard) TestReorderGoalsDatabaseClosed() {
	suite.CloseDB()

	_, err := models.ReorderGoals(models.DB, []uint{1})
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}
