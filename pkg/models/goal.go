package models

import (
	"strings"

	"github.com/envelope-zero/paycheck/internal/types"
	"github.com/envelope-zero/paycheck/pkg/allocation"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Goal struct {
	DefaultModel
	Name         string          `gorm:"uniqueIndex:idx_goals_name"`
	TargetAmount decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // The amount to save
	TargetDate   types.Date      // The date the amount must be saved by
	Priority     int             `gorm:"index"` // Lower values take precedence
	IsActive     bool
}

func (g *Goal) BeforeSave(_ *gorm.DB) error {
	g.Name = strings.TrimSpace(g.Name)

	if g.Name == "" {
		return ErrGoalNameEmpty
	}

	if !g.TargetAmount.IsPositive() {
		return ErrGoalAmountNotPositive
	}

	if g.TargetDate.IsZero() {
		return ErrGoalTargetDateMissing
	}

	if g.Priority < 1 {
		g.Priority = 1
	}

	return nil
}

// Allocation returns the goal as used for plan computation.
func (g Goal) Allocation() allocation.Goal {
	return allocation.Goal{
		ID:           g.ID,
		Name:         g.Name,
		TargetAmount: g.TargetAmount,
		TargetDate:   g.TargetDate,
		Priority:     g.Priority,
		Active:       g.IsActive,
	}
}

// NextGoalPriority returns the priority for a goal appended to the end of the list.
func NextGoalPriority(db *gorm.DB) (int, error) {
	var highest int
	err := db.Model(&Goal{}).Select("COALESCE(MAX(priority), 0)").Scan(&highest).Error
	if err != nil {
		return 0, err
	}

	return highest + 1, nil
}

// OrderedGoals sorts goals by priority, then target date.
func OrderedGoals(db *gorm.DB) *gorm.DB {
	return db.Order("goals.priority ASC, goals.target_date ASC, goals.id ASC")
}

// ListGoals returns all goals in plan order.
func ListGoals(db *gorm.DB) ([]Goal, error) {
	var goals []Goal
	err := OrderedGoals(db).Find(&goals).Error
	if err != nil {
		return nil, err
	}

	return goals, nil
}
