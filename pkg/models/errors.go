package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Goal errors
var (
	ErrGoalAmountNotPositive = errors.New("goal amounts must be larger than zero")
	ErrGoalNameEmpty         = errors.New("the goal name must not be empty")
	ErrGoalNameNotUnique     = errors.New("the goal name must be unique")
	ErrGoalTargetDateMissing = errors.New("the goal must have a target date")
)

// Pay profile errors
var (
	ErrNetPayNotPositive = errors.New("the net pay must be larger than zero")
	ErrFrequencyInvalid  = errors.New("the pay frequency must be one of weekly, bi-weekly or monthly")
	ErrLastPaydayMissing = errors.New("the pay profile must have a last payday")
)

// Reorder errors
var (
	ErrInvalidInput = errors.New("the goal order must be a list of goal IDs")
	ErrValidation   = errors.New("the goal order does not contain any existing goal ID")
)
