package v1_test

import (
	"net/http"
	"testing"

	"github.com/envelope-zero/paycheck/internal/types"
	v1 "github.com/envelope-zero/paycheck/pkg/controllers/v1"
	"github.com/envelope-zero/paycheck/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func createTestGoal(t *testing.T, g v1.GoalEditable, expectedStatus ...int) v1.GoalResponse {
	if g.Name == "" {
		g.Name = uuid.NewString()
	}

	if g.TargetAmount.IsZero() {
		g.TargetAmount = decimal.NewFromFloat(100)
	}

	if g.TargetDate.IsZero() {
		g.TargetDate = types.NewDate(2024, 12, 31)
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.GoalEditable{g}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/goals", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var goal v1.GoalCreateResponse
	test.DecodeResponse(t, &r, &goal)

	if r.Code == http.StatusCreated {
		return goal.Data[0]
	}

	return v1.GoalResponse{}
}

func setTestProfile(t *testing.T, p v1.ProfileEditable, expectedStatus ...int) v1.ProfileResponse {
	if p.NetPay.IsZero() {
		p.NetPay = decimal.NewFromFloat(1000)
	}

	if p.Frequency == "" {
		p.Frequency = "bi-weekly"
	}

	if p.LastPayday.IsZero() {
		p.LastPayday = types.NewDate(2024, 1, 5)
	}

	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated, http.StatusOK)
	}

	r := test.Request(t, http.MethodPut, "http://example.com/v1/profile", p)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var profile v1.ProfileResponse
	test.DecodeResponse(t, &r, &profile)

	return profile
}

func boolPtr(b bool) *bool {
	return &b
}
