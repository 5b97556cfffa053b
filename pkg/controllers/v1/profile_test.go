package v1_test

import (
	"net/http"
	"testing"

	"github.com/envelope-zero/paycheck/internal/types"
	v1 "github.com/envelope-zero/paycheck/pkg/controllers/v1"
	"github.com/envelope-zero/paycheck/pkg/models"
	"github.com/envelope-zero/paycheck/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestProfileGetNotFound() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/profile", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	var response v1.ProfileResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Error)
	assert.Equal(suite.T(), "there is no pay profile matching your query", *response.Error)
}

func (suite *TestSuiteStandard) TestProfileCreateAndReplace() {
	created := setTestProfile(suite.T(), v1.ProfileEditable{}, http.StatusCreated)
	require.NotNil(suite.T(), created.Data)
	assert.True(suite.T(), created.Data.NetPay.Equal(decimal.NewFromFloat(1000)))
	assert.Equal(suite.T(), "bi-weekly", created.Data.Frequency)
	assert.Equal(suite.T(), types.NewDate(2024, 1, 5), created.Data.LastPayday)
	assert.Equal(suite.T(), "http://example.com/v1/profile", created.Data.Links.Self)
	assert.Equal(suite.T(), "http://example.com/v1/plan", created.Data.Links.Plan)

	replaced := setTestProfile(suite.T(), v1.ProfileEditable{
		NetPay:     decimal.NewFromFloat(2500),
		Frequency:  "monthly",
		LastPayday: types.NewDate(2024, 1, 31),
	}, http.StatusOK)
	require.NotNil(suite.T(), replaced.Data)
	assert.Equal(suite.T(), created.Data.ID, replaced.Data.ID, "the profile is replaced, not duplicated")
	assert.Equal(suite.T(), "monthly", replaced.Data.Frequency)

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/profile", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ProfileResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), response.Data.NetPay.Equal(decimal.NewFromFloat(2500)))
	assert.False(suite.T(), response.Data.NextPayday.IsZero())

	var count int64
	models.DB.Model(&models.PayProfile{}).Count(&count)
	assert.Equal(suite.T(), int64(1), count)
}

func (suite *TestSuiteStandard) TestProfileFrequencyAliases() {
	response := setTestProfile(suite.T(), v1.ProfileEditable{Frequency: "Fortnightly"})
	assert.Equal(suite.T(), "bi-weekly", response.Data.Frequency)
}

func (suite *TestSuiteStandard) TestProfileInvalid() {
	tests := []struct {
		name string
		body any
		err  string
	}{
		{"Empty body", "", "the request body must not be empty"},
		{"Broken JSON", `{"netPay": `, "the body of your request contains invalid or un-parseable data. Please check and try again"},
		{"Unknown frequency", map[string]any{"netPay": "1000", "frequency": "daily", "lastPayday": "2024-01-05"}, models.ErrFrequencyInvalid.Error()},
		{"Missing frequency", map[string]any{"netPay": "1000", "lastPayday": "2024-01-05"}, models.ErrFrequencyInvalid.Error()},
		{"Zero net pay", map[string]any{"netPay": "0", "frequency": "weekly", "lastPayday": "2024-01-05"}, models.ErrNetPayNotPositive.Error()},
		{"Negative net pay", map[string]any{"netPay": "-5", "frequency": "weekly", "lastPayday": "2024-01-05"}, models.ErrNetPayNotPositive.Error()},
		{"Missing last payday", map[string]any{"netPay": "1000", "frequency": "weekly"}, models.ErrLastPaydayMissing.Error()},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPut, "http://example.com/v1/profile", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response v1.ProfileResponse
			test.DecodeResponse(t, &r, &response)
			require.NotNil(t, response.Error)
			assert.Contains(t, *response.Error, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestProfileDelete() {
	setTestProfile(suite.T(), v1.ProfileEditable{})

	r := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1/profile", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodDelete, "http://example.com/v1/profile", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/profile", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

// TestProfileDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestProfileDBClosed() {
	suite.CloseDB()

	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		r := test.Request(suite.T(), method, "http://example.com/v1/profile", "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
	}

	setTestProfile(suite.T(), v1.ProfileEditable{}, http.StatusInternalServerError)
}
