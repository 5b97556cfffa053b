package v1_test

import (
	"net/http"

	v1 "github.com/envelope-zero/paycheck/pkg/controllers/v1"
	"github.com/envelope-zero/paycheck/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestRoot() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.Response
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), "http://example.com/v1/profile", response.Links.Profile)
	assert.Equal(suite.T(), "http://example.com/v1/goals", response.Links.Goals)
	assert.Equal(suite.T(), "http://example.com/v1/plan", response.Links.Plan)
}

func (suite *TestSuiteStandard) TestOptions() {
	tests := []struct {
		path  string
		allow string
	}{
		{"http://example.com/v1", "OPTIONS, GET"},
		{"http://example.com/v1/profile", "OPTIONS, GET, PUT, DELETE"},
		{"http://example.com/v1/goals", "OPTIONS, GET, POST"},
		{"http://example.com/v1/goals/order", "OPTIONS, PUT"},
		{"http://example.com/v1/plan", "OPTIONS, GET"},
	}

	for _, tt := range tests {
		r := test.Request(suite.T(), http.MethodOptions, tt.path, "")
		test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
		assert.Equal(suite.T(), tt.allow, r.Header().Get("allow"), tt.path)
	}
}
