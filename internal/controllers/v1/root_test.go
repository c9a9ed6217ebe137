package v1_test

import (
	v1 "github.com/daily-envelope/backend/internal/controllers/v1"
	"github.com/daily-envelope/backend/internal/test"
)

func (suite *TestSuiteStandard) TestGetRoot() {
	recorder := suite.request("GET", "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), 200, &recorder)

	var response v1.RootResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	expected := v1.RootLinks{
		Day:      "http://example.com/v1/day",
		Expenses: "http://example.com/v1/expenses",
		Settings: "http://example.com/v1/settings",
		Vault:    "http://example.com/v1/vault",
		Ledger:   "http://example.com/v1/ledger",
	}
	suite.Assert().Equal(expected, response.Links)
}
