package v1_test

import (
	"testing"
	"time"

	v1 "github.com/daily-envelope/backend/internal/controllers/v1"
	"github.com/daily-envelope/backend/internal/test"
)

func (suite *TestSuiteStandard) TestCreateDay() {
	response := suite.startDay("100")

	suite.requireEqual("100", response.Data.DailyAmount)
	suite.requireEqual("0", response.Data.LastBalance)
	suite.requireEqual("100", response.Data.Balance)
	suite.Assert().Equal("2024-01-01", response.Data.StartDate.String())
	suite.Assert().Equal("2024-01-01", response.Data.CurrentDate.String())
	suite.Assert().Empty(response.Data.Expenses)
}

func (suite *TestSuiteStandard) TestCreateDayLocalizedAmount() {
	recorder := suite.request("POST", "/v1/day", `{ "dailyAmount": "R$ 1.234,56", "startDate": "2024-01-01" }`)
	test.AssertHTTPStatus(suite.T(), 201, &recorder)

	var response v1.DayResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.requireEqual("1234.56", response.Data.DailyAmount)
}

func (suite *TestSuiteStandard) TestCreateDayWithTax() {
	recorder := suite.request("POST", "/v1/day", `{ "dailyAmount": "100", "startDate": "2024-01-01", "tax": { "enabled": true, "rate": "15" } }`)
	test.AssertHTTPStatus(suite.T(), 201, &recorder)

	recorder = suite.request("GET", "/v1/settings", "")
	test.AssertHTTPStatus(suite.T(), 200, &recorder)

	var settings v1.SettingsResponse
	test.DecodeResponse(suite.T(), &recorder, &settings)
	suite.Assert().True(settings.Data.Enabled)
	suite.requireEqual("15", settings.Data.Rate)
	suite.Assert().True(settings.Data.CountsAgainstBudget)
}

func (suite *TestSuiteStandard) TestCreateDayInvalidBody() {
	tests := []struct {
		name string
		body string
	}{
		{"broken json", `{ "dailyAmount": "100"`},
		{"missing amount", `{ "startDate": "2024-01-01" }`},
		{"amount not a number", `{ "dailyAmount": "yes please", "startDate": "2024-01-01" }`},
		{"zero amount", `{ "dailyAmount": "0", "startDate": "2024-01-01" }`},
		{"negative amount", `{ "dailyAmount": "-10", "startDate": "2024-01-01" }`},
		{"missing date", `{ "dailyAmount": "100" }`},
		{"broken date", `{ "dailyAmount": "100", "startDate": "yesterday" }`},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := suite.request("POST", "/v1/day", tt.body)
			test.AssertHTTPStatus(t, 400, &recorder)
		})
	}
}

func (suite *TestSuiteStandard) TestCreateDayReplacesActiveDay() {
	suite.startDay("100")

	recorder := suite.request("POST", "/v1/expenses", `{ "amount": "30" }`)
	test.AssertHTTPStatus(suite.T(), 201, &recorder)

	response := suite.startDay("50")
	suite.requireEqual("50", response.Data.Balance)
	suite.Assert().Empty(response.Data.Expenses)
}

func (suite *TestSuiteStandard) TestGetDayNotStarted() {
	recorder := suite.request("GET", "/v1/day", "")
	test.AssertHTTPStatus(suite.T(), 404, &recorder)
}

func (suite *TestSuiteStandard) TestGetDayRollsOver() {
	suite.startDay("100")

	recorder := suite.request("POST", "/v1/expenses", `{ "amount": "130" }`)
	test.AssertHTTPStatus(suite.T(), 201, &recorder)

	// Next calendar day in UTC-3
	suite.now = time.Date(2024, 1, 2, 15, 0, 0, 0, time.UTC)

	recorder = suite.request("GET", "/v1/day", "")
	test.AssertHTTPStatus(suite.T(), 200, &recorder)

	var response v1.DayResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("2024-01-02", response.Data.CurrentDate.String())
	suite.requireEqual("-30", response.Data.LastBalance)
	suite.requireEqual("70", response.Data.Balance)
	suite.Assert().Empty(response.Data.Expenses)
}
