package v1_test

import (
	"fmt"
	"testing"

	v1 "github.com/daily-envelope/backend/internal/controllers/v1"
	"github.com/daily-envelope/backend/internal/test"
)

func (suite *TestSuiteStandard) TestCreateExpense() {
	suite.startDay("100")

	recorder := suite.request("POST", "/v1/expenses", `{ "amount": "23,50", "name": "groceries" }`)
	test.AssertHTTPStatus(suite.T(), 201, &recorder)

	var response v1.DayResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.requireEqual("76.5", response.Data.Balance)
	suite.Require().Len(response.Data.Expenses, 1)
	suite.Assert().Equal("groceries", response.Data.Expenses[0].Name)
	suite.requireEqual("23.5", response.Data.Expenses[0].Amount)
	suite.requireEqual("23.5", response.Data.Expenses[0].EffectiveDebit)
	suite.requireEqual("0", response.Data.Expenses[0].TaxApplied)
}

func (suite *TestSuiteStandard) TestCreateExpenseWithTax() {
	suite.startDay("100")
	suite.enableTax("10", "true")

	recorder := suite.request("POST", "/v1/expenses", `{ "amount": "100" }`)
	test.AssertHTTPStatus(suite.T(), 201, &recorder)

	var response v1.DayResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.requireEqual("-10", response.Data.Balance)
	suite.Require().Len(response.Data.Expenses, 1)
	suite.requireEqual("110", response.Data.Expenses[0].EffectiveDebit)
	suite.requireEqual("10", response.Data.Expenses[0].TaxApplied)
}

func (suite *TestSuiteStandard) TestCreateExpenseNotStarted() {
	recorder := suite.request("POST", "/v1/expenses", `{ "amount": "10" }`)
	test.AssertHTTPStatus(suite.T(), 404, &recorder)
}

func (suite *TestSuiteStandard) TestCreateExpenseInvalidBody() {
	suite.startDay("100")

	tests := []struct {
		name string
		body string
	}{
		{"broken json", `{ "amount": "10"`},
		{"missing amount", `{ "name": "groceries" }`},
		{"amount not a number", `{ "amount": "lots" }`},
		{"zero amount", `{ "amount": "0" }`},
		{"negative amount", `{ "amount": "-5" }`},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := suite.request("POST", "/v1/expenses", tt.body)
			test.AssertHTTPStatus(t, 400, &recorder)
		})
	}
}

func (suite *TestSuiteStandard) TestGetExpenses() {
	suite.startDay("100")

	for _, amount := range []string{"10", "20"} {
		recorder := suite.request("POST", "/v1/expenses", fmt.Sprintf(`{ "amount": "%s" }`, amount))
		test.AssertHTTPStatus(suite.T(), 201, &recorder)
	}

	recorder := suite.request("GET", "/v1/expenses", "")
	test.AssertHTTPStatus(suite.T(), 200, &recorder)

	var response v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal(0, response.Data[0].Index)
	suite.Assert().Equal(1, response.Data[1].Index)
	suite.requireEqual("10", response.Data[0].Amount)
	suite.requireEqual("20", response.Data[1].Amount)
}

func (suite *TestSuiteStandard) TestGetExpense() {
	suite.startDay("100")

	recorder := suite.request("POST", "/v1/expenses", `{ "amount": "42", "name": "lunch" }`)
	test.AssertHTTPStatus(suite.T(), 201, &recorder)

	recorder = suite.request("GET", "/v1/expenses/0", "")
	test.AssertHTTPStatus(suite.T(), 200, &recorder)

	var response v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("lunch", response.Data.Name)
	suite.requireEqual("42", response.Data.Amount)
}

func (suite *TestSuiteStandard) TestGetExpenseNotFound() {
	suite.startDay("100")

	recorder := suite.request("GET", "/v1/expenses/0", "")
	test.AssertHTTPStatus(suite.T(), 404, &recorder)
}

func (suite *TestSuiteStandard) TestUpdateExpense() {
	suite.startDay("100")

	recorder := suite.request("POST", "/v1/expenses", `{ "amount": "30", "name": "groceries" }`)
	test.AssertHTTPStatus(suite.T(), 201, &recorder)

	recorder = suite.request("PATCH", "/v1/expenses/0", `{ "amount": "45" }`)
	test.AssertHTTPStatus(suite.T(), 200, &recorder)

	var response v1.DayResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.requireEqual("55", response.Data.Balance)
	suite.Require().Len(response.Data.Expenses, 1)
	suite.requireEqual("45", response.Data.Expenses[0].Amount)
	suite.Assert().Equal("groceries", response.Data.Expenses[0].Name)
}

func (suite *TestSuiteStandard) TestUpdateExpenseNotFound() {
	suite.startDay("100")

	recorder := suite.request("PATCH", "/v1/expenses/3", `{ "amount": "45" }`)
	test.AssertHTTPStatus(suite.T(), 404, &recorder)
}

func (suite *TestSuiteStandard) TestDeleteExpense() {
	suite.startDay("100")
	suite.enableTax("10", "true")

	recorder := suite.request("POST", "/v1/expenses", `{ "amount": "50" }`)
	test.AssertHTTPStatus(suite.T(), 201, &recorder)

	recorder = suite.request("DELETE", "/v1/expenses/0", "")
	test.AssertHTTPStatus(suite.T(), 200, &recorder)

	var response v1.DayResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.requireEqual("100", response.Data.Balance)
	suite.Assert().Empty(response.Data.Expenses)

	// The accrued tax is reversed out of the vault
	recorder = suite.request("GET", "/v1/vault", "")
	test.AssertHTTPStatus(suite.T(), 200, &recorder)

	var vault v1.VaultResponse
	test.DecodeResponse(suite.T(), &recorder, &vault)
	suite.requireEqual("0", vault.Data.Balance)
}

func (suite *TestSuiteStandard) TestDeleteExpenseNotFound() {
	suite.startDay("100")

	recorder := suite.request("DELETE", "/v1/expenses/0", "")
	test.AssertHTTPStatus(suite.T(), 404, &recorder)
}
