package v1_test

import (
	v1 "github.com/daily-envelope/backend/internal/controllers/v1"
	"github.com/daily-envelope/backend/internal/models"
	"github.com/daily-envelope/backend/internal/test"
)

func (suite *TestSuiteStandard) TestGetVaultEmpty() {
	recorder := suite.request("GET", "/v1/vault", "")
	test.AssertHTTPStatus(suite.T(), 200, &recorder)

	var response v1.VaultResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.requireEqual("0", response.Data.Balance)
	suite.requireEqual("0", response.Data.TaxToday)
}

func (suite *TestSuiteStandard) TestGetVault() {
	suite.startDay("100")
	suite.enableTax("10", "true")

	recorder := suite.request("POST", "/v1/expenses", `{ "amount": "50" }`)
	test.AssertHTTPStatus(suite.T(), 201, &recorder)

	recorder = suite.request("GET", "/v1/vault", "")
	test.AssertHTTPStatus(suite.T(), 200, &recorder)

	var response v1.VaultResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.requireEqual("5", response.Data.Balance)
	suite.requireEqual("5", response.Data.TaxToday)
}

func (suite *TestSuiteStandard) TestCreateVaultWithdrawal() {
	suite.startDay("100")
	suite.enableTax("10", "true")

	recorder := suite.request("POST", "/v1/expenses", `{ "amount": "80" }`)
	test.AssertHTTPStatus(suite.T(), 201, &recorder)

	recorder = suite.request("POST", "/v1/vault/withdrawal", "")
	test.AssertHTTPStatus(suite.T(), 201, &recorder)

	var response v1.WithdrawalResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.requireEqual("8", response.Data.Amount)

	// The vault is empty afterwards
	recorder = suite.request("GET", "/v1/vault", "")
	test.AssertHTTPStatus(suite.T(), 200, &recorder)

	var vault v1.VaultResponse
	test.DecodeResponse(suite.T(), &recorder, &vault)
	suite.requireEqual("0", vault.Data.Balance)
}

func (suite *TestSuiteStandard) TestCreateVaultWithdrawalEmpty() {
	recorder := suite.request("POST", "/v1/vault/withdrawal", "")
	test.AssertHTTPStatus(suite.T(), 201, &recorder)

	var response v1.WithdrawalResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.requireEqual("0", response.Data.Amount)

	// Withdrawing an empty vault leaves no trace in the ledger
	recorder = suite.request("GET", "/v1/ledger", "")
	test.AssertHTTPStatus(suite.T(), 200, &recorder)

	var ledger v1.LedgerResponse
	test.DecodeResponse(suite.T(), &recorder, &ledger)
	suite.Assert().Empty(ledger.Data)
}

func (suite *TestSuiteStandard) TestGetLedger() {
	suite.startDay("100")
	suite.enableTax("10", "true")

	recorder := suite.request("POST", "/v1/expenses", `{ "amount": "50" }`)
	test.AssertHTTPStatus(suite.T(), 201, &recorder)

	recorder = suite.request("POST", "/v1/vault/withdrawal", "")
	test.AssertHTTPStatus(suite.T(), 201, &recorder)

	recorder = suite.request("GET", "/v1/ledger", "")
	test.AssertHTTPStatus(suite.T(), 200, &recorder)

	var response v1.LedgerResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal(models.LedgerAccrual, response.Data[0].Kind)
	suite.requireEqual("5", response.Data[0].Delta)
	suite.Assert().Equal(models.LedgerManualWithdrawal, response.Data[1].Kind)
	suite.requireEqual("-5", response.Data[1].Delta)
	suite.Assert().Equal("2024-01-01", response.Data[0].Date.String())
}

func (suite *TestSuiteStandard) TestDeleteAll() {
	suite.startDay("100")
	suite.enableTax("10", "true")

	recorder := suite.request("POST", "/v1/expenses", `{ "amount": "50" }`)
	test.AssertHTTPStatus(suite.T(), 201, &recorder)

	recorder = suite.request("DELETE", "/v1", "")
	test.AssertHTTPStatus(suite.T(), 204, &recorder)

	recorder = suite.request("GET", "/v1/day", "")
	test.AssertHTTPStatus(suite.T(), 404, &recorder)

	recorder = suite.request("GET", "/v1/vault", "")
	test.AssertHTTPStatus(suite.T(), 200, &recorder)

	var vault v1.VaultResponse
	test.DecodeResponse(suite.T(), &recorder, &vault)
	suite.requireEqual("0", vault.Data.Balance)

	// Settings are back to their defaults
	recorder = suite.request("GET", "/v1/settings", "")
	test.AssertHTTPStatus(suite.T(), 200, &recorder)

	var settings v1.SettingsResponse
	test.DecodeResponse(suite.T(), &recorder, &settings)
	suite.Assert().False(settings.Data.Enabled)
}
