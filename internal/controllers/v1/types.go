package v1

import (
	"github.com/daily-envelope/backend/internal/httputil"
	"github.com/daily-envelope/backend/internal/models"
	"github.com/daily-envelope/backend/internal/session"
	"github.com/daily-envelope/backend/internal/types"
	"github.com/shopspring/decimal"
)

type URIIndex struct {
	Index int `uri:"index"` // Position of the expense in the active day's list
}

// StartRequest initializes the day ledger. Amounts are user-entered strings,
// both decimal separator conventions are accepted.
type StartRequest struct {
	DailyAmount string             `json:"dailyAmount" binding:"required" example:"100"`
	StartDate   string             `json:"startDate" binding:"required" example:"2024-01-01"`
	Tax         *TaxSettingsUpdate `json:"tax,omitempty"`
}

// TaxSettingsUpdate is a partial update, only set fields are changed.
type TaxSettingsUpdate struct {
	Enabled             *bool   `json:"enabled,omitempty" example:"true"`
	Rate                *string `json:"rate,omitempty" example:"10"`
	CountsAgainstBudget *bool   `json:"countsAgainstBudget,omitempty" example:"true"`
}

// apply merges the update over existing settings.
func (u TaxSettingsUpdate) apply(settings *models.TaxSettings) error {
	if u.Enabled != nil {
		settings.Enabled = *u.Enabled
	}
	if u.Rate != nil {
		rate, err := httputil.ParseAmount(*u.Rate)
		if err != nil {
			return err
		}
		settings.Rate = rate
	}
	if u.CountsAgainstBudget != nil {
		settings.CountsAgainstBudget = *u.CountsAgainstBudget
	}

	return nil
}

type ExpenseCreate struct {
	Amount string `json:"amount" binding:"required" example:"23,50"`
	Name   string `json:"name" example:"groceries"`
}

type ExpenseUpdate struct {
	Amount string `json:"amount" binding:"required" example:"42"`
}

type Expense struct {
	Index               int             `json:"index" example:"0"`
	Amount              decimal.Decimal `json:"amount" example:"100"`
	EffectiveDebit      decimal.Decimal `json:"effectiveDebit" example:"110"`
	TaxApplied          decimal.Decimal `json:"taxApplied" example:"10"`
	CountsAgainstBudget bool            `json:"countsAgainstBudget" example:"true"`
	Name                string          `json:"name,omitempty" example:"groceries"`
}

func newExpense(index int, e models.Expense) Expense {
	return Expense{
		Index:               index,
		Amount:              e.Amount,
		EffectiveDebit:      e.EffectiveDebit,
		TaxApplied:          e.TaxApplied,
		CountsAgainstBudget: e.CountsAgainstBudget,
		Name:                e.Name,
	}
}

type Day struct {
	StartDate   types.Day       `json:"startDate" example:"2024-01-01"`
	DailyAmount decimal.Decimal `json:"dailyAmount" example:"100"`
	CurrentDate types.Day       `json:"currentDate" example:"2024-01-02"`
	LastBalance decimal.Decimal `json:"lastBalance" example:"-30"`
	Balance     decimal.Decimal `json:"balance" example:"70"`
	Expenses    []Expense       `json:"expenses"`
}

func newDay(state session.State) Day {
	expenses := make([]Expense, 0, len(state.Day.Expenses))
	for i, e := range state.Day.Expenses {
		expenses = append(expenses, newExpense(i, e))
	}

	return Day{
		StartDate:   state.Day.StartDate,
		DailyAmount: state.Day.DailyAmount,
		CurrentDate: state.Day.CurrentDate,
		LastBalance: state.Day.LastBalance,
		Balance:     state.Balance,
		Expenses:    expenses,
	}
}

type DayResponse struct {
	Data Day `json:"data"`
}

type ExpenseResponse struct {
	Data Expense `json:"data"`
}

type ExpenseListResponse struct {
	Data []Expense `json:"data"`
}

type SettingsResponse struct {
	Data models.TaxSettings `json:"data"`
}

type Vault struct {
	Balance  decimal.Decimal `json:"balance" example:"10"`
	TaxToday decimal.Decimal `json:"taxToday" example:"10"`
}

type VaultResponse struct {
	Data Vault `json:"data"`
}

type Withdrawal struct {
	Amount decimal.Decimal `json:"amount" example:"33.40"`
}

type WithdrawalResponse struct {
	Data Withdrawal `json:"data"`
}

type LedgerResponse struct {
	Data models.Ledger `json:"data"`
}
