package models

import (
	"github.com/daily-envelope/backend/internal/money"
	"github.com/shopspring/decimal"
)

// TaxAssessment is the result of applying the tax settings to a raw expense
// amount.
type TaxAssessment struct {
	// EffectiveDebit is the amount actually subtracted from the daily
	// balance for the expense.
	EffectiveDebit decimal.Decimal
	// TaxApplied is the amount accrued into the vault.
	TaxApplied decimal.Decimal
}

// Assess computes the tax for a raw expense amount.
//
// Assess is pure: it neither accrues into the vault nor appends to the
// ledger, that is the caller's job. This keeps policy computation and side
// effects separately testable.
func (s TaxSettings) Assess(amount decimal.Decimal) TaxAssessment {
	if !s.Enabled || !s.Rate.IsPositive() || !amount.IsPositive() {
		return TaxAssessment{EffectiveDebit: amount}
	}

	tax := money.RoundCents(amount.Mul(s.Rate).Div(decimal.NewFromInt(100)))

	effective := amount
	if s.CountsAgainstBudget {
		effective = money.RoundCents(amount.Add(tax))
	}

	return TaxAssessment{EffectiveDebit: effective, TaxApplied: tax}
}
