package models

import (
	"github.com/daily-envelope/backend/internal/money"
	"github.com/shopspring/decimal"
)

// TaxSettings configures the proportional tax that is skimmed off every
// expense into the vault.
//
// The settings are persisted independently of the day state, so they survive
// rollover and are only cleared by a full reset.
type TaxSettings struct {
	Enabled bool `json:"enabled"`
	// Rate is the tax percentage applied to each expense.
	Rate decimal.Decimal `json:"rate"`
	// CountsAgainstBudget controls whether the tax is part of the
	// expense's effective debit or only accrues into the vault.
	CountsAgainstBudget bool `json:"countsAgainstBudget"`
}

// DefaultTaxSettings returns the settings used when none have been persisted:
// tax disabled, but a 10% rate preset for when it is switched on.
func DefaultTaxSettings() TaxSettings {
	return TaxSettings{
		Enabled:             false,
		Rate:                decimal.NewFromInt(10),
		CountsAgainstBudget: true,
	}
}

// Normalize brings persisted settings into a valid shape.
func (s *TaxSettings) Normalize() {
	s.Rate = money.ClampMin(money.RoundCents(s.Rate), decimal.Zero)
}
