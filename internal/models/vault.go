package models

import (
	"github.com/daily-envelope/backend/internal/money"
	"github.com/shopspring/decimal"
)

// VaultState is the accumulator of tax proceeds, separate from the daily
// balance.
//
// The balance is clamped to zero on every write: accruals increase it,
// reversals decrease it but never below zero, even if a reversal exceeds the
// recorded balance because the persisted record was tampered with.
type VaultState struct {
	Balance decimal.Decimal `json:"balance"`
}

// Accrue adds tax proceeds to the vault.
func (v *VaultState) Accrue(amount decimal.Decimal) {
	v.Balance = money.ClampMin(money.RoundCents(v.Balance.Add(amount)), decimal.Zero)
}

// Reverse takes previously accrued tax back out of the vault.
func (v *VaultState) Reverse(amount decimal.Decimal) {
	v.Balance = money.ClampMin(money.RoundCents(v.Balance.Sub(amount)), decimal.Zero)
}

// WithdrawAll empties the vault and returns the withdrawn amount. It is used
// when the user converts the accrued tax into an external purchase.
//
// Every Accrue, Reverse and WithdrawAll must be paired with a ledger append
// of matching sign by the caller.
func (v *VaultState) WithdrawAll() decimal.Decimal {
	withdrawn := v.Balance
	v.Balance = decimal.Zero
	return withdrawn
}

// Normalize brings a persisted vault record into a valid shape.
func (v *VaultState) Normalize() {
	v.Balance = money.ClampMin(money.RoundCents(v.Balance), decimal.Zero)
}
