package models

import (
	"errors"

	"github.com/daily-envelope/backend/internal/money"
	"github.com/shopspring/decimal"
)

var (
	ErrExpenseNotFound   = errors.New("there is no expense at this position")
	ErrAmountNotPositive = errors.New("expense amounts must be larger than zero")
)

// Expense is one recorded expense of the active day.
//
// EffectiveDebit and TaxApplied are derived once, from the tax settings in
// force when the expense was recorded or last edited. They are immutable
// evidence of the policy that applied at that moment and are never recomputed
// when the settings change later.
type Expense struct {
	Amount              decimal.Decimal `json:"amount"`
	EffectiveDebit      decimal.Decimal `json:"effectiveDebit"`
	TaxApplied          decimal.Decimal `json:"taxApplied"`
	CountsAgainstBudget bool            `json:"countsAgainstBudget"`
	Name                string          `json:"name,omitempty"`
}

// Normalize brings a persisted expense into a valid shape.
//
// Records written by the first version of the tracker carry no effectiveDebit,
// for those the raw amount is the debit. Normalizing once on load keeps this
// fallback out of every computation.
func (e *Expense) Normalize() {
	if e.EffectiveDebit.IsZero() {
		e.EffectiveDebit = e.Amount
		e.CountsAgainstBudget = true
	}
}

// ExpenseBook is the ordered list of the active day's expenses, indexed by
// position. Order is recording order.
type ExpenseBook []Expense

// Insert appends an expense to the end of the book.
func (b *ExpenseBook) Insert(expense Expense) {
	*b = append(*b, expense)
}

// At returns the expense at the given position.
func (b ExpenseBook) At(index int) (Expense, error) {
	if index < 0 || index >= len(b) {
		return Expense{}, ErrExpenseNotFound
	}

	return b[index], nil
}

// ReplaceAt replaces the expense at the given position.
func (b ExpenseBook) ReplaceAt(index int, expense Expense) error {
	if index < 0 || index >= len(b) {
		return ErrExpenseNotFound
	}

	b[index] = expense
	return nil
}

// RemoveAt removes the expense at the given position.
func (b *ExpenseBook) RemoveAt(index int) error {
	if index < 0 || index >= len(*b) {
		return ErrExpenseNotFound
	}

	*b = append((*b)[:index], (*b)[index+1:]...)
	return nil
}

// TotalEffectiveDebit returns the sum of all effective debits.
func (b ExpenseBook) TotalEffectiveDebit() decimal.Decimal {
	sum := decimal.Zero
	for _, e := range b {
		sum = sum.Add(e.EffectiveDebit)
	}

	return money.RoundCents(sum)
}

// TotalTaxApplied returns the sum of all applied taxes.
func (b ExpenseBook) TotalTaxApplied() decimal.Decimal {
	sum := decimal.Zero
	for _, e := range b {
		sum = sum.Add(e.TaxApplied)
	}

	return money.RoundCents(sum)
}
