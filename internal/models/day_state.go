package models

import (
	"errors"

	"github.com/daily-envelope/backend/internal/money"
	"github.com/daily-envelope/backend/internal/types"
	"github.com/shopspring/decimal"
)

var ErrInvalidStart = errors.New("the daily amount must be larger than zero and the start date must be set")

// DayState is the balance engine's state for the active day.
//
// Invariants: CurrentDate is the latest day for which rollover has been
// applied, and Expenses contains only entries belonging to CurrentDate.
// LastBalance is the closing balance of the previous day, carried forward
// signed, so a deficit stays a deficit.
type DayState struct {
	StartDate   types.Day       `json:"startDate"`
	DailyAmount decimal.Decimal `json:"dailyAmount"`
	CurrentDate types.Day       `json:"currentDate"`
	LastBalance decimal.Decimal `json:"lastBalance"`
	Expenses    ExpenseBook     `json:"expenses"`
}

// NewDayState initializes the balance engine.
func NewDayState(dailyAmount decimal.Decimal, startDate, today types.Day) (*DayState, error) {
	if !dailyAmount.IsPositive() || startDate.IsZero() {
		return nil, ErrInvalidStart
	}

	return &DayState{
		StartDate:   startDate,
		DailyAmount: money.RoundCents(dailyAmount),
		CurrentDate: today,
		LastBalance: decimal.Zero,
		Expenses:    ExpenseBook{},
	}, nil
}

// Balance returns the live balance of the active day. It never mutates state.
func (s *DayState) Balance() decimal.Decimal {
	return money.Sum(s.LastBalance, s.DailyAmount, s.Expenses.TotalEffectiveDebit().Neg())
}

// AdvanceTo rolls the state over to today if the day has changed since the
// last rollover. The previous day's closing balance is carried forward
// signed and the expense list starts empty.
//
// AdvanceTo is idempotent within the same day. It reports whether a rollover
// happened, so callers know the state needs to be persisted.
func (s *DayState) AdvanceTo(today types.Day) bool {
	if s.CurrentDate.Equal(today) {
		return false
	}

	s.LastBalance = s.Balance()
	s.CurrentDate = today
	s.Expenses = ExpenseBook{}
	return true
}

// TaxToday returns the tax accrued by the active day's expenses.
func (s *DayState) TaxToday() decimal.Decimal {
	return s.Expenses.TotalTaxApplied()
}

// Valid performs the minimal shape check for persisted day states.
func (s *DayState) Valid() bool {
	return s != nil && !s.CurrentDate.IsZero() && s.DailyAmount.IsPositive() && s.Expenses != nil
}

// Normalize brings a persisted day state into a valid shape.
func (s *DayState) Normalize() {
	for i := range s.Expenses {
		s.Expenses[i].Normalize()
	}
}
