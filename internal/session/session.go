// Package session orchestrates the balance engine.
//
// A Session coordinates the day state, the tax settings, the vault and the
// ledger so that every expense mutation and every tax accrual or reversal
// happen atomically together. Each operation, read or write, performs the
// day rollover first and runs inside a single storage transaction: either
// all of its record writes are kept or none are.
package session

import (
	"errors"
	"time"

	"github.com/daily-envelope/backend/internal/models"
	"github.com/daily-envelope/backend/internal/money"
	"github.com/daily-envelope/backend/internal/storage"
	"github.com/daily-envelope/backend/internal/types"
	"github.com/shopspring/decimal"
)

var ErrNotStarted = errors.New("there is no active day ledger, start one first")

// Session exposes the engine's operations over a dependency-injected store.
type Session struct {
	store storage.Store
	now   func() time.Time
}

func New(store storage.Store) *Session {
	return &Session{store: store, now: time.Now}
}

// NewWithClock returns a Session whose idea of "now" comes from the passed
// function. Used to test rollover behavior.
func NewWithClock(store storage.Store, now func() time.Time) *Session {
	return &Session{store: store, now: now}
}

// Ping verifies that the backing store is reachable.
func (s *Session) Ping() error {
	return s.store.Ping()
}

// State is the snapshot of the day state returned by every operation that
// touches it, with the live balance already computed.
type State struct {
	Day     models.DayState
	Balance decimal.Decimal
}

// VaultReport is the snapshot returned by the vault read operation.
type VaultReport struct {
	Balance  decimal.Decimal
	TaxToday decimal.Decimal
}

func snapshot(day *models.DayState) State {
	return State{Day: *day, Balance: day.Balance()}
}

// Start initializes the day ledger. Any previously active day is replaced,
// the vault and the ledger are kept. When settings are passed, they are
// persisted along with the new day state, so a tracker set up from scratch
// starts with the tax policy chosen during setup.
func (s *Session) Start(dailyAmount decimal.Decimal, startDate types.Day, settings *models.TaxSettings) (State, error) {
	var state State

	err := s.store.Transaction(func(kv storage.KV) error {
		day, err := models.NewDayState(dailyAmount, startDate, types.DayOf(s.now()))
		if err != nil {
			return err
		}

		if settings != nil {
			settings.Normalize()
			if err := saveSettings(kv, *settings); err != nil {
				return err
			}
		}

		if err := saveDayState(kv, day); err != nil {
			return err
		}

		state = snapshot(day)
		return nil
	})

	return state, err
}

// State rolls the day over if needed and returns the current state.
func (s *Session) State() (State, error) {
	var state State

	err := s.store.Transaction(func(kv storage.KV) error {
		day, err := s.activeDay(kv)
		if err != nil {
			return err
		}

		state = snapshot(day)
		return nil
	})

	return state, err
}

// AddExpense records an expense against the active day. The tax in force
// right now is assessed, accrued into the vault and written to the ledger.
func (s *Session) AddExpense(amount decimal.Decimal, name string) (State, error) {
	if !amount.IsPositive() {
		return State{}, models.ErrAmountNotPositive
	}

	var state State

	err := s.store.Transaction(func(kv storage.KV) error {
		day, err := s.activeDay(kv)
		if err != nil {
			return err
		}

		expense, err := s.assessAndAccrue(kv, amount, name)
		if err != nil {
			return err
		}

		day.Expenses.Insert(expense)
		if err := saveDayState(kv, day); err != nil {
			return err
		}

		state = snapshot(day)
		return nil
	})

	return state, err
}

// EditExpense replaces the expense at the given position with one for the
// new amount. The old expense's tax is reversed first, then the tax for the
// new amount is assessed and accrued exactly as on add. Reversal strictly
// before reapplication, so a failed reapplication can never leave the vault
// double-counted. Fields not being changed, like the name, are preserved.
func (s *Session) EditExpense(index int, amount decimal.Decimal) (State, error) {
	if !amount.IsPositive() {
		return State{}, models.ErrAmountNotPositive
	}

	var state State

	err := s.store.Transaction(func(kv storage.KV) error {
		day, err := s.activeDay(kv)
		if err != nil {
			return err
		}

		old, err := day.Expenses.At(index)
		if err != nil {
			return err
		}

		if err := s.reverse(kv, old.TaxApplied, models.LedgerEditReversal); err != nil {
			return err
		}

		expense, err := s.assessAndAccrue(kv, amount, old.Name)
		if err != nil {
			return err
		}

		if err := day.Expenses.ReplaceAt(index, expense); err != nil {
			return err
		}

		if err := saveDayState(kv, day); err != nil {
			return err
		}

		state = snapshot(day)
		return nil
	})

	return state, err
}

// DeleteExpense removes the expense at the given position, reversing its tax
// the same way the first half of an edit does.
func (s *Session) DeleteExpense(index int) (State, error) {
	var state State

	err := s.store.Transaction(func(kv storage.KV) error {
		day, err := s.activeDay(kv)
		if err != nil {
			return err
		}

		expense, err := day.Expenses.At(index)
		if err != nil {
			return err
		}

		if err := s.reverse(kv, expense.TaxApplied, models.LedgerDeleteReversal); err != nil {
			return err
		}

		if err := day.Expenses.RemoveAt(index); err != nil {
			return err
		}

		if err := saveDayState(kv, day); err != nil {
			return err
		}

		state = snapshot(day)
		return nil
	})

	return state, err
}

// Settings returns the tax settings currently in force.
func (s *Session) Settings() (models.TaxSettings, error) {
	var settings models.TaxSettings

	err := s.store.Transaction(func(kv storage.KV) error {
		var err error
		settings, err = loadSettings(kv)
		return err
	})

	return settings, err
}

// UpdateSettings replaces the tax settings. Expenses already recorded keep
// the effective debit and tax of the policy that applied when they were
// recorded, a settings change is never retroactive.
func (s *Session) UpdateSettings(settings models.TaxSettings) (models.TaxSettings, error) {
	settings.Normalize()

	err := s.store.Transaction(func(kv storage.KV) error {
		return saveSettings(kv, settings)
	})

	return settings, err
}

// VaultReport returns the vault balance and the tax accrued by the active
// day's expenses. The day is rolled over first, so "today" is never stale.
func (s *Session) VaultReport() (VaultReport, error) {
	var report VaultReport

	err := s.store.Transaction(func(kv storage.KV) error {
		vault, err := loadVault(kv)
		if err != nil {
			return err
		}
		report.Balance = vault.Balance
		report.TaxToday = decimal.Zero

		// The vault exists independently of the day ledger, its
		// balance is reported even before the first start.
		day, err := s.rolledOverDay(kv)
		if err != nil {
			return err
		}
		if day != nil {
			report.TaxToday = day.TaxToday()
		}

		return nil
	})

	return report, err
}

// WithdrawVault empties the vault, recording a manual withdrawal in the
// ledger, and returns the withdrawn amount.
func (s *Session) WithdrawVault() (decimal.Decimal, error) {
	withdrawn := decimal.Zero

	err := s.store.Transaction(func(kv storage.KV) error {
		vault, err := loadVault(kv)
		if err != nil {
			return err
		}

		withdrawn = vault.WithdrawAll()
		if withdrawn.IsZero() {
			return nil
		}

		ledger, err := loadLedger(kv)
		if err != nil {
			return err
		}
		ledger.Append(s.now(), withdrawn.Neg(), models.LedgerManualWithdrawal)

		if err := saveVault(kv, vault); err != nil {
			return err
		}
		return saveLedger(kv, ledger)
	})

	return withdrawn, err
}

// LedgerEntries returns the full, time-ordered ledger.
func (s *Session) LedgerEntries() (models.Ledger, error) {
	entries := models.Ledger{}

	err := s.store.Transaction(func(kv storage.KV) error {
		var err error
		entries, err = loadLedger(kv)
		return err
	})

	return entries, err
}

// Reset removes all four records together, returning the tracker to its
// pre-initialization state.
func (s *Session) Reset() error {
	return s.store.Transaction(func(kv storage.KV) error {
		for _, key := range []string{storage.KeyDayState, storage.KeyTaxSettings, storage.KeyVault, storage.KeyLedger} {
			if err := kv.Remove(key); err != nil {
				return err
			}
		}
		return nil
	})
}

// activeDay loads the day state and rolls it over. It fails with
// ErrNotStarted when no day ledger exists.
func (s *Session) activeDay(kv storage.KV) (*models.DayState, error) {
	day, err := s.rolledOverDay(kv)
	if err != nil {
		return nil, err
	}
	if day == nil {
		return nil, ErrNotStarted
	}

	return day, nil
}

// rolledOverDay loads the day state, if any, and applies the rollover.
// Rollover happens before anything else in an operation, read or write, so
// the balance is always "as of now". The rollover write is part of the
// surrounding transaction and persists also for pure read operations.
func (s *Session) rolledOverDay(kv storage.KV) (*models.DayState, error) {
	day, err := loadDayState(kv)
	if err != nil || day == nil {
		return day, err
	}

	if day.AdvanceTo(types.DayOf(s.now())) {
		if err := saveDayState(kv, day); err != nil {
			return nil, err
		}
	}

	return day, nil
}

// assessAndAccrue runs the tax policy for a new expense amount and applies
// its side effects: vault accrual and the matching ledger entry.
func (s *Session) assessAndAccrue(kv storage.KV, amount decimal.Decimal, name string) (models.Expense, error) {
	settings, err := loadSettings(kv)
	if err != nil {
		return models.Expense{}, err
	}

	assessment := settings.Assess(amount)

	if assessment.TaxApplied.IsPositive() {
		vault, err := loadVault(kv)
		if err != nil {
			return models.Expense{}, err
		}
		vault.Accrue(assessment.TaxApplied)
		if err := saveVault(kv, vault); err != nil {
			return models.Expense{}, err
		}

		ledger, err := loadLedger(kv)
		if err != nil {
			return models.Expense{}, err
		}
		ledger.Append(s.now(), assessment.TaxApplied, models.LedgerAccrual)
		if err := saveLedger(kv, ledger); err != nil {
			return models.Expense{}, err
		}
	}

	return models.Expense{
		Amount:              money.RoundCents(amount),
		EffectiveDebit:      assessment.EffectiveDebit,
		TaxApplied:          assessment.TaxApplied,
		CountsAgainstBudget: settings.CountsAgainstBudget,
		Name:                name,
	}, nil
}

// reverse takes tax back out of the vault with the matching ledger entry.
// A zero tax reverses nothing and appends nothing.
func (s *Session) reverse(kv storage.KV, tax decimal.Decimal, kind models.LedgerEntryKind) error {
	if !tax.IsPositive() {
		return nil
	}

	vault, err := loadVault(kv)
	if err != nil {
		return err
	}
	vault.Reverse(tax)
	if err := saveVault(kv, vault); err != nil {
		return err
	}

	ledger, err := loadLedger(kv)
	if err != nil {
		return err
	}
	ledger.Append(s.now(), tax.Neg(), kind)
	return saveLedger(kv, ledger)
}
