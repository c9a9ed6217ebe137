package models

import (
	"time"

	"github.com/daily-envelope/backend/internal/money"
	"github.com/daily-envelope/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerEntryKind describes why the vault balance changed.
type LedgerEntryKind string

const (
	// LedgerAccrual is the tax skimmed off a newly recorded expense.
	LedgerAccrual LedgerEntryKind = "accrual"
	// LedgerEditReversal reverses the tax of an expense that was edited.
	LedgerEditReversal LedgerEntryKind = "edit-reversal"
	// LedgerDeleteReversal reverses the tax of an expense that was deleted.
	LedgerDeleteReversal LedgerEntryKind = "delete-reversal"
	// LedgerManualWithdrawal is a user-initiated withdrawal of the whole
	// vault balance.
	LedgerManualWithdrawal LedgerEntryKind = "manual-withdrawal"
)

// LedgerEntry is one vault-affecting event.
type LedgerEntry struct {
	ID        uuid.UUID       `json:"id"`
	Timestamp time.Time       `json:"timestamp"`
	Date      types.Day       `json:"date"`
	Delta     decimal.Decimal `json:"delta"`
	Kind      LedgerEntryKind `json:"kind"`
}

// Ledger is the append-only audit trail of vault-affecting events.
// Insertion order is chronological order; past entries are never mutated.
type Ledger []LedgerEntry

// Append records a vault change. Appending a zero delta is a no-op.
func (l *Ledger) Append(now time.Time, delta decimal.Decimal, kind LedgerEntryKind) {
	if delta.IsZero() {
		return
	}

	*l = append(*l, LedgerEntry{
		ID:        uuid.New(),
		Timestamp: now,
		Date:      types.DayOf(now),
		Delta:     money.RoundCents(delta),
		Kind:      kind,
	})
}
