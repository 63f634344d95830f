package domain

import "time"

// Ledger entry types
const (
	EntryPostDebit = "post_debit"
	EntryRegen     = "regen"
)

// LedgerEntry records a single balance movement (negative for debits).
type LedgerEntry struct {
	ID        int64                  `db:"id" json:"id"`
	UserID    int64                  `db:"user_id" json:"user_id"`
	Type      string                 `db:"type" json:"type"`
	Amount    int64                  `db:"amount" json:"amount"`
	Meta      map[string]interface{} `db:"meta" json:"meta,omitempty"`
	CreatedAt time.Time              `db:"created_at" json:"created_at"`
}
