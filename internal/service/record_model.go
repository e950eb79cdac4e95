package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// Record represents an income or expense in the service layer.
type Record struct {
	ID          uuid.UUID
	Title       string
	Amount      decimal.Decimal
	Category    string
	Date        time.Time
	Description string
	CreatedAt   time.Time
}

// RecordInput carries the fields submitted for add and update.
// Amount holds the raw decoded JSON value so that non-numeric input
// can be told apart from a missing one.
type RecordInput struct {
	Title       string
	Amount      any
	Category    string
	Date        string
	Description string
}

func recordFromStorage(row *sqlconfig.Record) Record {
	return Record{
		ID:          row.ID,
		Title:       row.Title,
		Amount:      row.Amount,
		Category:    row.Category,
		Date:        row.Date,
		Description: row.Description,
		CreatedAt:   row.CreatedAt,
	}
}
