package sqlconfig

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Collection names one of the disjoint record tables.
type Collection string

const (
	IncomesCollection  Collection = "incomes"
	ExpensesCollection Collection = "expenses"
)

// ErrRecordNotFound is returned when no row matches the requested identifier.
var ErrRecordNotFound = errors.New("record not found")

// Record represents a stored income or expense row.
type Record struct {
	ID          uuid.UUID       `db:"id"`
	Title       string          `db:"title"`
	Amount      decimal.Decimal `db:"amount"`
	Category    string          `db:"category"`
	Date        time.Time       `db:"date"`
	Description string          `db:"description"`
	CreatedAt   time.Time       `db:"created_at"`
}

// RecordValues holds every mutable column. Insert and Update both write all of them.
type RecordValues struct {
	Title       string
	Amount      decimal.Decimal
	Category    string
	Date        time.Time
	Description string
}

// IRecordTable defines the interface for record storage operations.
// Postgres and in-memory tables both satisfy it.
//
//go:generate mockery --name IRecordTable --output mock_IRecordTable.go
type IRecordTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Record, error)
	Insert(ctx context.Context, values *RecordValues) (*Record, error)
	List(ctx context.Context) ([]*Record, error)
	Update(ctx context.Context, id uuid.UUID, values *RecordValues) (*Record, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
