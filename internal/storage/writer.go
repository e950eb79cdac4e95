package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

type txn interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type noopTx struct{}

func (noopTx) Commit(context.Context) error   { return nil }
func (noopTx) Rollback(context.Context) error { return nil }

// Writer scopes record tables to a single write unit.
type Writer struct {
	tx       txn
	Incomes  sqlconfig.IRecordTable
	Expenses sqlconfig.IRecordTable
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx:       tx,
		Incomes:  sqlconfig.NewRecordsTable(tx, sqlconfig.IncomesCollection),
		Expenses: sqlconfig.NewRecordsTable(tx, sqlconfig.ExpensesCollection),
	}
}

func (w *Writer) Table(c sqlconfig.Collection) sqlconfig.IRecordTable {
	if c == sqlconfig.ExpensesCollection {
		return w.Expenses
	}
	return w.Incomes
}

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}
