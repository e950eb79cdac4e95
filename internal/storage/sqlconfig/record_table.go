package sqlconfig

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var recordColumns = []any{"id", "title", "amount", "category", "date", "description", "created_at"}

var _ IRecordTable = (*RecordsTable)(nil)

// RecordsTable provides access to one record table.
type RecordsTable struct {
	exec  bob.Executor
	table string
}

// NewRecordsTable creates a RecordsTable for the collection, running queries on exec
// (a bob.DB for reads, a bob.Tx inside a write).
func NewRecordsTable(exec bob.Executor, collection Collection) *RecordsTable {
	return &RecordsTable{exec: exec, table: string(collection)}
}

// FindByID retrieves a record by primary key.
func (t *RecordsTable) FindByID(ctx context.Context, id uuid.UUID) (*Record, error) {
	q := psql.Select(
		sm.Columns(recordColumns...),
		sm.From(t.table),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Record]())
	if err != nil {
		return nil, notFound(err)
	}
	return &row, nil
}

// Insert creates a new record. The database assigns id and created_at.
func (t *RecordsTable) Insert(ctx context.Context, values *RecordValues) (*Record, error) {
	q := psql.Insert(
		im.Into(t.table, "title", "amount", "category", "date", "description"),
		im.Values(psql.Arg(values.Title, values.Amount, values.Category, values.Date, values.Description)),
		im.Returning(recordColumns...),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Record]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// List returns every record, newest first.
func (t *RecordsTable) List(ctx context.Context) ([]*Record, error) {
	q := psql.Select(
		sm.Columns(recordColumns...),
		sm.From(t.table),
		sm.OrderBy("created_at").Desc(),
		sm.OrderBy("id").Desc(),
	)
	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[Record]())
	if err != nil {
		return nil, err
	}
	result := make([]*Record, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

// Update overwrites every mutable column of the record in one statement.
func (t *RecordsTable) Update(ctx context.Context, id uuid.UUID, values *RecordValues) (*Record, error) {
	q := psql.Update(
		um.Table(t.table),
		um.SetCol("title").ToArg(values.Title),
		um.SetCol("amount").ToArg(values.Amount),
		um.SetCol("category").ToArg(values.Category),
		um.SetCol("date").ToArg(values.Date),
		um.SetCol("description").ToArg(values.Description),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Returning(recordColumns...),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Record]())
	if err != nil {
		return nil, notFound(err)
	}
	return &row, nil
}

// Delete removes the record permanently.
func (t *RecordsTable) Delete(ctx context.Context, id uuid.UUID) error {
	q := psql.Delete(
		dm.From(t.table),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	res, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrRecordNotFound
	}
	return err
}
