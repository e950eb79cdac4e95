package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/finance-tracker/internal/config"
	"github.com/carson-networks/finance-tracker/internal/storage/memory"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// Storage gives read access to both record tables and opens write units.
// DB is nil for the in-memory backend.
type Storage struct {
	DB       *sql.DB
	Incomes  sqlconfig.IRecordTable
	Expenses sqlconfig.IRecordTable
}

// Open builds the storage backend selected by the configuration.
func Open(env *config.Config) (*Storage, error) {
	switch env.StorageBackend {
	case config.BackendMemory:
		return NewMemoryStorage(), nil
	case config.BackendPostgres:
		db, err := sql.Open("postgres", env.PostgresURL())
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		return NewPostgresStorage(db), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", env.StorageBackend)
	}
}

func NewPostgresStorage(db *sql.DB) *Storage {
	exec := bob.NewDB(db)
	return &Storage{
		DB:       db,
		Incomes:  sqlconfig.NewRecordsTable(exec, sqlconfig.IncomesCollection),
		Expenses: sqlconfig.NewRecordsTable(exec, sqlconfig.ExpensesCollection),
	}
}

func NewMemoryStorage() *Storage {
	return &Storage{
		Incomes:  memory.NewRecordTable(),
		Expenses: memory.NewRecordTable(),
	}
}

// Table returns the read-side table for a collection.
func (s *Storage) Table(c sqlconfig.Collection) sqlconfig.IRecordTable {
	if c == sqlconfig.ExpensesCollection {
		return s.Expenses
	}
	return s.Incomes
}

// Write opens a write unit. On Postgres it is a database transaction; without
// a database the writer operates on the storage tables directly.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	if s.DB == nil {
		return &Writer{
			tx:       noopTx{},
			Incomes:  s.Incomes,
			Expenses: s.Expenses,
		}, nil
	}

	tx, err := bob.NewDB(s.DB).BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return NewWriter(tx), nil
}

// Ping reports whether the backing store is reachable.
func (s *Storage) Ping(ctx context.Context) error {
	if s.DB == nil {
		return nil
	}
	return s.DB.PingContext(ctx)
}

func (s *Storage) Close() error {
	if s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
