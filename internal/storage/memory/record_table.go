// Package memory keeps records in process memory. It backs STORAGE_BACKEND=memory
// and the end-to-end tests.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

var _ sqlconfig.IRecordTable = (*RecordTable)(nil)

type entry struct {
	record sqlconfig.Record
	seq    uint64
}

// RecordTable is a mutex-guarded map of records. Every operation is atomic
// for a single record.
type RecordTable struct {
	mu      sync.RWMutex
	records map[uuid.UUID]*entry
	seq     uint64
	now     func() time.Time
}

func NewRecordTable() *RecordTable {
	return &RecordTable{
		records: make(map[uuid.UUID]*entry),
		now:     time.Now,
	}
}

func (t *RecordTable) FindByID(ctx context.Context, id uuid.UUID) (*sqlconfig.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	e, ok := t.records[id]
	if !ok {
		return nil, sqlconfig.ErrRecordNotFound
	}
	record := e.record
	return &record, nil
}

func (t *RecordTable) Insert(ctx context.Context, values *sqlconfig.RecordValues) (*sqlconfig.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.seq++
	e := &entry{
		record: sqlconfig.Record{
			ID:        id,
			CreatedAt: t.now(),
		},
		seq: t.seq,
	}
	apply(&e.record, values)
	t.records[id] = e

	record := e.record
	return &record, nil
}

// List returns records newest first. Insertion order breaks created-at ties.
func (t *RecordTable) List(ctx context.Context) ([]*sqlconfig.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	t.mu.RLock()
	entries := make([]*entry, 0, len(t.records))
	for _, e := range t.records {
		entries = append(entries, e)
	}
	t.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].record.CreatedAt.Equal(entries[j].record.CreatedAt) {
			return entries[i].record.CreatedAt.After(entries[j].record.CreatedAt)
		}
		return entries[i].seq > entries[j].seq
	})

	result := make([]*sqlconfig.Record, len(entries))
	for i, e := range entries {
		record := e.record
		result[i] = &record
	}
	return result, nil
}

func (t *RecordTable) Update(ctx context.Context, id uuid.UUID, values *sqlconfig.RecordValues) (*sqlconfig.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.records[id]
	if !ok {
		return nil, sqlconfig.ErrRecordNotFound
	}
	updated := e.record
	apply(&updated, values)
	e.record = updated

	return &updated, nil
}

func (t *RecordTable) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.records[id]; !ok {
		return sqlconfig.ErrRecordNotFound
	}
	delete(t.records, id)
	return nil
}

func apply(record *sqlconfig.Record, values *sqlconfig.RecordValues) {
	record.Title = values.Title
	record.Amount = values.Amount
	record.Category = values.Category
	record.Date = values.Date
	record.Description = values.Description
}
