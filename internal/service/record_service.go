package service

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// processor runs write actions; satisfied by operator.OperatorDelegator.
type processor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// RecordService implements add, list, update and delete for one record kind.
// Reads go straight to storage, writes go through the operator.
type RecordService struct {
	kind     Kind
	storage  *storage.Storage
	operator processor
}

// NewRecordService creates a RecordService for kind.
func NewRecordService(kind Kind, store *storage.Storage, op processor) *RecordService {
	return &RecordService{kind: kind, storage: store, operator: op}
}

func (s *RecordService) Kind() Kind {
	return s.kind
}

// Add validates input and stores a new record.
func (s *RecordService) Add(ctx context.Context, input RecordInput) (Record, error) {
	values, err := validate(input)
	if err != nil {
		return Record{}, err
	}

	action := &actions.AddRecord{
		Collection: s.kind.Collection(),
		Values:     *values,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return Record{}, storageFailure("add", string(s.kind), err)
	}

	return recordFromStorage(action.Created), nil
}

// List returns every record of the kind, newest first. The slice is never nil.
func (s *RecordService) List(ctx context.Context) ([]Record, error) {
	rows, err := s.storage.Table(s.kind.Collection()).List(ctx)
	if err != nil {
		return nil, storageFailure("fetch", s.kind.Plural(), err)
	}

	records := make([]Record, len(rows))
	for i, row := range rows {
		records[i] = recordFromStorage(row)
	}
	return records, nil
}

// Update checks that the record exists, validates input and then replaces
// every mutable field.
func (s *RecordService) Update(ctx context.Context, id string, input RecordInput) (Record, error) {
	recordID, err := uuid.FromString(id)
	if err != nil {
		return Record{}, notFound(s.kind)
	}

	if _, err := s.storage.Table(s.kind.Collection()).FindByID(ctx, recordID); err != nil {
		return Record{}, s.writeFailure("update", err)
	}

	values, err := validate(input)
	if err != nil {
		return Record{}, err
	}

	action := &actions.UpdateRecord{
		Collection: s.kind.Collection(),
		ID:         recordID,
		Values:     *values,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return Record{}, s.writeFailure("update", err)
	}

	return recordFromStorage(action.Updated), nil
}

// Delete removes the record permanently.
func (s *RecordService) Delete(ctx context.Context, id string) error {
	recordID, err := uuid.FromString(id)
	if err != nil {
		return notFound(s.kind)
	}

	action := &actions.DeleteRecord{
		Collection: s.kind.Collection(),
		ID:         recordID,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return s.writeFailure("delete", err)
	}
	return nil
}

func (s *RecordService) writeFailure(verb string, err error) error {
	if errors.Is(err, sqlconfig.ErrRecordNotFound) {
		return notFound(s.kind)
	}
	return storageFailure(verb, string(s.kind), err)
}
