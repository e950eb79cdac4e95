package actions

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

type AddRecord struct {
	Collection sqlconfig.Collection
	Values     sqlconfig.RecordValues

	// Created is set once Perform succeeds.
	Created *sqlconfig.Record
}

func (a *AddRecord) Perform(ctx context.Context, writer *storage.Writer) error {
	record, err := writer.Table(a.Collection).Insert(ctx, &a.Values)
	if err != nil {
		return err
	}

	a.Created = record
	return nil
}
