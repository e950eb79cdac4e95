package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// UpdateRecord overwrites every mutable field of an existing record.
// It returns sqlconfig.ErrRecordNotFound when the record is gone.
type UpdateRecord struct {
	Collection sqlconfig.Collection
	ID         uuid.UUID
	Values     sqlconfig.RecordValues

	Updated *sqlconfig.Record
}

func (u *UpdateRecord) Perform(ctx context.Context, writer *storage.Writer) error {
	record, err := writer.Table(u.Collection).Update(ctx, u.ID, &u.Values)
	if err != nil {
		return err
	}

	u.Updated = record
	return nil
}
