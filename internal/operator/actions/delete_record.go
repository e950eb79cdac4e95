package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

type DeleteRecord struct {
	Collection sqlconfig.Collection
	ID         uuid.UUID
}

func (d *DeleteRecord) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Table(d.Collection).Delete(ctx, d.ID)
}
