package actions

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/storage"
)

// IAction is a unit of work run by an operator inside one storage write.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
