package service

import (
	"github.com/carson-networks/finance-tracker/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Income  *RecordService
	Expense *RecordService
}

// NewService creates a new Service with the given storage and write operator.
func NewService(store *storage.Storage, op processor) *Service {
	return &Service{
		Income:  NewRecordService(Income, store, op),
		Expense: NewRecordService(Expense, store, op),
	}
}

// For returns the service for kind.
func (s *Service) For(kind Kind) *RecordService {
	if kind == Expense {
		return s.Expense
	}
	return s.Income
}
