package service

import (
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// Kind selects which collection a RecordService addresses. It also supplies
// the vocabulary used in user-facing messages.
type Kind string

const (
	Income  Kind = "income"
	Expense Kind = "expense"
)

// Kinds lists every record kind in display order.
var Kinds = []Kind{Income, Expense}

// Title is the capitalized singular, e.g. "Income".
func (k Kind) Title() string {
	switch k {
	case Income:
		return "Income"
	case Expense:
		return "Expense"
	}
	return string(k)
}

// Plural is the lower-case plural, e.g. "incomes".
func (k Kind) Plural() string {
	return string(k) + "s"
}

func (k Kind) Collection() sqlconfig.Collection {
	if k == Expense {
		return sqlconfig.ExpensesCollection
	}
	return sqlconfig.IncomesCollection
}

func (k Kind) Valid() bool {
	return k == Income || k == Expense
}
