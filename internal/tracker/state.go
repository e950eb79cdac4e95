package tracker

import (
	"encoding/json"
	"math"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

const uncategorized = "Uncategorized"

// State is everything a view needs. It is a plain value: update functions
// return a new State and never mutate their argument's slices.
type State struct {
	Incomes  []Transaction `json:"incomes"`
	Expenses []Transaction `json:"expenses"`
	Totals   Totals        `json:"totals"`
	Editor   Editor        `json:"editor"`
	Error    string        `json:"error,omitempty"`
}

type Totals struct {
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Balance  decimal.Decimal `json:"balance"`
}

// Editor is the modal used to edit one transaction.
type Editor struct {
	Open        bool         `json:"open"`
	Kind        Kind         `json:"kind,omitempty"`
	Transaction *Transaction `json:"transaction,omitempty"`
}

// CategorySlice is one segment of the expense breakdown.
type CategorySlice struct {
	Name    string          `json:"name"`
	Value   decimal.Decimal `json:"value"`
	Percent float64         `json:"percent"`
}

// NewState is the empty state shown before the first fetch.
func NewState() State {
	return Loaded(State{}, nil, nil)
}

// Loaded replaces both lists wholesale, recomputes totals and clears the banner.
func Loaded(s State, incomes, expenses []Transaction) State {
	s.Incomes = cloneTransactions(incomes)
	s.Expenses = cloneTransactions(expenses)
	s.Totals = ComputeTotals(s.Incomes, s.Expenses)
	s.Error = ""
	return s
}

// Failed sets the banner and keeps whatever was loaded before.
func Failed(s State, message string) State {
	s.Error = message
	return s
}

func OpenEditor(s State, kind Kind, tx Transaction) State {
	s.Editor = Editor{Open: true, Kind: kind, Transaction: &tx}
	return s
}

func CloseEditor(s State) State {
	s.Editor = Editor{}
	return s
}

// ComputeTotals sums both lists. Amounts that are missing or not numeric count as zero.
func ComputeTotals(incomes, expenses []Transaction) Totals {
	income := sum(incomes)
	spent := sum(expenses)
	return Totals{
		Income:   income,
		Expenses: spent,
		Balance:  income.Sub(spent),
	}
}

// CategoryBreakdown groups expenses by category, largest first. Ties keep
// the order in which categories first appear.
func CategoryBreakdown(expenses []Transaction) []CategorySlice {
	index := make(map[string]int)
	var slices []CategorySlice

	for _, e := range expenses {
		name := e.Category
		if name == "" {
			name = uncategorized
		}
		i, ok := index[name]
		if !ok {
			i = len(slices)
			index[name] = i
			slices = append(slices, CategorySlice{Name: name, Value: decimal.Zero})
		}
		slices[i].Value = slices[i].Value.Add(AmountOf(e.Amount))
	}

	sort.SliceStable(slices, func(i, j int) bool {
		return slices[i].Value.GreaterThan(slices[j].Value)
	})

	total := decimal.Zero
	for _, s := range slices {
		total = total.Add(s.Value)
	}
	if !total.IsZero() {
		for i := range slices {
			slices[i].Percent = slices[i].Value.Div(total).Mul(decimal.NewFromInt(100)).InexactFloat64()
		}
	}

	return slices
}

// AmountOf coerces a decoded JSON amount for display arithmetic.
func AmountOf(v any) decimal.Decimal {
	switch a := v.(type) {
	case json.Number:
		if d, err := decimal.NewFromString(a.String()); err == nil {
			return d
		}
	case float64:
		if !math.IsNaN(a) && !math.IsInf(a, 0) {
			return decimal.NewFromFloat(a)
		}
	case int:
		return decimal.NewFromInt(int64(a))
	case decimal.Decimal:
		return a
	case string:
		if d, err := decimal.NewFromString(strings.TrimSpace(a)); err == nil {
			return d
		}
	}
	return decimal.Zero
}

func sum(txs []Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txs {
		total = total.Add(AmountOf(tx.Amount))
	}
	return total
}

func cloneTransactions(txs []Transaction) []Transaction {
	out := make([]Transaction, len(txs))
	copy(out, txs)
	return out
}
