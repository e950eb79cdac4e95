package tracker

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tx(category string, amount any) Transaction {
	return Transaction{Title: "t", Category: category, Amount: amount}
}

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name     string
		incomes  []Transaction
		expenses []Transaction
		income   string
		spent    string
	}{
		{"empty", nil, nil, "0", "0"},
		{"only income", []Transaction{tx("Work", json.Number("2500"))}, nil, "2500", "0"},
		{"only expenses", nil, []Transaction{tx("Food", json.Number("4.5")), tx("Food", 10.25)}, "0", "14.75"},
		{"both", []Transaction{tx("Work", json.Number("100"))}, []Transaction{tx("Rent", json.Number("250.5"))}, "100", "250.5"},
		{"coerces bad amounts", []Transaction{tx("a", nil), tx("b", "abc"), tx("c", "7"), tx("d", true)}, nil, "7", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals := ComputeTotals(tt.incomes, tt.expenses)

			assert.True(t, totals.Income.Equal(decimal.RequireFromString(tt.income)), totals.Income.String())
			assert.True(t, totals.Expenses.Equal(decimal.RequireFromString(tt.spent)), totals.Expenses.String())
			assert.True(t, totals.Balance.Equal(totals.Income.Sub(totals.Expenses)))
		})
	}
}

func TestCategoryBreakdown(t *testing.T) {
	expenses := []Transaction{
		tx("Food", json.Number("20")),
		tx("", json.Number("5")),
		tx("Rent", json.Number("50")),
		tx("Food", json.Number("5")),
		tx("Fun", json.Number("20")),
		tx("Broken", "n/a"),
	}

	slices := CategoryBreakdown(expenses)
	require.Len(t, slices, 5)

	names := make([]string, len(slices))
	for i, s := range slices {
		names[i] = s.Name
	}
	assert.Equal(t, []string{"Rent", "Food", "Fun", "Uncategorized", "Broken"}, names)

	assert.True(t, slices[1].Value.Equal(decimal.NewFromInt(25)))
	assert.InDelta(t, 50.0, slices[0].Percent, 0.0001)
	assert.InDelta(t, 25.0, slices[1].Percent, 0.0001)
	assert.Equal(t, 0.0, slices[4].Percent)
}

func TestCategoryBreakdown_Empty(t *testing.T) {
	assert.Empty(t, CategoryBreakdown(nil))
}

func TestLoadedAndFailed(t *testing.T) {
	incomes := []Transaction{tx("Work", json.Number("10"))}
	s := Loaded(Failed(NewState(), "old banner"), incomes, nil)

	assert.Empty(t, s.Error)
	assert.Len(t, s.Incomes, 1)
	assert.NotNil(t, s.Expenses)
	assert.True(t, s.Totals.Balance.Equal(decimal.NewFromInt(10)))

	incomes[0].Title = "mutated"
	assert.Equal(t, "t", s.Incomes[0].Title)

	failed := Failed(s, "Could not fetch data.")
	assert.Equal(t, "Could not fetch data.", failed.Error)
	assert.Equal(t, s.Incomes, failed.Incomes)
	assert.Equal(t, s.Totals, failed.Totals)
}

func TestEditor(t *testing.T) {
	editing := tx("Food", json.Number("4.5"))

	s := OpenEditor(NewState(), Expense, editing)
	require.True(t, s.Editor.Open)
	assert.Equal(t, Expense, s.Editor.Kind)
	assert.Equal(t, editing, *s.Editor.Transaction)

	closed := CloseEditor(s)
	assert.False(t, closed.Editor.Open)
	assert.Nil(t, closed.Editor.Transaction)
	assert.True(t, s.Editor.Open, "original state is unchanged")
}

func TestStateIsSerializable(t *testing.T) {
	s := OpenEditor(Loaded(NewState(), []Transaction{tx("Work", json.Number("1"))}, nil), Income, tx("Work", json.Number("1")))

	raw, err := json.Marshal(s)
	require.NoError(t, err)

	var back map[string]any
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Contains(t, back, "incomes")
	assert.Contains(t, back, "totals")
	assert.Equal(t, true, back["editor"].(map[string]any)["open"])
}
