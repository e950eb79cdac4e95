package service

import (
	"encoding/json"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// validate checks input in a fixed order: required fields, then the amount,
// then the date format. Nothing is persisted when it fails.
func validate(input RecordInput) (*sqlconfig.RecordValues, error) {
	if blank(input.Title) || blank(input.Category) || blank(input.Date) || falsy(input.Amount) {
		return nil, missingField(missingFieldMessage)
	}

	amount, ok := parseAmount(input.Amount)
	if !ok || !amount.IsPositive() {
		return nil, invalidAmount()
	}

	date, ok := parseDate(input.Date)
	if !ok {
		return nil, missingField(invalidDateMessage)
	}

	return &sqlconfig.RecordValues{
		Title:       input.Title,
		Amount:      amount,
		Category:    input.Category,
		Date:        date,
		Description: input.Description,
	}, nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// falsy mirrors the loose presence check clients expect: absent, null,
// zero, false and the empty string all count as missing.
func falsy(v any) bool {
	switch a := v.(type) {
	case nil:
		return true
	case bool:
		return !a
	case string:
		return a == ""
	case float64:
		return a == 0 || math.IsNaN(a)
	case int:
		return a == 0
	case int64:
		return a == 0
	case json.Number:
		f, err := a.Float64()
		return err == nil && f == 0
	case decimal.Decimal:
		return a.IsZero()
	}
	return false
}

// parseAmount accepts only numeric JSON values. Numeric strings are rejected.
func parseAmount(v any) (decimal.Decimal, bool) {
	switch a := v.(type) {
	case float64:
		if math.IsNaN(a) || math.IsInf(a, 0) {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat(a), true
	case int:
		return decimal.NewFromInt(int64(a)), true
	case int64:
		return decimal.NewFromInt(a), true
	case json.Number:
		d, err := decimal.NewFromString(a.String())
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	case decimal.Decimal:
		return a, true
	}
	return decimal.Zero, false
}

// parseDate accepts YYYY-MM-DD or an RFC 3339 timestamp and keeps the UTC date.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)

	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		y, m, d := t.UTC().Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}
