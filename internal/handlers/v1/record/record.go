package record

import (
	"time"

	"github.com/carson-networks/finance-tracker/internal/service"
)

// Record is the API response model for an income or expense.
type Record struct {
	ID          string  `json:"id" doc:"Record UUID"`
	Title       string  `json:"title" doc:"Short label"`
	Amount      float64 `json:"amount" doc:"Positive amount"`
	Category    string  `json:"category" doc:"Category name"`
	Date        string  `json:"date" format:"date" doc:"Calendar date (YYYY-MM-DD)"`
	Description string  `json:"description" doc:"Free text, may be empty"`
	CreatedAt   string  `json:"createdAt" format:"date-time" doc:"RFC3339 creation timestamp"`
}

// RecordBody is the request body for add and update. Unknown properties are
// accepted so clients can send back a whole record.
type RecordBody struct {
	_           struct{} `json:"-" additionalProperties:"true"`
	Title       string   `json:"title,omitempty" doc:"Short label, required"`
	Amount      any      `json:"amount,omitempty" doc:"Positive number, required"`
	Category    string   `json:"category,omitempty" doc:"Category name, required"`
	Date        string   `json:"date,omitempty" doc:"Calendar date (YYYY-MM-DD or RFC3339), required"`
	Description string   `json:"description,omitempty" doc:"Optional free text"`
}

// RecordResponse acknowledges a successful add or update.
type RecordResponse struct {
	Message string `json:"message" doc:"Human readable result"`
	Record  Record `json:"record" doc:"The stored record"`
}

// MessageResponse acknowledges a successful delete.
type MessageResponse struct {
	Message string `json:"message" doc:"Human readable result"`
}

func (b RecordBody) toInput() service.RecordInput {
	return service.RecordInput{
		Title:       b.Title,
		Amount:      b.Amount,
		Category:    b.Category,
		Date:        b.Date,
		Description: b.Description,
	}
}

func fromService(r service.Record) Record {
	return Record{
		ID:          r.ID.String(),
		Title:       r.Title,
		Amount:      r.Amount.InexactFloat64(),
		Category:    r.Category,
		Date:        r.Date.Format(time.DateOnly),
		Description: r.Description,
		CreatedAt:   r.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func tag(kind service.Kind) []string {
	return []string{kind.Title()}
}
