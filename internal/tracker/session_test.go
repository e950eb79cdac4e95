package tracker

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-tracker/api"
	"github.com/carson-networks/finance-tracker/internal/config"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/operator"
	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

func newAPIServer(t *testing.T) *httptest.Server {
	t.Helper()

	store := storage.NewMemoryStorage()
	op := operator.NewOperatorDelegator(store, 2)
	op.Start()
	t.Cleanup(op.Stop)

	logger := logging.SetupLogging("error")
	logger.Out = io.Discard

	rest := &api.Rest{
		Logger:  logger,
		Config:  &config.Config{APIPrefix: "/api/v1", RequestTimeout: 5 * time.Second},
		Service: service.NewService(store, op),
		Storage: store,
	}

	server := httptest.NewServer(rest.Handler())
	t.Cleanup(server.Close)
	return server
}

func newSession(t *testing.T) (*Session, *Client) {
	t.Helper()
	server := newAPIServer(t)
	client := NewClient(server.URL+"/api/v1/", server.Client())
	return NewSession(client), client
}

func input(title string, amount any) Input {
	return Input{Title: title, Amount: amount, Category: "General", Date: "2024-01-01"}
}

func TestSession_TotalsAfterMutations(t *testing.T) {
	ctx := context.Background()
	session, _ := newSession(t)

	require.NoError(t, session.Refresh(ctx))
	st := session.State()
	assert.True(t, st.Totals.Balance.IsZero())
	assert.Empty(t, st.Incomes)
	assert.Empty(t, st.Expenses)

	require.NoError(t, session.Add(ctx, Income, input("Salary", 1000)))
	require.NoError(t, session.Add(ctx, Expense, input("Coffee", 4.50)))

	st = session.State()
	require.Len(t, st.Incomes, 1)
	require.Len(t, st.Expenses, 1)
	assert.True(t, st.Totals.Income.Equal(decimal.NewFromInt(1000)))
	assert.True(t, st.Totals.Expenses.Equal(decimal.RequireFromString("4.5")))
	assert.True(t, st.Totals.Balance.Equal(st.Totals.Income.Sub(st.Totals.Expenses)))
	assert.Equal(t, json.Number("4.5"), st.Expenses[0].Amount)
}

func TestSession_UpdateClosesEditor(t *testing.T) {
	ctx := context.Background()
	session, _ := newSession(t)

	require.NoError(t, session.Add(ctx, Expense, input("Coffee", 4.50)))
	editing := session.State().Expenses[0]

	session.OpenEditor(Expense, editing)
	require.NoError(t, session.Update(ctx, Expense, editing.ID, input("Lunch", 12)))

	st := session.State()
	assert.False(t, st.Editor.Open)
	require.Len(t, st.Expenses, 1)
	assert.Equal(t, "Lunch", st.Expenses[0].Title)
	assert.Empty(t, st.Error)
}

func TestSession_FailedUpdateKeepsEditor(t *testing.T) {
	ctx := context.Background()
	session, _ := newSession(t)

	require.NoError(t, session.Add(ctx, Income, input("Salary", 1000)))
	editing := session.State().Incomes[0]
	session.OpenEditor(Income, editing)

	err := session.Update(ctx, Income, editing.ID, input("Salary", -1))

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "InvalidAmount", apiErr.Kind)

	st := session.State()
	assert.Equal(t, "Could not update income.", st.Error)
	assert.True(t, st.Editor.Open)
	assert.Equal(t, editing, *st.Editor.Transaction)
	assert.Len(t, st.Incomes, 1)
}

func TestSession_DeleteAndMissingRecord(t *testing.T) {
	ctx := context.Background()
	session, client := newSession(t)

	require.NoError(t, session.Add(ctx, Expense, input("Rent", 900)))
	id := session.State().Expenses[0].ID

	require.NoError(t, session.Delete(ctx, Expense, id))
	assert.Empty(t, session.State().Expenses)

	err := session.Delete(ctx, Expense, id)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Expense not found.", apiErr.Message)
	assert.Equal(t, "Could not delete expense.", session.State().Error)

	_, err = client.Update(ctx, Income, "unknown-id", input("x", 1))
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "NotFound", apiErr.Kind)
}

func TestSession_AddFailureSetsBanner(t *testing.T) {
	ctx := context.Background()
	session, _ := newSession(t)

	err := session.Add(ctx, Income, input("", 10))
	require.Error(t, err)

	st := session.State()
	assert.Equal(t, "Could not add income.", st.Error)
	assert.Empty(t, st.Incomes)
}

func TestSession_RefreshFailureKeepsLists(t *testing.T) {
	ctx := context.Background()
	server := newAPIServer(t)
	session := NewSession(NewClient(server.URL+"/api/v1", server.Client()))

	require.NoError(t, session.Add(ctx, Income, input("Salary", 1000)))
	before := session.State()

	server.Close()

	require.Error(t, session.Refresh(ctx))
	after := session.State()
	assert.Equal(t, "Could not fetch data. Please ensure the backend server is running.", after.Error)
	assert.Equal(t, before.Incomes, after.Incomes)
	assert.Equal(t, before.Totals, after.Totals)
}

func TestClient_DecodesProblemDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/problem+json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"title":"Unprocessable Entity","status":422,"detail":"validation failed"}`))
	}))
	defer server.Close()

	_, err := NewClient(server.URL, server.Client()).List(context.Background(), Income)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	assert.Equal(t, "validation failed", apiErr.Message)
}
