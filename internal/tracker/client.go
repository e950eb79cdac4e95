// Package tracker is the client side of the finance tracker: an HTTP client
// for the record API, a serializable view state with pure update functions,
// and a Session that refetches everything after each mutation.
package tracker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const DefaultBaseURL = "http://localhost:9446/api/v1"

// Kind selects the income or expense endpoints.
type Kind string

const (
	Income  Kind = "income"
	Expense Kind = "expense"
)

func (k Kind) plural() string {
	return string(k) + "s"
}

// Transaction is a record as returned by the server. Amount is kept as the
// decoded JSON value (json.Number for numbers) and only coerced when summed.
type Transaction struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Amount      any    `json:"amount"`
	Category    string `json:"category"`
	Date        string `json:"date"`
	Description string `json:"description"`
	CreatedAt   string `json:"createdAt"`
}

// Input is the body sent on add and update.
type Input struct {
	Title       string `json:"title"`
	Amount      any    `json:"amount"`
	Category    string `json:"category"`
	Date        string `json:"date"`
	Description string `json:"description,omitempty"`
}

// APIError is a non-2xx response from the server.
type APIError struct {
	Status  int    `json:"-"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Kind == "" {
		return fmt.Sprintf("%d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("%d %s: %s", e.Status, e.Kind, e.Message)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient returns a client for the API mounted at baseURL
// (e.g. http://localhost:9446/api/v1). A nil httpClient gets a 10s timeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (c *Client) List(ctx context.Context, kind Kind) ([]Transaction, error) {
	var out []Transaction
	if err := c.do(ctx, http.MethodGet, "/get-"+kind.plural(), nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []Transaction{}
	}
	return out, nil
}

func (c *Client) Add(ctx context.Context, kind Kind, input Input) (*Transaction, error) {
	var out struct {
		Record Transaction `json:"record"`
	}
	if err := c.do(ctx, http.MethodPost, "/add-"+string(kind), input, &out); err != nil {
		return nil, err
	}
	return &out.Record, nil
}

func (c *Client) Update(ctx context.Context, kind Kind, id string, input Input) (*Transaction, error) {
	var out struct {
		Record Transaction `json:"record"`
	}
	path := "/update-" + string(kind) + "/" + url.PathEscape(id)
	if err := c.do(ctx, http.MethodPut, path, input, &out); err != nil {
		return nil, err
	}
	return &out.Record, nil
}

func (c *Client) Delete(ctx context.Context, kind Kind, id string) error {
	path := "/delete-" + string(kind) + "/" + url.PathEscape(id)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp.StatusCode, raw)
	}

	if out == nil {
		return nil
	}

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	if err := decoder.Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// decodeError reads the {kind, message} body of record operations and falls
// back to the problem detail used for schema violations.
func decodeError(status int, raw []byte) *APIError {
	var body struct {
		Kind    string `json:"kind"`
		Message string `json:"message"`
		Detail  string `json:"detail"`
	}
	_ = json.Unmarshal(raw, &body)

	apiErr := &APIError{Status: status, Kind: body.Kind, Message: body.Message}
	if apiErr.Message == "" {
		apiErr.Message = body.Detail
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(status)
	}
	return apiErr
}
