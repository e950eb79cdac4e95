package record

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// ListRecordsOutput is the Huma output for listing records.
type ListRecordsOutput struct {
	Body []Record
}

// recordLister is the interface for listing records.
type recordLister interface {
	Kind() service.Kind
	List(ctx context.Context) ([]service.Record, error)
}

// ListRecordsHandler handles GET {prefix}/get-{kind}s.
type ListRecordsHandler struct {
	Service recordLister
	Prefix  string
}

// NewListRecordsHandler creates a new ListRecordsHandler.
func NewListRecordsHandler(svc recordLister, prefix string) *ListRecordsHandler {
	return &ListRecordsHandler{Service: svc, Prefix: prefix}
}

// Register registers the list endpoint with the Huma API.
func (h *ListRecordsHandler) Register(api huma.API) {
	kind := h.Service.Kind()
	huma.Register(api, huma.Operation{
		OperationID: "get-" + kind.Plural(),
		Method:      http.MethodGet,
		Path:        h.Prefix + "/get-" + kind.Plural(),
		Summary:     "List " + kind.Plural(),
		Description: "Returns every " + string(kind) + ", newest first.",
		Tags:        tag(kind),
		Errors:      []int{http.StatusInternalServerError},
	}, h.handle)
}

func (h *ListRecordsHandler) handle(ctx context.Context, _ *struct{}) (*ListRecordsOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listRecordsMs")
	}
	records, err := h.Service.List(ctx)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, toAPIError(ctx, err)
	}

	if logData != nil {
		logData.AddData("recordCount", len(records))
	}

	body := make([]Record, len(records))
	for i, r := range records {
		body[i] = fromService(r)
	}

	return &ListRecordsOutput{Body: body}, nil
}
