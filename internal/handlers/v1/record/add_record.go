package record

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// AddRecordInput is the Huma input for adding a record.
type AddRecordInput struct {
	Body RecordBody
}

// AddRecordOutput is the Huma output for adding a record.
type AddRecordOutput struct {
	Body RecordResponse
}

// recordAdder is the interface for adding records.
type recordAdder interface {
	Kind() service.Kind
	Add(ctx context.Context, input service.RecordInput) (service.Record, error)
}

// AddRecordHandler handles POST {prefix}/add-{kind}.
type AddRecordHandler struct {
	Service recordAdder
	Prefix  string
}

// NewAddRecordHandler creates a new AddRecordHandler.
func NewAddRecordHandler(svc recordAdder, prefix string) *AddRecordHandler {
	return &AddRecordHandler{Service: svc, Prefix: prefix}
}

// Register registers the add endpoint with the Huma API.
func (h *AddRecordHandler) Register(api huma.API) {
	kind := h.Service.Kind()
	huma.Register(api, huma.Operation{
		OperationID: "add-" + string(kind),
		Method:      http.MethodPost,
		Path:        h.Prefix + "/add-" + string(kind),
		Summary:     "Add " + string(kind),
		Description: "Validates and stores a new " + string(kind) + ".",
		Tags:        tag(kind),
		Errors:      []int{http.StatusBadRequest, http.StatusInternalServerError},
	}, h.handle)
}

func (h *AddRecordHandler) handle(ctx context.Context, input *AddRecordInput) (*AddRecordOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("addRecordMs")
	}
	created, err := h.Service.Add(ctx, input.Body.toInput())
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, toAPIError(ctx, err)
	}

	if logData != nil {
		logData.AddData("recordID", created.ID.String())
	}

	return &AddRecordOutput{Body: RecordResponse{
		Message: h.Service.Kind().Title() + " Added Successfully!",
		Record:  fromService(created),
	}}, nil
}
