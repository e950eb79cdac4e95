package record

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// UpdateRecordInput is the Huma input for updating a record.
type UpdateRecordInput struct {
	ID   string `path:"id" doc:"Record UUID"`
	Body RecordBody
}

// UpdateRecordOutput is the Huma output for updating a record.
type UpdateRecordOutput struct {
	Body RecordResponse
}

// recordUpdater is the interface for updating records.
type recordUpdater interface {
	Kind() service.Kind
	Update(ctx context.Context, id string, input service.RecordInput) (service.Record, error)
}

// UpdateRecordHandler handles PUT {prefix}/update-{kind}/{id}.
type UpdateRecordHandler struct {
	Service recordUpdater
	Prefix  string
}

// NewUpdateRecordHandler creates a new UpdateRecordHandler.
func NewUpdateRecordHandler(svc recordUpdater, prefix string) *UpdateRecordHandler {
	return &UpdateRecordHandler{Service: svc, Prefix: prefix}
}

// Register registers the update endpoint with the Huma API.
func (h *UpdateRecordHandler) Register(api huma.API) {
	kind := h.Service.Kind()
	huma.Register(api, huma.Operation{
		OperationID: "update-" + string(kind),
		Method:      http.MethodPut,
		Path:        h.Prefix + "/update-" + string(kind) + "/{id}",
		Summary:     "Update " + string(kind),
		Description: "Replaces every mutable field of an existing " + string(kind) + ".",
		Tags:        tag(kind),
		Errors:      []int{http.StatusBadRequest, http.StatusNotFound, http.StatusInternalServerError},
	}, h.handle)
}

func (h *UpdateRecordHandler) handle(ctx context.Context, input *UpdateRecordInput) (*UpdateRecordOutput, error) {
	logData := logging.GetLogData(ctx)
	if logData != nil {
		logData.AddData("recordID", input.ID)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("updateRecordMs")
	}
	updated, err := h.Service.Update(ctx, input.ID, input.Body.toInput())
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, toAPIError(ctx, err)
	}

	return &UpdateRecordOutput{Body: RecordResponse{
		Message: h.Service.Kind().Title() + " Updated Successfully!",
		Record:  fromService(updated),
	}}, nil
}
