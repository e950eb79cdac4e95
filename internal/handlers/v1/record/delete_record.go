package record

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// DeleteRecordInput is the Huma input for deleting a record.
type DeleteRecordInput struct {
	ID string `path:"id" doc:"Record UUID"`
}

// DeleteRecordOutput is the Huma output for deleting a record.
type DeleteRecordOutput struct {
	Body MessageResponse
}

type recordDeleter interface {
	Kind() service.Kind
	Delete(ctx context.Context, id string) error
}

// DeleteRecordHandler handles DELETE {prefix}/delete-{kind}/{id}.
type DeleteRecordHandler struct {
	Service recordDeleter
	Prefix  string
}

func NewDeleteRecordHandler(svc recordDeleter, prefix string) *DeleteRecordHandler {
	return &DeleteRecordHandler{Service: svc, Prefix: prefix}
}

func (h *DeleteRecordHandler) Register(api huma.API) {
	kind := h.Service.Kind()
	huma.Register(api, huma.Operation{
		OperationID: "delete-" + string(kind),
		Method:      http.MethodDelete,
		Path:        h.Prefix + "/delete-" + string(kind) + "/{id}",
		Summary:     "Delete " + string(kind),
		Description: "Permanently removes a " + string(kind) + ".",
		Tags:        tag(kind),
		Errors:      []int{http.StatusNotFound, http.StatusInternalServerError},
	}, h.handle)
}

func (h *DeleteRecordHandler) handle(ctx context.Context, input *DeleteRecordInput) (*DeleteRecordOutput, error) {
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("recordID", input.ID)
	}

	if err := h.Service.Delete(ctx, input.ID); err != nil {
		return nil, toAPIError(ctx, err)
	}

	return &DeleteRecordOutput{Body: MessageResponse{
		Message: h.Service.Kind().Title() + " Deleted Successfully!",
	}}, nil
}
