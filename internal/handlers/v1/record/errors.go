package record

import (
	"context"
	"errors"
	"net/http"

	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// APIError is the error body returned by record operations.
type APIError struct {
	status  int
	Kind    string `json:"kind" enum:"MissingField,InvalidAmount,NotFound,StorageError" doc:"Failure category"`
	Message string `json:"message" doc:"Human readable message"`
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) GetStatus() int {
	return e.status
}

// toAPIError maps a service error to its status and body. Causes are logged,
// never returned.
func toAPIError(ctx context.Context, err error) error {
	kind := service.ErrorKind(err)

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrMissingField), errors.Is(err, service.ErrInvalidAmount):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("errorKind", kind)
		if status == http.StatusInternalServerError {
			logData.AddData("error", err.Error())
		}
	}

	return &APIError{
		status:  status,
		Kind:    kind,
		Message: service.PublicMessage(err),
	}
}
