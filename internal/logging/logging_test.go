package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bufferedLogger(buf *bytes.Buffer) *logrus.Logger {
	logger := SetupLogging("debug")
	logger.Out = buf
	return logger
}

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))
	return entry
}

func TestSetupLogging_Level(t *testing.T) {
	assert.Equal(t, logrus.WarnLevel, SetupLogging("warn").Level)
	assert.Equal(t, logrus.InfoLevel, SetupLogging("chatty").Level)
}

func TestLogData_FieldsAndTimings(t *testing.T) {
	var buf bytes.Buffer
	logData := NewLogData(bufferedLogger(&buf))

	logData.AddData("recordCount", 3)
	logData.AddTiming("listMs")()
	logData.Log().Info("done")

	entry := lastEntry(t, &buf)
	assert.Equal(t, "info", entry["loglevel"])
	assert.Equal(t, float64(3), entry["recordCount"])
	assert.Contains(t, entry, "listMs")
}

func TestGetLogData(t *testing.T) {
	assert.Nil(t, GetLogData(context.Background()))

	logData := NewLogData(SetupLogging("info"))
	ctx := WithLogData(context.Background(), logData)
	assert.Same(t, logData, GetLogData(ctx))
}

func TestLoggingWrapper(t *testing.T) {
	var buf bytes.Buffer
	logger := bufferedLogger(&buf)

	handler := LoggingWrapper("Probe", logger, func(w http.ResponseWriter, req *http.Request, logData *LogData) error {
		assert.Same(t, logData, GetLogData(req.Context()))
		logData.AddData("probe", true)
		w.WriteHeader(http.StatusOK)
		return nil
	})
	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/probe", nil))

	entry := lastEntry(t, &buf)
	assert.Equal(t, "Handler.Probe.Complete", entry["msg"])
	assert.Equal(t, true, entry["probe"])

	failing := LoggingWrapper("Probe", logger, func(w http.ResponseWriter, _ *http.Request, _ *LogData) error {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("nope")
	})
	failing(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/probe", nil))

	entry = lastEntry(t, &buf)
	assert.Equal(t, "Handler.Probe.Error", entry["msg"])
	assert.Equal(t, "nope", entry["error"])
}
