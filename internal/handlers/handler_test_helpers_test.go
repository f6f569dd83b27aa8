package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"restaurant-admin/internal/dto"

	"github.com/stretchr/testify/require"
)

// envelope is the decoded shape of dto.GenericResponse with raw data
type envelope struct {
	Status  dto.ResponseStatus `json:"status"`
	Message string             `json:"message"`
	Data    json.RawMessage    `json:"data"`
	Code    string             `json:"code"`
	Details []string           `json:"details"`
	TraceID string             `json:"traceId"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}
