package middleware

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"restaurant-admin/internal/dto"

	"github.com/stretchr/testify/require"
)

func decodeFailure(t *testing.T, rec *httptest.ResponseRecorder) dto.GenericResponse {
	t.Helper()
	var response dto.GenericResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response), rec.Body.String())
	return response
}
