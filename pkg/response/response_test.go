package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestSuccess(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, http.StatusCreated, "Patient added successfully", map[string]int{"id": 9})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(9), body["data"].(map[string]interface{})["id"])
	assert.NotContains(t, body, "error")
}

func TestErrorHelpersDefaultMessages(t *testing.T) {
	tests := []struct {
		write   func(w http.ResponseWriter, message string)
		code    int
		message string
	}{
		{NotFound, http.StatusNotFound, "Resource not found"},
		{Unauthorized, http.StatusUnauthorized, "Unauthorized"},
		{Forbidden, http.StatusForbidden, "Forbidden"},
		{BadRequest, http.StatusBadRequest, "Bad request"},
		{Conflict, http.StatusConflict, "Conflict"},
		{InternalServerError, http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		tt.write(rec, "")

		assert.Equal(t, tt.code, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, tt.message, body["message"])
	}
}
