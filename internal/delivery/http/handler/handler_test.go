package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"meddesk-hms/pkg/response"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

// serve routes a single request through a one-route mux so path variables resolve
func serve(t *testing.T, method, pattern, target, body string, h http.HandlerFunc) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()

	r := mux.NewRouter()
	r.HandleFunc(pattern, h).Methods(method)

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp
}
