package httpserver

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"smart-checker/api/internal/evaluator"
	"smart-checker/api/internal/handle"
)

func newServer(t *testing.T) (*httptest.Server, *observer.ObservedLogs) {
	core, logs := observer.New(zap.InfoLevel)
	log := zap.New(core)
	h := handle.New(evaluator.New(nil, evaluator.Options{Mock: true}, log), log)
	srv := httptest.NewServer(NewRouter(h, log))
	t.Cleanup(srv.Close)
	return srv, logs
}

func TestRoutes(t *testing.T) {
	srv, logs := newServer(t)

	resp, err := http.Post(srv.URL+"/api/score-smart", "application/json", strings.NewReader(`{"objective":"Improve HR."}`))
	require.NoError(t, err)
	var res map[string]map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, res, 5)
	assert.Equal(t, "improve HR processes", res["relevant"]["evidence"])
	evalID := resp.Header.Get(handle.EvaluationIDHeader)
	assert.NotEmpty(t, evalID)

	resp, err = http.Get(srv.URL + "/api/score-smart")
	require.NoError(t, err)
	var env map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.NotEmpty(t, env["error"])

	resp, err = http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, "ok", string(body))

	resp, err = http.Get(srv.URL + "/static/app.js")
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "/api/score-smart")

	resp, err = http.Get(srv.URL + "/")
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "SMART Goal Checker")

	entries := logs.FilterMessage("http request").AllUntimed()
	require.Len(t, entries, 5)
	first := entries[0].ContextMap()
	assert.Equal(t, "POST", first["method"])
	assert.Equal(t, "/api/score-smart", first["path"])
	assert.EqualValues(t, http.StatusOK, first["status"])
	assert.Equal(t, evalID, first["evaluation_id"])
	assert.NotEmpty(t, first["request_id"])
}

func TestRecoverer(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	log := zap.New(core)
	r := NewRouter(handle.New(evaluator.New(nil, evaluator.Options{Mock: true}, log), log), log)
	r.Get("/panic", func(http.ResponseWriter, *http.Request) { panic("boom") })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	entries := logs.FilterMessage("http request").AllUntimed()
	require.Len(t, entries, 1)
	assert.EqualValues(t, http.StatusInternalServerError, entries[0].ContextMap()["status"])
}

func TestNew(t *testing.T) {
	s := New(":8080", http.NotFoundHandler())
	assert.Equal(t, ":8080", s.Addr)
	assert.Equal(t, readHeaderTimeout, s.ReadHeaderTimeout)
	assert.Zero(t, s.WriteTimeout)
}
