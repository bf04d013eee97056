package handle

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"smart-checker/api/internal/evaluator"
	"smart-checker/api/internal/llm"
	"smart-checker/api/internal/smart"
)

type stubEngine struct {
	out string
	err error
}

func (s stubEngine) Name() string     { return "stub" }
func (s stubEngine) GetModel() string { return "stub-1" }

func (s stubEngine) Complete(context.Context, llm.Request) (string, error) {
	return s.out, s.err
}

func newHandle(t *testing.T, eng llm.Engine, mock bool) *Handle {
	log := zaptest.NewLogger(t)
	return New(evaluator.New(eng, evaluator.Options{Mock: mock}, log), log)
}

func postJSON(h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/score-smart", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func decodeErr(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var env map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.Len(t, env, 1)
	return env["error"]
}

func TestScoreSMART_Mock(t *testing.T) {
	h := newHandle(t, nil, true)

	rec := postJSON(h.ScoreSMART, `{"objective":"Improve HR."}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	_, err := uuid.Parse(rec.Header().Get(EvaluationIDHeader))
	assert.NoError(t, err)

	want, err := json.Marshal(smart.MockResult())
	require.NoError(t, err)
	assert.JSONEq(t, string(want), rec.Body.String())
}

func TestScoreSMART_Validation(t *testing.T) {
	h := newHandle(t, nil, true)

	for _, body := range []string{
		`{"objective":"short"}`,
		`{"objective":""}`,
		`{}`,
		`{"objective":null}`,
		`{"objective":12345678901}`,
		`not json`,
		``,
		`{"OBJECTIVE":"Improve HR processes by 2026."}`,
		`{"Objective":"Improve HR processes by 2026."}`,
		`["Improve HR processes by 2026."]`,
		`{"objective":"🎯🎯🎯🎯"}`,
	} {
		rec := postJSON(h.ScoreSMART, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Equal(t, "Objective text is missing or too short.", decodeErr(t, rec), body)
	}
}

func TestScoreSMART_LongObjective(t *testing.T) {
	h := newHandle(t, nil, true)

	objective := strings.Repeat("Improve HR. ", 100000)
	body, err := json.Marshal(map[string]string{"objective": objective})
	require.NoError(t, err)
	require.Greater(t, len(body), 1<<20)

	rec := postJSON(h.ScoreSMART, string(body))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestScoreSMART_AstralCharacters(t *testing.T) {
	h := newHandle(t, nil, true)
	rec := postJSON(h.ScoreSMART, `{"objective":"🎯🎯🎯🎯🎯"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestScoreSMART_Live(t *testing.T) {
	out, err := json.Marshal(smart.MockResult())
	require.NoError(t, err)

	h := newHandle(t, stubEngine{out: "```json\n" + string(out) + "\n```"}, false)
	rec := postJSON(h.ScoreSMART, `{"objective":"Introduce a new HR system to improve HR processes."}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, string(out), rec.Body.String())
}

func TestScoreSMART_EvaluationFailure(t *testing.T) {
	cases := map[string]llm.Engine{
		"engine error": stubEngine{err: errors.New("openai 429: rate limited")},
		"not json":     stubEngine{out: "Sure! Here is your evaluation."},
		"bad score":    stubEngine{out: `{"specific":{"score":3,"evidence":"","feedback":""}}`},
		"no engine":    nil,
	}
	for name, eng := range cases {
		t.Run(name, func(t *testing.T) {
			h := newHandle(t, eng, false)
			rec := postJSON(h.ScoreSMART, `{"objective":"Improve HR processes by 2026."}`)
			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.Equal(t, "AI evaluation failed.", decodeErr(t, rec))
			assert.NotContains(t, rec.Body.String(), "429")
		})
	}
}

func TestScoreSMART_MethodNotAllowed(t *testing.T) {
	h := newHandle(t, nil, true)
	rec := httptest.NewRecorder()
	h.ScoreSMART(rec, httptest.NewRequest(http.MethodGet, "/api/score-smart", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, http.MethodPost, rec.Header().Get("Allow"))
	assert.NotEmpty(t, decodeErr(t, rec))
}

func postForm(h http.HandlerFunc, objective string) *httptest.ResponseRecorder {
	body := url.Values{"objective": {objective}}.Encode()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestIndex_Get(t *testing.T) {
	h := newHandle(t, nil, true)
	rec := httptest.NewRecorder()
	h.Index(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "SMART Goal Checker")
	assert.NotContains(t, rec.Body.String(), `<td class="label">`)
}

func TestIndex_PostMock(t *testing.T) {
	h := newHandle(t, nil, true)
	rec := postForm(h.Index, "Improve HR.")
	require.Equal(t, http.StatusOK, rec.Code)

	out := rec.Body.String()
	assert.Equal(t, 5, strings.Count(out, `<td class="label">`))
	for _, s := range []string{
		"Specific", "Measurable", "Achievable", "Relevant", "Time-bound",
		"1/2 — Partial", "0/2 — Missing",
		"“Introduce a new HR system”", "“improve HR processes”",
	} {
		assert.Contains(t, out, s)
	}
	assert.Equal(t, 2, strings.Count(out, "0/2 — Missing"))
	assert.Equal(t, 3, strings.Count(out, "1/2 — Partial"))
}

func TestIndex_PostLongObjective(t *testing.T) {
	h := newHandle(t, nil, true)
	objective := strings.Repeat("Improve HR. ", 1000000)
	require.Greater(t, len(objective), 10<<20)

	rec := postForm(h.Index, objective)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, strings.Count(rec.Body.String(), `<td class="label">`))
}

func TestIndex_PostErrors(t *testing.T) {
	rec := postForm(newHandle(t, nil, true).Index, "   too short   ")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Objective text is missing or too short.")

	rec = postForm(newHandle(t, stubEngine{err: errors.New("down")}, false).Index, "Improve HR processes by 2026.")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "AI evaluation failed.")
	assert.NotContains(t, rec.Body.String(), `<td class="label">`)
}

func TestHealthz(t *testing.T) {
	rec := httptest.NewRecorder()
	newHandle(t, nil, true).Healthz(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
