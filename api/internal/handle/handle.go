package handle

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"smart-checker/api/internal/evaluator"
)

// EvaluationIDHeader carries the id under which an evaluation was logged.
const EvaluationIDHeader = "X-Evaluation-ID"

type Handle struct {
	ev  *evaluator.Evaluator
	log *zap.Logger
}

func New(ev *evaluator.Evaluator, log *zap.Logger) *Handle {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handle{
		ev:  ev,
		log: log,
	}
}

type errResp struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// Healthz answers liveness probes.
func (h *Handle) Healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// MethodNotAllowed writes the error envelope with 405.
func (h *Handle) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, errResp{r.Method + " not allowed"})
}
