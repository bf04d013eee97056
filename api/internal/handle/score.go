package handle

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"smart-checker/api/internal/evaluator"
	"smart-checker/api/internal/smart"
)

// ScoreSMART handles POST /api/score-smart.
func (h *Handle) ScoreSMART(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		h.MethodNotAllowed(w, r)
		return
	}

	ctx, id := evaluator.WithID(r.Context(), "")
	w.Header().Set(EvaluationIDHeader, id)

	objective, err := decodeObjective(r)
	if err != nil {
		h.log.Debug("bad request body", zap.String("evaluation_id", id), zap.Error(err))
	}

	res, err := h.ev.Evaluate(ctx, objective)
	if err != nil {
		writeJSON(w, smart.StatusCode(err), errResp{smart.Message(err)})
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// decodeObjective reads the "objective" member of a JSON object body. The name is matched
// exactly. An unreadable body, another key spelling or a non-string value yield "".
func decodeObjective(r *http.Request) (string, error) {
	var body map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return "", err
	}
	raw, ok := body["objective"]
	if !ok {
		return "", nil
	}
	var objective string
	if err := json.Unmarshal(raw, &objective); err != nil {
		return "", err
	}
	return objective, nil
}
