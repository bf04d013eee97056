package handle

import (
	"bytes"
	"io"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"smart-checker/api/internal/evaluator"
	"smart-checker/api/internal/form"
	"smart-checker/api/internal/smart"
	"smart-checker/api/internal/web"
)

// Index serves the form page. GET renders it empty; POST takes a form-encoded
// objective and renders the outcome server-side.
func (h *Handle) Index(w http.ResponseWriter, r *http.Request) {
	var (
		f    *form.Form
		code = http.StatusOK
	)
	switch r.Method {
	case http.MethodGet, http.MethodHead:
	case http.MethodPost:
		ctx, id := evaluator.WithID(r.Context(), "")
		w.Header().Set(EvaluationIDHeader, id)

		objective, err := formObjective(r)
		if err != nil {
			h.log.Debug("bad form body", zap.String("evaluation_id", id), zap.Error(err))
		}
		f, err = form.Run(ctx, objective, form.CheckerFunc(h.ev.Evaluate))
		if err != nil {
			h.log.Debug("form evaluation failed", zap.String("evaluation_id", id), zap.Error(err))
			code = smart.StatusCode(err)
		}
	default:
		w.Header().Set("Allow", "GET, HEAD, POST")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var buf bytes.Buffer
	if err := web.Render(&buf, f); err != nil {
		h.log.Error("render page", zap.Error(err))
		http.Error(w, form.FallbackMessage, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	_, _ = buf.WriteTo(w)
}

// formObjective reads the url-encoded body without the size cap of Request.ParseForm.
// A body that cannot be read or parsed yields "".
func formObjective(r *http.Request) (string, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return "", err
	}
	values, err := url.ParseQuery(string(body))
	if err != nil {
		return "", err
	}
	return values.Get("objective"), nil
}
