package httpserver

import (
	"net/http"
	"time"

	m "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"smart-checker/api/internal/handle"
)

// RequestLogger logs one line per request once the response is written.
func RequestLogger(log *zap.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := m.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				log.Info("http request",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Int("status", ww.Status()),
					zap.Int("bytes", ww.BytesWritten()),
					zap.Duration("took", time.Since(start)),
					zap.String("request_id", m.GetReqID(r.Context())),
					zap.String("evaluation_id", ww.Header().Get(handle.EvaluationIDHeader)),
				)
			}()
			next.ServeHTTP(ww, r)
		})
	}
}
