package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// NewRouter mounts the API. authMW guards everything except /healthz;
// wsHandler may be nil when live status is not wanted.
func NewRouter(svc *Service, wsHandler http.Handler, authMW func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(accessLog(svc.log))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		if authMW != nil {
			r.Use(authMW)
		}
		r.Route("/api", func(r chi.Router) {
			r.Post("/search", svc.handleSearch)
			r.Get("/result", svc.handleResult)
			r.Route("/meaning/{name}", func(r chi.Router) {
				r.Get("/", svc.handleMeaning)
				r.Get("/fallback", svc.handleFallback)
				r.Get("/image", svc.handleImage)
			})
		})
		if wsHandler != nil {
			r.Handle("/ws/searches/{session}", wsHandler)
		}
	})
	return r
}

func accessLog(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", middleware.GetReqID(r.Context())))
		})
	}
}
