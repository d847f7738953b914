package probeserver

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"gopkg.in/yaml.v3"

	"github.com/considonet/g-env/pkg/host/htmlhost"
	"github.com/considonet/g-env/pkg/host/requesthost"
	"github.com/considonet/g-env/pkg/logger"
	"github.com/considonet/g-env/pkg/probe"
)

// Router returns the HTTP routes of the probe server.
func Router(log *slog.Logger, hostOpts ...htmlhost.Option) http.Handler {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ALIVE"))
	})

	r.With(requesthost.Middleware(log, hostOpts...)).Get("/detect", reportHandler(log))
	return r
}

func reportHandler(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, ok := probe.FromContext(r.Context())
		if !ok {
			http.Error(w, "environment unavailable", http.StatusUnprocessableEntity)
			return
		}

		w.Header().Set("Vary", "User-Agent, Sec-CH-UA-Platform, Sec-CH-UA-Mobile")
		w.Header().Set("Cache-Control", "no-store")

		var err error
		if wantsYAML(r) {
			w.Header().Set("Content-Type", "application/yaml")
			err = yaml.NewEncoder(w).Encode(report)
		} else {
			w.Header().Set("Content-Type", "application/json")
			err = json.NewEncoder(w).Encode(report)
		}
		if err != nil {
			log.ErrorContext(r.Context(), "write report",
				logger.Error(err),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)
		}
	}
}

func wantsYAML(r *http.Request) bool {
	if f := r.URL.Query().Get("format"); f != "" {
		return f == "yaml"
	}
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "application/yaml") || strings.Contains(accept, "text/yaml")
}
