package requesthost

import (
	"log/slog"
	"net/http"

	"github.com/considonet/g-env/pkg/host/htmlhost"
	"github.com/considonet/g-env/pkg/logger"
	"github.com/considonet/g-env/pkg/probe"
	"github.com/considonet/g-env/pkg/useragent"
)

// Middleware probes every request and stores the report in its context.
// A failed probe is logged and the request continues without a report.
// A nil logger falls back to slog.Default.
func Middleware(log *slog.Logger, opts ...htmlhost.Option) func(http.Handler) http.Handler {
	if log == nil {
		log = slog.Default()
	}
	log = log.With(logger.Component("requesthost"))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			client, _ := useragent.Describe(r.UserAgent())
			report, err := probe.Detect(New(r, opts...))
			if err != nil {
				log.WarnContext(r.Context(), "environment probe failed",
					logger.Error(err),
					logger.Client(client),
				)
				next.ServeHTTP(w, r)
				return
			}
			ctx := probe.WithContext(r.Context(), report)
			log.DebugContext(ctx, "environment probed", logger.Client(client), slog.Any("report", report))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
