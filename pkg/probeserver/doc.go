// Package probeserver serves environment reports over HTTP.
//
// Each request to /detect is probed from its own headers (see
// pkg/host/requesthost) and answered with the report, so a page can ask the
// server what it can infer about the client before any script runs:
//
//	srv := probeserver.NewFromConfig(cfg, probeserver.WithLogger(log))
//	if err := srv.Run(ctx); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Routes:
//
//	GET /detect   report as JSON, or YAML with ?format=yaml or Accept: application/yaml
//	GET /healthz  liveness, always 200 "ALIVE"
//
// Run blocks until ctx is canceled and then shuts the server down gracefully
// within the configured shutdown timeout.
package probeserver
