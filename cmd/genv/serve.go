package main

import (
	"github.com/spf13/cobra"

	"github.com/considonet/g-env/pkg/host/htmlhost"
	"github.com/considonet/g-env/pkg/logger"
	"github.com/considonet/g-env/pkg/probeserver"
)

func newServeCmd(a *app) *cobra.Command {
	var (
		addr    string
		profile string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve reports for the calling client over HTTP",
		Long: `Starts an HTTP server answering GET /detect with the report inferred from
the request headers. Listener settings come from GENV_HTTP_ADDR,
GENV_HTTP_READ_HEADER_TIMEOUT, GENV_HTTP_WRITE_TIMEOUT and
GENV_HTTP_SHUTDOWN_TIMEOUT; --addr overrides the address.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			props, ok := profiles[profile]
			if !ok {
				return errUnknownProfile(profile)
			}
			cfg := a.cfg.HTTP
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}

			log := a.log.With(logger.Command("serve"))
			srv := probeserver.NewFromConfig(cfg,
				probeserver.WithLogger(log),
				probeserver.WithHostOptions(htmlhost.WithStyleProperties(props...)),
			)
			return srv.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&profile, "profile", "modern", "style property preset assumed for clients (none|modern|legacy-webkit|ie11)")
	return cmd
}
