package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

// app carries state shared by subcommands once the root has run.
type app struct {
	format  string
	environ map[string]string
	cfg     Config
	log     *slog.Logger
}

func newRootCmd() *cobra.Command {
	return newRootCmdWithEnv(nil)
}

// newRootCmdWithEnv reads configuration from environ instead of the process
// environment when environ is non-nil.
func newRootCmdWithEnv(environ map[string]string) *cobra.Command {
	a := &app{environ: environ}

	cmd := &cobra.Command{
		Use:           "genv",
		Short:         "Probe browser environment capabilities",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.format != formatJSON && a.format != formatYAML {
				return fmt.Errorf("%w: %q", ErrUnknownFormat, a.format)
			}
			cfg, err := loadConfig(a.environ)
			if err != nil {
				return err
			}
			log, err := newLogger(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			a.cfg, a.log = cfg, log
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&a.format, "format", "f", formatJSON, "output format (json|yaml)")

	cmd.AddCommand(
		newDetectCmd(a),
		newChromeCmd(a),
		newServeCmd(a),
	)
	return cmd
}
