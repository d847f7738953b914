package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/considonet/g-env/pkg/host/chromehost"
	"github.com/considonet/g-env/pkg/logger"
)

func newChromeCmd(a *app) *cobra.Command {
	var (
		url       string
		userAgent string
		headless  bool
		timeout   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "chrome",
		Short: "Probe a page in headless Chrome",
		Long: `Starts Chrome, opens --url and runs the probe inside the page. Defaults come
from GENV_CHROME_HEADFUL, GENV_CHROME_TIMEOUT, GENV_CHROME_USER_AGENT and
GENV_CHROME_URL; flags override them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg.Chrome
			fl := cmd.Flags()
			if fl.Changed("url") {
				cfg.URL = url
			}
			if fl.Changed("user-agent") {
				cfg.UserAgent = userAgent
			}
			if fl.Changed("headless") {
				cfg.Headful = !headless
			}
			if fl.Changed("timeout") {
				cfg.Timeout = timeout
			}

			log := a.log.With(logger.Command("chrome"))
			log.InfoContext(cmd.Context(), "starting browser", "url", cfg.URL, "headless", !cfg.Headful)

			report, err := chromehost.Detect(cmd.Context(), cfg)
			if err != nil {
				log.ErrorContext(cmd.Context(), "probe failed", logger.Error(err))
				return err
			}
			log.DebugContext(cmd.Context(), "environment probed", "report", report)
			return writeReport(cmd.OutOrStdout(), a.format, report)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&url, "url", chromehost.DefaultURL, "page to probe")
	fl.StringVar(&userAgent, "user-agent", "", "override the browser user agent")
	fl.BoolVar(&headless, "headless", true, "run Chrome without a window")
	fl.DurationVar(&timeout, "timeout", chromehost.DefaultTimeout, "overall time limit")

	return cmd
}
