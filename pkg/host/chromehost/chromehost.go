package chromehost

import (
	"context"
	"errors"
	"fmt"

	"github.com/chromedp/chromedp"

	"github.com/considonet/g-env/pkg/probe"
)

// Detect starts a browser, opens cfg.URL and runs the probe in that page.
// The browser is shut down before Detect returns.
func Detect(ctx context.Context, cfg Config) (probe.Report, error) {
	cfg = cfg.withDefaults()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", cfg.headless()),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if cfg.UserAgent != "" {
		opts = append(opts, chromedp.UserAgent(cfg.UserAgent))
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	// The first Run launches the browser.
	if err := chromedp.Run(browserCtx); err != nil {
		return probe.Report{}, errors.Join(ErrBrowserStart, err)
	}
	if err := chromedp.Run(browserCtx, chromedp.Navigate(cfg.URL)); err != nil {
		return probe.Report{}, errors.Join(ErrNavigate, fmt.Errorf("%s: %w", cfg.URL, err))
	}

	return detectInPage(browserCtx)
}

// detectInPage runs the probe in the page already loaded in ctx.
func detectInPage(ctx context.Context) (probe.Report, error) {
	return runProbe(newSession(ctx))
}

// runProbe detects through s. The page is cleaned up on every path once the
// registry may exist.
func runProbe(s *session) (probe.Report, error) {
	h := &host{s: s}
	if err := s.eval(bootstrap, &h.snap); err != nil {
		_ = s.cleanup()
		return probe.Report{}, fmt.Errorf("%w: %v", probe.ErrEnvironmentUnavailable, err)
	}

	report, err := probe.Detect(h)
	cleanupErr := s.cleanup()
	switch {
	case s.err != nil:
		return probe.Report{}, fmt.Errorf("%w: %v", probe.ErrEnvironmentUnavailable, s.err)
	case err != nil:
		return probe.Report{}, err
	case cleanupErr != nil:
		return probe.Report{}, fmt.Errorf("%w: %v", probe.ErrEnvironmentUnavailable, cleanupErr)
	}
	return report, nil
}
