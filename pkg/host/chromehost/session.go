package chromehost

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/chromedp/chromedp"
)

const registry = "window.__genvNodes"

// Registry slots filled by the bootstrap script.
const (
	rootSlot = 0
	bodySlot = 1
)

// bootstrap seeds the node registry and snapshots everything the navigator
// and window expose to the probe.
const bootstrap = `(function () {
	` + registry + ` = [document.documentElement, document.body];
	return {
		userAgent: navigator.userAgent || "",
		platform: navigator.platform || "",
		appVersion: navigator.appVersion || "",
		touchStart: "ontouchstart" in window,
		documentTouch: typeof DocumentTouch !== "undefined" && document instanceof DocumentTouch,
		activeX: "ActiveXObject" in window,
		hasRoot: !!document.documentElement,
		hasBody: !!document.body
	};
})()`

// teardown detaches every node the probe created and drops the registry.
const teardown = `(function () {
	var nodes = ` + registry + ` || [];
	for (var i = 2; i < nodes.length; i++) {
		var n = nodes[i];
		if (n && n.parentNode) {
			n.parentNode.removeChild(n);
		}
	}
	delete ` + registry + `;
	return true;
})()`

type snapshot struct {
	UserAgent     string `json:"userAgent"`
	Platform      string `json:"platform"`
	AppVersion    string `json:"appVersion"`
	TouchStart    bool   `json:"touchStart"`
	DocumentTouch bool   `json:"documentTouch"`
	ActiveX       bool   `json:"activeX"`
	HasRoot       bool   `json:"hasRoot"`
	HasBody       bool   `json:"hasBody"`
}

// session evaluates expressions in one page. The first failure sticks: later
// calls become no-ops and the error is reported once the probe returns.
type session struct {
	ctx      context.Context
	err      error
	evaluate func(ctx context.Context, expr string, out any) error
}

func newSession(ctx context.Context) *session {
	return &session{ctx: ctx, evaluate: evaluate}
}

func evaluate(ctx context.Context, expr string, out any) error {
	return chromedp.Run(ctx, chromedp.Evaluate(expr, out))
}

func (s *session) eval(expr string, out any) error {
	if s.err != nil {
		return s.err
	}
	if err := s.evaluate(s.ctx, expr, out); err != nil {
		s.err = err
		return err
	}
	return nil
}

func (s *session) node(slot int) string {
	return fmt.Sprintf("%s[%d]", registry, slot)
}

// jsString renders s as a JavaScript string literal.
func jsString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

// cleanup runs teardown even after a sticky failure.
func (s *session) cleanup() error {
	var done bool
	return s.evaluate(s.ctx, teardown, &done)
}
