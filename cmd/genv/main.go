// Command genv runs the browser environment probe from the command line,
// either over a synthetic document described by flags or inside headless
// Chrome.
//
//	genv detect --user-agent "$UA" --platform iPhone --touch
//	genv chrome --url https://example.com --format yaml
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "genv:", err)
		os.Exit(1)
	}
}
