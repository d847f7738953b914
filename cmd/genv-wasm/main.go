//go:build js && wasm

// Command genv-wasm exposes the environment probe to the page as a global
// genvDetect() function returning the report as a plain object, or null when
// the page cannot be probed.
//
//	GOOS=js GOARCH=wasm go build -o genv.wasm ./cmd/genv-wasm
package main

import (
	"encoding/json"
	"log/slog"
	"os"
	"syscall/js"

	"github.com/considonet/g-env/pkg/host/jshost"
	"github.com/considonet/g-env/pkg/logger"
	"github.com/considonet/g-env/pkg/probe"
)

func main() {
	log := logger.New(
		logger.WithFormat(logger.FormatText),
		logger.WithOutput(os.Stderr),
		logger.WithAttr(logger.Component("genv-wasm")),
	)

	js.Global().Set("genvDetect", js.FuncOf(func(this js.Value, args []js.Value) any {
		report, err := probe.Detect(jshost.New())
		if err != nil {
			log.Error("environment probe failed", logger.Error(err))
			return js.Null()
		}
		raw, err := json.Marshal(report)
		if err != nil {
			log.Error("encode report", logger.Error(err))
			return js.Null()
		}
		log.Debug("environment probed", slog.Any("report", report))
		return js.Global().Get("JSON").Call("parse", string(raw))
	}))

	select {}
}
