// Package jshost exposes the page the program runs in as a probe host. It is
// only built for GOOS=js GOARCH=wasm.
//
//	report, err := probe.Detect(jshost.New())
//
// DOM calls that throw are recovered and returned as errors wrapping
// ErrJSException.
package jshost
