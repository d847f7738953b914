//go:build js && wasm

package jshost

import "errors"

var (
	ErrJSException    = errors.New("javascript exception")
	ErrForeignElement = errors.New("element does not belong to this page")
)
