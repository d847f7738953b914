package main

import "errors"

var (
	ErrUnknownFormat    = errors.New("unknown output format")
	ErrUnknownLogFormat = errors.New("unknown log format")
	ErrUnknownProfile   = errors.New("unknown style profile")
)
