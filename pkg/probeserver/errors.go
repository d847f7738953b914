package probeserver

import "errors"

var (
	ErrStart    = errors.New("failed to start probe server")
	ErrShutdown = errors.New("failed to shut down probe server gracefully")
	ErrRunning  = errors.New("probe server already running")
)
