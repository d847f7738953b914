package probe

import "errors"

var (
	// ErrEnvironmentUnavailable is returned when the host cannot provide the
	// navigator, window or document the probe depends on.
	ErrEnvironmentUnavailable = errors.New("browser environment unavailable")

	ErrInvalidReport = errors.New("invalid environment report")
)
