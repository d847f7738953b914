package chromehost

import "errors"

var (
	ErrBrowserStart   = errors.New("failed to start browser")
	ErrNavigate       = errors.New("failed to open page")
	ErrForeignElement = errors.New("element belongs to another page")
)
