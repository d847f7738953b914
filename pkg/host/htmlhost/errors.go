package htmlhost

import "errors"

var (
	ErrParseDocument  = errors.New("failed to parse html document")
	ErrForeignElement = errors.New("element does not belong to this host")
	ErrHierarchy      = errors.New("element cannot be inserted here")
	ErrNotChild       = errors.New("element is not a child of this node")
)
