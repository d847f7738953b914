package useragent

import "errors"

var ErrEmptyUserAgent = errors.New("empty user agent string")
