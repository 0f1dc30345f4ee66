package enginedetect

import "errors"

var (
	ErrEmptyUserAgent = errors.New("empty user agent string")
	ErrUnknownEngine  = errors.New("unknown rendering engine")
)
