package process

import "errors"

var (
	ErrNotFound    = errors.New("not found")
	ErrUnsupported = errors.New("process access is only supported on windows")
)
