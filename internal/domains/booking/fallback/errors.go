package fallback

import "errors"

var ErrUnsupported = errors.New("event has no fallback")
