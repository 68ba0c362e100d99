package messages

import "errors"

var ErrMissingDefault = errors.New("missing default message")
