package session

import "errors"

var ErrClosed = errors.New("session is closed")
