package gateway

import "errors"

var (
	ErrNoEndpoint     = errors.New("transition endpoint not configured")
	ErrRemoteRejected = errors.New("transition endpoint returned an error")
	ErrBadResponse    = errors.New("unexpected transition response")
)
