package mailer

import "errors"

var ErrNoRecipient = errors.New("email has no recipient")
