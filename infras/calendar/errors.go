package calendar

import "errors"

var ErrCalendarRejected = errors.New("calendar rejected status update")
