package failure

import (
	"errors"
	"net/http"
)

// Failure is an error that knows which HTTP status it maps to. Anything else surfaces as a 500.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}

func (e *Failure) Error() string {
	return e.Message
}

func New(code int, msg string) error {
	return &Failure{Code: code, Message: msg}
}

// BadRequest wraps err as a 400. A nil err stays nil.
func BadRequest(err error) error {
	if err == nil {
		return nil
	}

	return New(http.StatusBadRequest, err.Error())
}

func BadRequestFromString(msg string) error {
	return New(http.StatusBadRequest, msg)
}

func Unauthorized(msg string) error {
	return New(http.StatusUnauthorized, msg)
}

func NotFound(msg string) error {
	return New(http.StatusNotFound, msg)
}

func Conflict(msg string) error {
	return New(http.StatusConflict, msg)
}

// Unprocessable is for well formed requests that do not apply to the resource's current state.
func Unprocessable(msg string) error {
	return New(http.StatusUnprocessableEntity, msg)
}

// BadGateway reports a failure of an upstream collaborator.
func BadGateway(msg string) error {
	return New(http.StatusBadGateway, msg)
}

// GetCode returns the status carried by err, or 500.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// IsFailure reports whether err carries an explicit status.
func IsFailure(err error) bool {
	var fail *Failure

	return errors.As(err, &fail)
}
