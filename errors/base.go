package errors

import (
	stdErrors "errors"
	"fmt"
)

type BaseError struct {
	Code    int    `json:"code"`
	Name    string `json:"name"`
	Message string `json:"message"`

	messageFormat string
	cause         error
}

func (e BaseError) Error() string {

	if e.cause == nil {
		return e.Message
	}

	return fmt.Sprintf("%s: %s", e.Message, e.cause)
}

func (e BaseError) Unwrap() error {
	return e.cause
}

// Is reports errors of the same code as equal so errors.Is works against the declared errors below
func (e BaseError) Is(target error) bool {

	asserted, ok := target.(BaseError)
	if !ok {
		return false
	}

	return asserted.Code == e.Code
}

// New formats the message of a copy of e, leaving the declared error untouched
func (e BaseError) New(args ...any) BaseError {

	e.Message = fmt.Sprintf(e.messageFormat, args...)
	return e
}

// Wrap is New with an underlying cause attached
func (e BaseError) Wrap(cause error, args ...any) BaseError {

	err := e.New(args...)
	err.cause = cause

	return err
}

func TryAssertError(err error) (BaseError, bool) {

	var asserted BaseError
	ok := stdErrors.As(err, &asserted)

	return asserted, ok
}

func IsError(err error, expectedError BaseError) bool {

	asserted, ok := TryAssertError(err)
	if !ok {
		return false
	}

	return asserted.Code == expectedError.Code
}

func new(errorCode int, name string, messageFormat string) BaseError {

	return BaseError{Code: errorCode, Name: name, Message: messageFormat, messageFormat: messageFormat}
}
