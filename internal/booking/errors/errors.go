package errors

import "errors"

var (
	ErrNoProperty = errors.New("no property selected")

	ErrNotAuthenticated = errors.New("sign in required before booking")

	ErrUnavailable = errors.New("property is not available for the selected dates")

	ErrSubmissionInFlight = errors.New("a booking submission is already in flight")
)
