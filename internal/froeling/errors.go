package froeling

import (
	"errors"
	"net/http"
	"strconv"
)

// ErrAuthentication is returned when the API rejects the credentials or the session token.
var ErrAuthentication = errors.New("authentication failed")

// NetworkError is returned when the API could not be reached, or answered with an unexpected status.
type NetworkError struct {
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.Err != nil {
		return "network error: " + e.Err.Error()
	}
	return "network error: " + strconv.Itoa(e.StatusCode) + " " + http.StatusText(e.StatusCode)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
