package errs

import (
	"errors"
	"net/http"
)

const (
	ErrStatusInternalServer = http.StatusInternalServerError
	ErrStatusClient         = http.StatusBadRequest
	ErrStatusNotLoggedIn    = http.StatusUnauthorized
	ErrStatusNoPermission   = http.StatusForbidden
	ErrStatusNotFound       = http.StatusNotFound
)

var (
	ErrInternalServer = errors.New("Internal server error")
	ErrClient         = errors.New("Bad request")
	ErrNotLoggedIn    = errors.New("Unauthorized access")
	ErrForbidden      = errors.New("Forbidden access")
	ErrNotFound       = errors.New("Resource not found")
	ErrInvalidToken   = errors.New("Invalid auth token")
)

var errorMap = map[error]int{
	ErrInternalServer: ErrStatusInternalServer,
	ErrClient:         ErrStatusClient,
	ErrNotLoggedIn:    ErrStatusNotLoggedIn,
	ErrForbidden:      ErrStatusNoPermission,
	ErrNotFound:       ErrStatusNotFound,
	ErrInvalidToken:   ErrStatusNoPermission,
}

func GetErrorStatusCode(err error) int {
	errStatusCode, ok := errorMap[err]
	if !ok {
		errStatusCode = errorMap[ErrInternalServer]
	}
	return errStatusCode
}
