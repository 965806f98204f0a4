// Package errors contains the service error type shared by handlers and services.
package errors

import (
	"errors"
	"net/http"
)

// Category classifies a ServiceError and decides its HTTP status.
type Category int

const (
	// CategoryNoError marks a call that completed without error.
	CategoryNoError Category = iota
	// CategoryDataError means the client sent missing or malformed data.
	CategoryDataError
	// CategoryResourceNotFound means the requested resource does not exist.
	CategoryResourceNotFound
	// CategoryNotSupported means the requested operation is not supported.
	CategoryNotSupported
	// CategoryRateLimited means the client exceeded the submission rate.
	CategoryRateLimited
	// CategoryDependencyFailure means an upstream service (pinning) failed.
	CategoryDependencyFailure
	// CategoryGeneralError means the service failed in an unexpected way.
	CategoryGeneralError
	// CategoryConnectionTimeout means an upstream service did not answer in time.
	CategoryConnectionTimeout
)

func (c Category) String() string {
	switch c {
	case CategoryNoError:
		return "CategoryNoError"
	case CategoryDataError:
		return "CategoryDataError"
	case CategoryResourceNotFound:
		return "CategoryResourceNotFound"
	case CategoryNotSupported:
		return "CategoryNotSupported"
	case CategoryRateLimited:
		return "CategoryRateLimited"
	case CategoryDependencyFailure:
		return "CategoryDependencyFailure"
	case CategoryConnectionTimeout:
		return "CategoryConnectionTimeout"
	default:
		return "CategoryGeneralError"
	}
}

// ServiceError carries a client-facing Message next to the underlying Err,
// which is only logged.
type ServiceError struct {
	Category Category
	Message  string
	Err      error
}

// Error implements the error interface.
func (err ServiceError) Error() string {
	if err.Err != nil {
		return err.Err.Error()
	}
	return err.Message
}

// Unwrap returns the underlying error.
func (err ServiceError) Unwrap() error {
	return err.Err
}

// IsInternalError reports whether err should be treated as a server-side failure.
func IsInternalError(err error) bool {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) && svcErr.Category < CategoryDependencyFailure {
		return false
	}
	return true
}

// GeneralError hides an unclassified err behind a generic message.
func GeneralError(err error) error {
	if err == nil {
		err = errors.New("unexpected service error")
	}
	return &ServiceError{
		Category: CategoryGeneralError,
		Message:  "Unexpected Service Error",
		Err:      err,
	}
}

// InternalError is a 500 whose message is shown to the client.
func InternalError(err error, message string) error {
	if err == nil {
		err = errors.New(message)
	}
	return &ServiceError{
		Category: CategoryGeneralError,
		Message:  message,
		Err:      err,
	}
}

// BadRequestError returns a CategoryDataError; message is returned to the user.
func BadRequestError(err error, message string) error {
	if err == nil {
		err = errors.New("bad request: " + message)
	}
	return &ServiceError{
		Category: CategoryDataError,
		Message:  message,
		Err:      err,
	}
}

// NotFoundError returns a CategoryResourceNotFound error.
func NotFoundError(message string) error {
	return &ServiceError{
		Category: CategoryResourceNotFound,
		Message:  message,
		Err:      errors.New("not found: " + message),
	}
}

// NotSupportedError returns a CategoryNotSupported error.
func NotSupportedError(err error, message string) error {
	if err == nil {
		err = errors.New("not supported: " + message)
	}
	return &ServiceError{
		Category: CategoryNotSupported,
		Message:  message,
		Err:      err,
	}
}

// TooManyRequestsError returns a CategoryRateLimited error.
func TooManyRequestsError(message string) error {
	return &ServiceError{
		Category: CategoryRateLimited,
		Message:  message,
		Err:      errors.New("rate limited: " + message),
	}
}

// DependencyFailureError reports a failing upstream service. The message is
// returned to the user, so it should come from the upstream response.
func DependencyFailureError(err error, message string) error {
	if err == nil {
		err = errors.New("dependency failure: " + message)
	}
	return &ServiceError{
		Category: CategoryDependencyFailure,
		Message:  message,
		Err:      err,
	}
}

// TimeoutError reports an upstream service that did not answer in time.
func TimeoutError(err error, message string) error {
	if err == nil {
		err = errors.New("timeout: " + message)
	}
	return &ServiceError{
		Category: CategoryConnectionTimeout,
		Message:  message,
		Err:      err,
	}
}

// StatusCode maps the category to an HTTP status.
func (err ServiceError) StatusCode() int {
	switch err.Category {
	case CategoryDataError:
		return http.StatusBadRequest
	case CategoryResourceNotFound:
		return http.StatusNotFound
	case CategoryNotSupported:
		return http.StatusMethodNotAllowed
	case CategoryRateLimited:
		return http.StatusTooManyRequests
	case CategoryDependencyFailure:
		return http.StatusBadGateway
	case CategoryConnectionTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
