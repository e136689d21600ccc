package failure

import (
	"errors"
	"net/http"

	"ehotels/shared/constant"

	"github.com/lib/pq"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
// Location is set for failures that send the caller back to another view.
type Failure struct {
	Code     int    `json:"code"`
	Message  string `json:"message"`
	Location string `json:"-"`
}

var InvalidPageParam = &Failure{Code: http.StatusBadRequest, Message: "invalid page parameter"}
var InvalidLimitParam = &Failure{Code: http.StatusBadRequest, Message: "invalid limit parameter"}
var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions", Location: constant.PathDashboard}
var ResourceRestrictedError = &Failure{Code: http.StatusForbidden, Message: "You don't have permission to access this resource", Location: constant.PathDashboard}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// Unauthorized returns a new Failure that sends the caller back to the login view.
func Unauthorized(msg string) error {
	return &Failure{
		Code:     http.StatusUnauthorized,
		Message:  msg,
		Location: constant.PathLogin,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// Unimplemented returns a new Failure with code for unimplemented method.
func Unimplemented(methodName string) error {
	return &Failure{
		Code:    http.StatusNotImplemented,
		Message: methodName,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// Forbidden returns a new Failure that sends the caller back to the dashboard.
func Forbidden(msg string) error {
	return &Failure{
		Code:     http.StatusForbidden,
		Message:  msg,
		Location: constant.PathDashboard,
	}
}

// FromStore turns constraint violations reported by postgres into a Conflict
// carrying msg. Any other error is returned untouched.
func FromStore(err error, msg string) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	switch string(pqErr.Code) {
	case constant.PqErrorCodeFkViolation, constant.PqErrorCodeUniqueViolation:
		return Conflict(msg)
	}

	return err
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetMessage returns the message of the failure wrapped in err, or the full
// error text when err carries no failure.
func GetMessage(err error) string {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Message
	}

	return err.Error()
}

// GetLocation returns the view a failure points back to, if any.
func GetLocation(err error) string {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Location
	}

	return constant.Empty
}
