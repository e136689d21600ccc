package response

import (
	"encoding/json"
	"net/http"

	"ehotels/shared/constant"
	"ehotels/shared/failure"
	"ehotels/shared/logger"
)

type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

type Error struct {
	Error *string `json:"error,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Message: &message})
}

// WithJSON sends a response containing a JSON object
func WithJSON(writer http.ResponseWriter, code int, jsonPayload any) {
	response(writer, code, Data[any]{Data: &jsonPayload})
}

// WithRedirect answers a completed mutation with 303 See Other pointing at the
// next view, carrying the flash message in the body.
func WithRedirect(writer http.ResponseWriter, location, message string) {
	writer.Header().Set(constant.RequestHeaderLocation, location)
	WithMessage(writer, http.StatusSeeOther, message)
}

// WithError sends a response with an error message. Server side failures are
// logged and answered with a generic message. Failures pointing back to
// another view set the Location header.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	errMsg := failure.GetMessage(err)

	if code >= http.StatusInternalServerError && code != http.StatusNotImplemented {
		logger.ErrorWithStack(err)

		errMsg = constant.ResponseErrorInternal
	}

	if location := failure.GetLocation(err); location != constant.Empty {
		writer.Header().Set(constant.RequestHeaderLocation, location)
	}

	response(writer, code, Error{Error: &errMsg})
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func response(writer http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)

	if _, err = writer.Write(response); err != nil {
		logger.ErrorWithStack(err)
	}
}
