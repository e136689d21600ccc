package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"ehotels/shared/constant"
	"ehotels/shared/failure"

	"github.com/lib/pq"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "full_name is required",
	}

	if f.Error() != "full_name is required" {
		t.Errorf("expected error message to be 'full_name is required', got %s", f.Error())
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     int
		message  string
		location string
	}{
		{
			name:    "bad request from string",
			err:     failure.BadRequestFromString("checkout must not be before checkin"),
			code:    http.StatusBadRequest,
			message: "checkout must not be before checkin",
		},
		{
			name:     "unauthorized points to login",
			err:      failure.Unauthorized("Missing authorization header"),
			code:     http.StatusUnauthorized,
			message:  "Missing authorization header",
			location: constant.PathLogin,
		},
		{
			name:     "forbidden points to dashboard",
			err:      failure.Forbidden("Only managers can manage hotels"),
			code:     http.StatusForbidden,
			message:  "Only managers can manage hotels",
			location: constant.PathDashboard,
		},
		{
			name:    "not found",
			err:     failure.NotFound("booking not found"),
			code:    http.StatusNotFound,
			message: "booking not found",
		},
		{
			name:    "conflict",
			err:     failure.Conflict("cannot delete the hotel because it has existing bookings"),
			code:    http.StatusConflict,
			message: "cannot delete the hotel because it has existing bookings",
		},
		{
			name:    "unimplemented",
			err:     failure.Unimplemented("GetRoomByID"),
			code:    http.StatusNotImplemented,
			message: "GetRoomByID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := tt.err.(*failure.Failure)
			if !ok {
				t.Fatalf("expected *failure.Failure, got %T", tt.err)
			}

			if f.Code != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, f.Code)
			}

			if f.Message != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, f.Message)
			}

			if f.Location != tt.location {
				t.Errorf("expected location %q, got %q", tt.location, f.Location)
			}
		})
	}
}

func TestBadRequestAndInternalError_NilPassthrough(t *testing.T) {
	if failure.BadRequest(nil) != nil {
		t.Error("expected nil for BadRequest(nil)")
	}

	if failure.InternalError(nil) != nil {
		t.Error("expected nil for InternalError(nil)")
	}

	err := failure.InternalError(errors.New("connection refused"))
	if failure.GetCode(err) != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", failure.GetCode(err))
	}
}

func TestFromStore(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		wantCode int
		wantMsg  string
	}{
		{
			name:     "foreign key violation",
			input:    &pq.Error{Code: constant.PqErrorCodeFkViolation},
			wantCode: http.StatusConflict,
			wantMsg:  "customer is still referenced",
		},
		{
			name:     "unique violation wrapped",
			input:    fmt.Errorf("failed to insert data (employee): %w", &pq.Error{Code: constant.PqErrorCodeUniqueViolation}),
			wantCode: http.StatusConflict,
			wantMsg:  "customer is still referenced",
		},
		{
			name:     "other postgres error",
			input:    &pq.Error{Code: "42P01", Message: "relation does not exist"},
			wantCode: http.StatusInternalServerError,
			wantMsg:  "pq: relation does not exist",
		},
		{
			name:     "plain error",
			input:    errors.New("boom"),
			wantCode: http.StatusInternalServerError,
			wantMsg:  "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := failure.FromStore(tt.input, "customer is still referenced")

			if failure.GetCode(err) != tt.wantCode {
				t.Errorf("expected code %d, got %d", tt.wantCode, failure.GetCode(err))
			}

			if err.Error() != tt.wantMsg {
				t.Errorf("expected message %q, got %q", tt.wantMsg, err.Error())
			}
		})
	}
}

func TestGetCodeAndLocation(t *testing.T) {
	wrapped := fmt.Errorf("rbac: %w", failure.ForbiddenError)

	if failure.GetCode(wrapped) != http.StatusForbidden {
		t.Errorf("expected 403, got %d", failure.GetCode(wrapped))
	}

	if failure.GetLocation(wrapped) != constant.PathDashboard {
		t.Errorf("expected dashboard location, got %q", failure.GetLocation(wrapped))
	}

	if failure.GetCode(nil) != http.StatusInternalServerError {
		t.Errorf("expected 500 for nil, got %d", failure.GetCode(nil))
	}

	if failure.GetLocation(errors.New("plain")) != constant.Empty {
		t.Error("expected empty location for plain error")
	}
}

func TestGetMessage(t *testing.T) {
	wrapped := fmt.Errorf("rbac: %w", failure.ForbiddenError)

	if failure.GetMessage(wrapped) != "You don't have the required permissions" {
		t.Errorf("expected failure message without wrap prefix, got %q", failure.GetMessage(wrapped))
	}

	if failure.GetMessage(errors.New("plain")) != "plain" {
		t.Errorf("expected plain error text, got %q", failure.GetMessage(errors.New("plain")))
	}
}
