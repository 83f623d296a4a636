package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"dualzone/shared/failure"
	"dualzone/shared/timezone"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	assert.Equal(t, "test error message", f.Error())
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{
			name:     "bad request",
			err:      failure.BadRequest(errors.New("validation failed")),
			expected: &failure.Failure{Code: http.StatusBadRequest, Message: "validation failed"},
		},
		{
			name:     "bad request nil",
			err:      failure.BadRequest(nil),
			expected: nil,
		},
		{
			name:     "bad request from string",
			err:      failure.BadRequestFromString("value is required"),
			expected: &failure.Failure{Code: http.StatusBadRequest, Message: "value is required"},
		},
		{
			name:     "internal error",
			err:      failure.InternalError(errors.New("database down")),
			expected: &failure.Failure{Code: http.StatusInternalServerError, Message: "database down"},
		},
		{
			name:     "internal error nil",
			err:      failure.InternalError(nil),
			expected: nil,
		},
		{
			name:     "not found",
			err:      failure.NotFound("zone"),
			expected: &failure.Failure{Code: http.StatusNotFound, Message: "zone"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err)
		})
	}
}

func TestGetCode(t *testing.T) {
	_, tzErr := timezone.Parse("Not/AZone")

	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "failure", err: failure.NotFound("zone"), code: http.StatusNotFound},
		{name: "wrapped failure", err: fmt.Errorf("handler: %w", failure.UnknownTarget), code: http.StatusBadRequest},
		{name: "invalid timezone", err: tzErr, code: http.StatusBadRequest},
		{name: "wrapped invalid timezone", err: fmt.Errorf("request: %w", tzErr), code: http.StatusBadRequest},
		{name: "plain error", err: errors.New("boom"), code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, failure.GetCode(tt.err))
		})
	}
}
