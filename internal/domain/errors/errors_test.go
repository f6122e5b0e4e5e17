package errors

import (
	"net/http"
	"testing"

	"github.com/JeffJagr/SmartBar-v3/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_Message(t *testing.T) {
	tests := []struct {
		name   string
		fields []FieldError
		want   string
	}{
		{
			name:   "both required",
			fields: []FieldError{{Field: "companyCode", Reason: "required"}, {Field: "pin", Reason: "required"}},
			want:   "companyCode and pin are required",
		},
		{
			name:   "single required",
			fields: []FieldError{{Field: "event", Reason: "required"}},
			want:   "event is required",
		},
		{
			name:   "three required",
			fields: []FieldError{{Field: "a", Reason: "required"}, {Field: "b", Reason: "required"}, {Field: "c", Reason: "required"}},
			want:   "a, b and c are required",
		},
		{
			name:   "required and invalid",
			fields: []FieldError{{Field: "pin", Reason: "required"}, {Field: "role", Reason: "oneof"}},
			want:   "pin is required; role is invalid",
		},
		{
			name: "empty",
			want: "Invalid argument",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidationError(tt.fields...)
			assert.Equal(t, tt.want, err.Message())
			assert.Equal(t, StatusInvalidArgument, err.ErrorCode())
			assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
		})
	}
}

func TestNewNotificationFailedError(t *testing.T) {
	err := NewNotificationFailedError(errors.New("topic quota exceeded"))

	assert.Equal(t, "Failed to send notification: topic quota exceeded", err.Message())
	assert.Equal(t, StatusInternal, err.ErrorCode())
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
}

func TestAsAppError_ThroughWrapping(t *testing.T) {
	wrapped := errors.Wrap(ErrForbidden, "backfill")

	appErr, ok := AsAppError(wrapped)

	assert.True(t, ok)
	assert.Equal(t, StatusPermissionDenied, appErr.ErrorCode())
	assert.ErrorIs(t, wrapped, ErrForbidden)
}

func TestBaseError_IsMatchesCopies(t *testing.T) {
	assert.ErrorIs(t, ErrForbidden.WithDetails("x"), ErrForbidden)
	assert.NotErrorIs(t, ErrForbidden, ErrInvalidCredentials)
}
