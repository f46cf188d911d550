package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorStatus(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want int
	}{
		{ErrCodeValidation, http.StatusBadRequest},
		{ErrCodeRequiredField, http.StatusBadRequest},
		{ErrCodeInvalidFormat, http.StatusBadRequest},
		{ErrCodeMissingToken, http.StatusUnauthorized},
		{ErrCodeInvalidCredentials, http.StatusUnauthorized},
		{ErrCodeForbidden, http.StatusForbidden},
		{ErrCodeNotFound, http.StatusNotFound},
		{ErrCodeRateLimited, http.StatusTooManyRequests},
		{ErrCodeDBError, http.StatusInternalServerError},
		{ErrCodeInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, NewAppError(tt.code, "x", nil).Status())
		})
	}
}

func TestGetAppErrorUnwraps(t *testing.T) {
	wrapped := fmt.Errorf("saving: %w", ErrSessionNotFound)

	assert.True(t, IsAppError(wrapped))
	assert.True(t, HasCode(wrapped, ErrCodeNotFound))
	assert.False(t, HasCode(wrapped, ErrCodeValidation))
	assert.Nil(t, GetAppError(fmt.Errorf("plain")))
}
