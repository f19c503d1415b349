package errors

import (
	"net/http"
	"testing"

	"counterhub/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails("mobile is required")

	assert.Equal(t, "mobile is required", detailed.Details())
	assert.Empty(t, ErrValidationFailed.Details())
	assert.True(t, errors.Is(detailed, ErrValidationFailed))
	assert.False(t, errors.Is(detailed, ErrUserNotFound))
}

func TestBaseError_WrapMessage(t *testing.T) {
	err := ErrUserNotFound.WrapMessage("profile lookup")

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.Equal(t, "USER_NOT_FOUND", appErr.ErrorCode())
	assert.True(t, errors.Is(err, ErrUserNotFound))
}

func TestDatabaseExecuteError_CarriesOriginMessage(t *testing.T) {
	origin := errors.New("connection reset by peer")
	err := NewDatabaseExecuteError(errors.Wrap(origin, "increment total"), "user 7")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, "Database execution failed: connection reset by peer", err.Message())
	assert.Equal(t, "user 7", err.Details())
	assert.True(t, errors.Is(err, origin))
}
