package shared

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppError(t *testing.T) {
	t.Parallel()

	t.Run("message and wrapped cause", func(t *testing.T) {
		t.Parallel()

		cause := errors.New("row missing")
		appErr := NewNotFoundError(cause, "User not found")

		require.Equal(t, 404, appErr.StatusCode)
		require.Contains(t, appErr.Error(), "User not found")
		require.ErrorIs(t, appErr, cause)
	})

	t.Run("WithData carries the payload", func(t *testing.T) {
		t.Parallel()

		appErr := NewBadRequestError(nil, "Validation failed").WithData([]string{"email"})

		require.Equal(t, []string{"email"}, appErr.Data)
	})
}

func TestGetAppError(t *testing.T) {
	t.Parallel()

	t.Run("direct", func(t *testing.T) {
		t.Parallel()

		appErr, ok := GetAppError(NewBadRequestError(nil, "nope"))
		require.True(t, ok)
		require.Equal(t, 400, appErr.StatusCode)
	})

	t.Run("wrapped", func(t *testing.T) {
		t.Parallel()

		wrapped := fmt.Errorf("handling request: %w", NewUnauthorizedError(nil, "denied"))

		appErr, ok := GetAppError(wrapped)
		require.True(t, ok)
		require.Equal(t, 401, appErr.StatusCode)
	})

	t.Run("plain error", func(t *testing.T) {
		t.Parallel()

		_, ok := GetAppError(errors.New("boom"))
		require.False(t, ok)
	})
}
