package dto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateLogSessionRequest(t *testing.T) {
	t.Parallel()

	t.Run("valid request", func(t *testing.T) {
		t.Parallel()

		err := Validate(LogSessionRequest{
			UserID:        "u1",
			GameID:        "g1",
			PlayedSeconds: 120,
			Result:        "win",
		})
		require.NoError(t, err)
	})

	t.Run("result may be omitted", func(t *testing.T) {
		t.Parallel()

		err := Validate(LogSessionRequest{UserID: "u1", GameID: "g1"})
		require.NoError(t, err)
	})

	t.Run("result outside win or loss", func(t *testing.T) {
		t.Parallel()

		err := Validate(LogSessionRequest{UserID: "u1", GameID: "g1", Result: "draw"})
		require.Error(t, err)
	})

	t.Run("negative duration", func(t *testing.T) {
		t.Parallel()

		err := Validate(LogSessionRequest{UserID: "u1", GameID: "g1", PlayedSeconds: -5})
		require.Error(t, err)
	})

	t.Run("missing references", func(t *testing.T) {
		t.Parallel()

		err := Validate(LogSessionRequest{PlayedSeconds: 10})
		require.Error(t, err)

		details := FormatValidationErrors(err)
		require.Len(t, details, 2)
	})
}

func TestValidateCreateUserRequest(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		err := Validate(CreateUserRequest{
			Email:     "anders@retrogaming.se",
			FirstName: "Anders",
			LastName:  "Svensson",
		})
		require.NoError(t, err)
	})

	t.Run("malformed email", func(t *testing.T) {
		t.Parallel()

		err := Validate(CreateUserRequest{
			Email:     "not-an-email",
			FirstName: "Anders",
			LastName:  "Svensson",
		})
		require.Error(t, err)

		details := FormatValidationErrors(err)
		require.Len(t, details, 1)
		require.Equal(t, "email", details[0].Field)
	})
}
