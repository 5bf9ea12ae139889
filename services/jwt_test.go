package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestJWTService() *JWTService {
	return &JWTService{
		AdminTokenDuration: time.Hour,
		jwtSecretKey:       "test-signing-secret",
		adminAPIKey:        "test-operator-key",
	}
}

func TestMintAdminToken(t *testing.T) {
	t.Parallel()

	t.Run("valid key mints a verifiable token", func(t *testing.T) {
		t.Parallel()

		svc := newTestJWTService()

		token, err := svc.MintAdminToken("test-operator-key")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		require.NoError(t, svc.VerifyAdminToken(token))
	})

	t.Run("wrong key is rejected", func(t *testing.T) {
		t.Parallel()

		svc := newTestJWTService()

		_, err := svc.MintAdminToken("wrong")
		require.Error(t, err)
	})

	t.Run("unset operator key rejects everything", func(t *testing.T) {
		t.Parallel()

		svc := newTestJWTService()
		svc.adminAPIKey = ""

		_, err := svc.MintAdminToken("")
		require.Error(t, err)
	})
}

func TestVerifyAdminToken(t *testing.T) {
	t.Parallel()

	t.Run("garbage token", func(t *testing.T) {
		t.Parallel()

		svc := newTestJWTService()
		require.Error(t, svc.VerifyAdminToken("not-a-jwt"))
	})

	t.Run("token signed with a different secret", func(t *testing.T) {
		t.Parallel()

		minter := newTestJWTService()
		token, err := minter.MintAdminToken("test-operator-key")
		require.NoError(t, err)

		verifier := newTestJWTService()
		verifier.jwtSecretKey = "another-secret"
		require.Error(t, verifier.VerifyAdminToken(token))
	})

	t.Run("expired token", func(t *testing.T) {
		t.Parallel()

		svc := newTestJWTService()
		svc.AdminTokenDuration = -time.Minute

		token, err := svc.MintAdminToken("test-operator-key")
		require.NoError(t, err)

		require.Error(t, svc.VerifyAdminToken(token))
	})
}

func TestExtractTokenFromHeader(t *testing.T) {
	t.Parallel()

	svc := newTestJWTService()

	t.Run("bearer header", func(t *testing.T) {
		t.Parallel()

		token, err := svc.ExtractTokenFromHeader("Bearer abc.def.ghi")
		require.NoError(t, err)
		require.Equal(t, "abc.def.ghi", token)
	})

	t.Run("missing header", func(t *testing.T) {
		t.Parallel()

		_, err := svc.ExtractTokenFromHeader("")
		require.Error(t, err)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		t.Parallel()

		_, err := svc.ExtractTokenFromHeader("Basic abc")
		require.Error(t, err)
	})
}
