package serverutils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestIssueTokenPair(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-access-secret")
	t.Setenv("REFRESH_SECRET", "test-refresh-secret")

	userId := uuid.New()
	pair, err := IssueTokenPair(userId)
	assert.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	// Refresh token round-trips to the same user
	got, err := VerifyRefreshToken(pair.RefreshToken)
	assert.NoError(t, err)
	assert.Equal(t, userId, got)
}

func TestIssueTokenPair_TokensAreUnique(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-access-secret")
	t.Setenv("REFRESH_SECRET", "test-refresh-secret")

	userId := uuid.New()
	first, err := IssueTokenPair(userId)
	assert.NoError(t, err)
	second, err := IssueTokenPair(userId)
	assert.NoError(t, err)

	// Issued back to back within the same second they must still differ,
	// otherwise rotation cannot tell old from new.
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)
}

func TestVerifyRefreshToken_RejectsAccessToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-access-secret")
	t.Setenv("REFRESH_SECRET", "test-refresh-secret")

	pair, err := IssueTokenPair(uuid.New())
	assert.NoError(t, err)

	// Access tokens are signed with a different secret
	_, err = VerifyRefreshToken(pair.AccessToken)
	assert.Error(t, err)
}

func TestVerifyRefreshToken_RejectsGarbage(t *testing.T) {
	t.Setenv("REFRESH_SECRET", "test-refresh-secret")

	_, err := VerifyRefreshToken("not-a-jwt")
	assert.Error(t, err)

	appErr, ok := err.(*AppError)
	assert.True(t, ok)
	assert.Equal(t, 401, appErr.Code)
	assert.Equal(t, "Invalid refresh token", appErr.Message)
}

func TestVerifyRefreshToken_RejectsExpired(t *testing.T) {
	t.Setenv("REFRESH_SECRET", "test-refresh-secret")

	claims := jwt.MapClaims{
		"user_id": uuid.NewString(),
		"iat":     time.Now().Add(-2 * time.Hour).Unix(),
		"exp":     time.Now().Add(-time.Hour).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-refresh-secret"))
	assert.NoError(t, err)

	_, err = VerifyRefreshToken(expired)
	assert.Error(t, err)
}

func TestVerifyRefreshToken_RejectsWrongAlgorithm(t *testing.T) {
	t.Setenv("REFRESH_SECRET", "test-refresh-secret")

	claims := jwt.MapClaims{
		"user_id": uuid.NewString(),
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	// alg=none tokens must never verify
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	assert.NoError(t, err)

	_, err = VerifyRefreshToken(unsigned)
	assert.Error(t, err)
}
