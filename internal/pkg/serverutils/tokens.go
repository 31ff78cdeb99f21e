package serverutils

import (
	"os"
	"time"

	"ai-curriculum-be/internal/constant"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenPair is an access token (short-lived, stateless) and a refresh token
// (long-lived, matched against the user row on rotation) issued together.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

func accessSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default_secret"
	}
	return []byte(secret)
}

func refreshSecret() []byte {
	secret := os.Getenv("REFRESH_SECRET")
	if secret == "" {
		secret = "default_refresh_secret"
	}
	return []byte(secret)
}

func signToken(userId uuid.UUID, ttl time.Duration, secret []byte) (string, error) {
	now := time.Now()
	// jti keeps two tokens signed within the same second distinct, which
	// the stored-token rotation check relies on.
	claims := jwt.MapClaims{
		"user_id": userId.String(),
		"jti":     uuid.NewString(),
		"iat":     now.Unix(),
		"exp":     now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// IssueTokenPair signs an access and a refresh token for the user with
// independent secrets and expirations.
func IssueTokenPair(userId uuid.UUID) (*TokenPair, error) {
	accessToken, err := signToken(userId, constant.AccessTokenTTL, accessSecret())
	if err != nil {
		return nil, err
	}
	refreshToken, err := signToken(userId, constant.RefreshTokenTTL, refreshSecret())
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// VerifyRefreshToken checks signature and expiry against the refresh secret.
// Every failure mode collapses into the same invalid-token error.
func VerifyRefreshToken(tokenStr string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return refreshSecret(), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, NewAppError(401, "Invalid refresh token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, NewAppError(401, "Invalid refresh token")
	}
	userIdStr, _ := claims["user_id"].(string)
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return uuid.Nil, NewAppError(401, "Invalid refresh token")
	}
	return userId, nil
}
