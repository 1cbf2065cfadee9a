package utils

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"

	AccessTokenTTL  = 24 * time.Hour
	RefreshTokenTTL = 7 * 24 * time.Hour
)

// Token verification failure kinds. Each maps to its own user-facing message
// but the same unauthorized status.
var (
	ErrTokenExpired   = errors.New("token has expired")
	ErrBadSignature   = errors.New("invalid token signature")
	ErrWrongTokenType = errors.New("invalid token type")
	ErrInvalidToken   = errors.New("could not validate token")
)

type TokenClaims struct {
	TokenType string `json:"type"`
	jwt.RegisteredClaims
}

func accessSecret() []byte {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("supersecret")
}

func refreshSecret() []byte {
	if s := os.Getenv("JWT_REFRESH_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("refresh_supersecret")
}

// GenerateAccessToken issues a 24-hour access token for the given user id.
func GenerateAccessToken(userID string) (string, error) {
	return generateToken(userID, TokenTypeAccess, AccessTokenTTL, accessSecret())
}

// GenerateRefreshToken issues a 7-day refresh token for the given user id.
func GenerateRefreshToken(userID string) (string, error) {
	return generateToken(userID, TokenTypeRefresh, RefreshTokenTTL, refreshSecret())
}

func generateToken(userID, tokenType string, ttl time.Duration, secret []byte) (string, error) {
	now := time.Now()
	claims := &TokenClaims{
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// VerifyAccessToken validates an access token and returns the user id it was
// issued for. A refresh token presented here fails with ErrWrongTokenType.
func VerifyAccessToken(tokenStr string) (string, error) {
	return verifyToken(tokenStr, TokenTypeAccess, accessSecret())
}

// VerifyRefreshToken validates a refresh token and returns the user id.
func VerifyRefreshToken(tokenStr string) (string, error) {
	return verifyToken(tokenStr, TokenTypeRefresh, refreshSecret())
}

func verifyToken(tokenStr, wantType string, secret []byte) (string, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", ErrBadSignature
		default:
			return "", ErrInvalidToken
		}
	}
	if !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	if claims.TokenType != wantType {
		return "", ErrWrongTokenType
	}
	return claims.Subject, nil
}

// TokenErrorMessage maps a verification failure to the message shown to the
// client.
func TokenErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrTokenExpired):
		return "Token has expired. Please log in again."
	case errors.Is(err, ErrBadSignature):
		return "Invalid token signature. Please log in again."
	case errors.Is(err, ErrWrongTokenType):
		return "Invalid token type"
	default:
		return "Could not validate credentials"
	}
}
