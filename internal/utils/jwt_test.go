package utils

import (
	"errors"
	"testing"
	"time"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := GenerateAccessToken("u1")
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}
	userID, err := VerifyAccessToken(token)
	if err != nil {
		t.Fatalf("VerifyAccessToken() error = %v", err)
	}
	if userID != "u1" {
		t.Errorf("userID = %q, want u1", userID)
	}
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	token, err := GenerateRefreshToken("u2")
	if err != nil {
		t.Fatalf("GenerateRefreshToken() error = %v", err)
	}
	userID, err := VerifyRefreshToken(token)
	if err != nil {
		t.Fatalf("VerifyRefreshToken() error = %v", err)
	}
	if userID != "u2" {
		t.Errorf("userID = %q, want u2", userID)
	}
}

func TestVerifyAccessTokenRejectsRefreshToken(t *testing.T) {
	// With a shared secret the signature checks out, so the type claim is
	// what rejects the token.
	t.Setenv("JWT_SECRET", "shared")
	t.Setenv("JWT_REFRESH_SECRET", "shared")

	refresh, err := GenerateRefreshToken("u1")
	if err != nil {
		t.Fatalf("GenerateRefreshToken() error = %v", err)
	}
	if _, err := VerifyAccessToken(refresh); !errors.Is(err, ErrWrongTokenType) {
		t.Errorf("VerifyAccessToken(refresh) error = %v, want ErrWrongTokenType", err)
	}
}

func TestVerifyAccessTokenWrongSecret(t *testing.T) {
	token, err := GenerateAccessToken("u1")
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}
	t.Setenv("JWT_SECRET", "a completely different secret")
	if _, err := VerifyAccessToken(token); !errors.Is(err, ErrBadSignature) {
		t.Errorf("VerifyAccessToken() error = %v, want ErrBadSignature", err)
	}
}

func TestVerifyAccessTokenExpired(t *testing.T) {
	token, err := generateToken("u1", TokenTypeAccess, -time.Minute, accessSecret())
	if err != nil {
		t.Fatalf("generateToken() error = %v", err)
	}
	if _, err := VerifyAccessToken(token); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("VerifyAccessToken() error = %v, want ErrTokenExpired", err)
	}
}

func TestVerifyAccessTokenGarbage(t *testing.T) {
	if _, err := VerifyAccessToken("not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("VerifyAccessToken() error = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyAccessTokenEmptySubject(t *testing.T) {
	token, err := generateToken("", TokenTypeAccess, time.Hour, accessSecret())
	if err != nil {
		t.Fatalf("generateToken() error = %v", err)
	}
	if _, err := VerifyAccessToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("VerifyAccessToken() error = %v, want ErrInvalidToken", err)
	}
}

func TestTokenErrorMessage(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrTokenExpired, "Token has expired. Please log in again."},
		{ErrBadSignature, "Invalid token signature. Please log in again."},
		{ErrWrongTokenType, "Invalid token type"},
		{ErrInvalidToken, "Could not validate credentials"},
		{errors.New("anything else"), "Could not validate credentials"},
	}
	for _, tt := range tests {
		if got := TokenErrorMessage(tt.err); got != tt.want {
			t.Errorf("TokenErrorMessage(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "correct horse battery staple" {
		t.Fatal("hash equals plaintext")
	}
	if !CheckPasswordHash("correct horse battery staple", hash) {
		t.Error("CheckPasswordHash() = false for correct password")
	}
	if CheckPasswordHash("wrong password", hash) {
		t.Error("CheckPasswordHash() = true for wrong password")
	}
}
