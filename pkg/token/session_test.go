package token

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	secret := []byte("top-secret")

	tok, err := GenerateSessionToken("session-1", secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateSessionToken: %v", err)
	}

	claims, err := VerifySessionToken(tok, secret)
	if err != nil {
		t.Fatalf("VerifySessionToken: %v", err)
	}
	if claims.Subject != "session-1" {
		t.Errorf("subject = %q, want session-1", claims.Subject)
	}
}

func TestVerifySessionToken_Rejects(t *testing.T) {
	secret := []byte("top-secret")

	expired, err := GenerateSessionToken("session-1", secret, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateSessionToken: %v", err)
	}
	otherKey, err := GenerateSessionToken("session-1", []byte("other"), time.Hour)
	if err != nil {
		t.Fatalf("GenerateSessionToken: %v", err)
	}
	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(secret)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject: "session-1",
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"expired", expired},
		{"wrong key", otherKey},
		{"no subject", noSubject},
		{"none alg", noneAlg},
		{"garbage", "not.a.token"},
		{"empty", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := VerifySessionToken(tc.token, secret)
			if !errors.Is(err, ErrInvalidToken) {
				t.Fatalf("err = %v, want ErrInvalidToken", err)
			}
		})
	}
}
