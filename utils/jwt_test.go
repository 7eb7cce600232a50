package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
)

func TestJWTRoundTrip(t *testing.T) {
	m := NewJWTManager("secret", 7*24*time.Hour)
	token, err := m.GenerateToken("a@x.com")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	claims, err := m.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.Email != "a@x.com" {
		t.Fatalf("email = %q", claims.Email)
	}
	if got := time.Unix(claims.ExpiresAt, 0).Sub(time.Unix(claims.IssuedAt, 0)); got != 7*24*time.Hour {
		t.Fatalf("lifetime = %v, want 7 days", got)
	}
}

func TestJWTRejects(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)

	expired := NewJWTManager("secret", time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expiredToken, _ := expired.GenerateToken("a@x.com")

	otherKey, _ := NewJWTManager("other", time.Hour).GenerateToken("a@x.com")

	noEmail, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("secret"))

	none, _ := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"email": "a@x.com",
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)

	cases := map[string]string{
		"expired":   expiredToken,
		"bad key":   otherKey,
		"no email":  noEmail,
		"alg none":  none,
		"malformed": "not.a.token",
		"empty":     "",
	}
	for name, token := range cases {
		if _, err := m.ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("%s: expected ErrInvalidToken, got %v", name, err)
		}
	}
}
