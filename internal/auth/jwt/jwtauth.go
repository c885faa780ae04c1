package jwt

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
)

// VerifyToken checks the signature and expiry of token and returns its subject.
func VerifyToken(jwtAuth *jwtauth.JWTAuth, token string) (string, error) {
	t, err := jwtauth.VerifyToken(jwtAuth, token)
	if err != nil {
		return "", err
	}
	return t.Subject(), nil
}

// NewToken creates a JWT for the rep username that expires after ttl.
func NewToken(jwtAuth *jwtauth.JWTAuth, ttl time.Duration, username string) (string, error) {
	if username == "" {
		return "", fmt.Errorf("token subject is empty")
	}
	claims := map[string]interface{}{
		"sub": username,
		"iat": time.Now().Unix(),
	}
	jwtauth.SetExpiryIn(claims, ttl)
	_, ts, err := jwtAuth.Encode(claims)
	if err != nil {
		return "", err
	}
	return ts, nil
}

// SubjectFromContext returns the username of the token placed in ctx by
// jwtauth.Verifier.
func SubjectFromContext(ctx context.Context) (string, bool) {
	t, _, err := jwtauth.FromContext(ctx)
	if err != nil || t == nil {
		return "", false
	}
	return t.Subject(), t.Subject() != ""
}
