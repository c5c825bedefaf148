// Package session carries the caller's bearer token through a request and
// derives the key that scopes per-user state such as latest-wins searches.
package session

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v4"
)

type tokenKey struct{}

// WithToken stores the bearer token in ctx. Empty tokens are ignored.
func WithToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, tokenKey{}, token)
}

// Token returns the bearer token stored in ctx.
func Token(ctx context.Context) (string, bool) {
	t, ok := ctx.Value(tokenKey{}).(string)
	return t, ok && t != ""
}

// BearerToken extracts the token from an Authorization header value.
// The scheme is matched case-insensitively.
func BearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// Key identifies the session behind a token. It always includes a digest
// of the whole token, so only the holder of a token can reach its slot in
// gateway-local state. The subject claim is read without verifying the
// signature and only labels the key for logs.
func Key(token string) string {
	if token == "" {
		return "anonymous"
	}
	sum := sha256.Sum256([]byte(token))
	digest := hex.EncodeToString(sum[:8])
	if sub := subject(token); sub != "" {
		return "user:" + sub + ":" + digest
	}
	return "token:" + digest
}

// KeyFromContext is Key applied to the token stored in ctx.
func KeyFromContext(ctx context.Context) string {
	t, _ := Token(ctx)
	return Key(t)
}

func subject(token string) string {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ""
	}
	switch sub := claims["sub"].(type) {
	case string:
		return sub
	case float64:
		return fmt.Sprintf("%.0f", sub)
	default:
		return ""
	}
}
