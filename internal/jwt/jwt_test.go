package jwt

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_GenerateAndGetClaims(t *testing.T) {
	j := New(WithSecretKey("test-secret"))
	ctx := context.Background()

	token, err := j.Generate(ctx, map[string]any{"email": "alice@example.com", "role": "user"})
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := j.GetClaims(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", claims.Email())
	assert.Equal(t, "user", claims.Identity["role"])
	assert.NotEmpty(t, claims.ID)
	assert.NotContains(t, claims.Identity, "exp")
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt, 5*time.Second)
}

func TestJWT_ReservedClaimsAreOverridden(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(time.Minute))
	ctx := context.Background()

	// a client-supplied exp far in the future must not extend the session
	token, err := j.Generate(ctx, map[string]any{"email": "a@b.c", "exp": time.Now().Add(100 * time.Hour).Unix()})
	require.NoError(t, err)

	claims, err := j.GetClaims(ctx, token)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Minute), claims.ExpiresAt, 5*time.Second)
}

func TestJWT_ClientTimeClaimsDoNotPoisonToken(t *testing.T) {
	j := New(WithSecretKey("test-secret"))
	ctx := context.Background()

	tests := []struct {
		name     string
		identity map[string]any
	}{
		{name: "nbf in the future", identity: map[string]any{"email": "a@b.c", "nbf": time.Now().Add(time.Hour).Unix()}},
		{name: "non-numeric nbf", identity: map[string]any{"email": "a@b.c", "nbf": "tomorrow"}},
		{name: "non-numeric iat", identity: map[string]any{"email": "a@b.c", "iat": "yesterday"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := j.Generate(ctx, tt.identity)
			require.NoError(t, err)

			claims, err := j.GetClaims(ctx, token)
			require.NoError(t, err)
			assert.Equal(t, "a@b.c", claims.Email())
			assert.NotContains(t, claims.Identity, "nbf")
			assert.NotContains(t, claims.Identity, "iat")
		})
	}
}

func TestJWT_ExpiredToken(t *testing.T) {
	j := New(WithSecretKey("test-secret"), WithExpiration(-time.Minute))
	ctx := context.Background()

	token, err := j.Generate(ctx, map[string]any{"email": "a@b.c"})
	assert.NoError(t, err)

	claims, err := j.GetClaims(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestJWT_TamperedSignature(t *testing.T) {
	j := New(WithSecretKey("test-secret"))
	ctx := context.Background()

	token, err := j.Generate(ctx, map[string]any{"email": "a@b.c"})
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = j.GetClaims(ctx, tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWT_InvalidToken(t *testing.T) {
	j := New(WithSecretKey("secret"))
	ctx := context.Background()

	for _, token := range []string{"", "invalid.token.string", "abc"} {
		claims, err := j.GetClaims(ctx, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.Nil(t, claims)
	}
}

func TestJWT_GetClaims_WrongSecret(t *testing.T) {
	j1 := New(WithSecretKey("secret1"))
	j2 := New(WithSecretKey("secret2"))
	ctx := context.Background()

	token, err := j1.Generate(ctx, map[string]any{"email": "a@b.c"})
	assert.NoError(t, err)

	_, err = j2.GetClaims(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New()
	ctx := context.Background()

	tests := []struct {
		name          string
		cookie        *http.Cookie
		expectedToken string
		expectError   bool
	}{
		{"ValidCookie", &http.Cookie{Name: CookieName, Value: "mytoken123"}, "mytoken123", false},
		{"NoCookie", nil, "", true},
		{"EmptyCookie", &http.Cookie{Name: CookieName, Value: ""}, "", true},
		{"OtherCookie", &http.Cookie{Name: "session", Value: "mytoken123"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}

			token, err := j.GetTokenFromRequest(ctx, req)
			if tt.expectError {
				assert.ErrorIs(t, err, ErrNoToken)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}
