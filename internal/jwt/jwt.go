package jwt

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CookieName is the cookie carrying the session token.
const CookieName = "token"

var (
	// ErrNoToken is returned when the request carries no session cookie.
	ErrNoToken = errors.New("session token missing")
	// ErrInvalidToken is returned for malformed, tampered or expired tokens.
	ErrInvalidToken = errors.New("invalid session token")
)

// JWT signs and verifies session tokens.
type JWT struct {
	SecretKey string        // Secret key for signing tokens
	Exp       time.Duration // Token validity window
}

// Opt configures a JWT.
type Opt func(*JWT)

func WithSecretKey(secret string) Opt {
	return func(j *JWT) { j.SecretKey = secret }
}

func WithExpiration(exp time.Duration) Opt {
	return func(j *JWT) { j.Exp = exp }
}

// New creates a JWT with a 24 hour validity window unless overridden.
func New(opts ...Opt) *JWT {
	j := &JWT{Exp: 24 * time.Hour}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Claims is a verified session.
type Claims struct {
	ID        string         // Token id (jti), used for revocation
	ExpiresAt time.Time      // Expiry of the token
	Identity  map[string]any // Caller supplied claim set
}

// Email returns the email claim, or "" when the identity has none.
func (c *Claims) Email() string {
	email, _ := c.Identity["email"].(string)
	return email
}

// Generate signs identity as the claim set of a new token. The registered
// claims exp, iat and jti are always set by the service, and a supplied nbf
// is dropped.
func (j *JWT) Generate(ctx context.Context, identity map[string]any) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{}
	maps.Copy(claims, identity)
	delete(claims, "nbf")
	claims["exp"] = now.Add(j.Exp).Unix()
	claims["iat"] = now.Unix()
	claims["jti"] = uuid.NewString()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.SecretKey))
}

// GetClaims verifies the token signature and expiry and returns its claims.
// It never consults any user record.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(j.SecretKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	exp, err := mc.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, ErrInvalidToken
	}

	claims := &Claims{
		ExpiresAt: exp.Time,
		Identity:  make(map[string]any, len(mc)),
	}
	claims.ID, _ = mc["jti"].(string)
	for k, v := range mc {
		switch k {
		case "exp", "iat", "jti", "nbf":
		default:
			claims.Identity[k] = v
		}
	}
	return claims, nil
}

// GetTokenFromRequest extracts the token string from the session cookie.
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return "", ErrNoToken
	}
	return cookie.Value, nil
}
