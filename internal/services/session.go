package services

import (
	"context"
	"time"

	"github.com/fakhrul62/product-recommendation-server/internal/jwt"
	"github.com/fakhrul62/product-recommendation-server/internal/logger"
)

//go:generate mockgen -source=session.go -destination=mock_session.go -package=services

// TokenGenerator signs and parses session tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, identity map[string]any) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// RevocationStore remembers revoked token ids.
type RevocationStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
}

// SessionService issues and revokes session tokens.
type SessionService struct {
	tokens      TokenGenerator
	revocations RevocationStore
}

// NewSessionService creates a new SessionService. revocations may be nil, in
// which case logout only clears the client cookie.
func NewSessionService(tokens TokenGenerator, revocations RevocationStore) *SessionService {
	return &SessionService{
		tokens:      tokens,
		revocations: revocations,
	}
}

// Issue signs identity into a new session token.
func (svc *SessionService) Issue(ctx context.Context, identity map[string]any) (string, error) {
	token, err := svc.tokens.Generate(ctx, identity)
	if err != nil {
		logger.Log.Errorw("failed to generate session token", "err", err)
		return "", err
	}
	return token, nil
}

// Revoke denylists tokenString until it expires. Empty, invalid or already
// expired tokens need no revocation and are ignored.
func (svc *SessionService) Revoke(ctx context.Context, tokenString string) error {
	if svc.revocations == nil || tokenString == "" {
		return nil
	}

	claims, err := svc.tokens.GetClaims(ctx, tokenString)
	if err != nil || claims.ID == "" {
		return nil
	}

	if err := svc.revocations.Revoke(ctx, claims.ID, time.Until(claims.ExpiresAt)); err != nil {
		logger.Log.Errorw("failed to revoke session token", "jti", claims.ID, "err", err)
		return err
	}

	logger.Log.Infow("session revoked", "jti", claims.ID, "email", claims.Email())
	return nil
}
