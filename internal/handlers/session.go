package handlers

import (
	"context"
	"net/http"

	"github.com/fakhrul62/product-recommendation-server/internal/jwt"
	"github.com/fakhrul62/product-recommendation-server/internal/logger"
)

//go:generate mockgen -source=session.go -destination=mock_session.go -package=handlers

// SessionIssuer defines the interface that the session service must implement.
type SessionIssuer interface {
	Issue(ctx context.Context, identity map[string]any) (string, error)
}

// SessionRevoker invalidates a presented session token.
type SessionRevoker interface {
	Revoke(ctx context.Context, tokenString string) error
}

// TokenReader extracts the session token from a request.
type TokenReader interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// NewIssueTokenHandler returns an HTTP handler that signs the posted identity
// into a session cookie.
// @Summary Issue session
// @Description Signs the identity claims for 24 hours and sets them in the http-only token cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param identity body object true "Identity claims, usually {email}"
// @Success 200 {object} handlers.SuccessResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /jwt [post]
func NewIssueTokenHandler(svc SessionIssuer, production bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := map[string]any{}
		if err := decodeBody(r, &identity); err != nil && !isEmptyBody(err) {
			logger.Log.Warnw("failed to decode identity", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		token, err := svc.Issue(r.Context(), identity)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		jwt.SetCookie(w, token, production)
		writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
	}
}

// NewLogoutHandler returns an HTTP handler that revokes the presented session
// and clears the cookie.
// @Summary End session
// @Description Revokes the token in the cookie, if any, and clears the cookie
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.SuccessResponse
// @Failure 500 {object} handlers.ErrorResponse "Session could not be revoked"
// @Router /jwt/logout [post]
func NewLogoutHandler(svc SessionRevoker, tokens TokenReader, production bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		// Without a cookie there is nothing to revoke.
		tokenString, _ := tokens.GetTokenFromRequest(ctx, r)

		jwt.ClearCookie(w, production)

		if err := svc.Revoke(ctx, tokenString); err != nil {
			logger.Log.Errorw("failed to revoke session", "error", err)
			writeError(w, http.StatusInternalServerError, "Session could not be revoked")
			return
		}

		writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
	}
}

// NewRootHandler returns the liveness text served at /.
// @Summary Liveness
// @Tags health
// @Produce plain
// @Success 200 {string} string "Product Recommendation System IS RUNNING..."
// @Router / [get]
func NewRootHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("Product Recommendation System IS RUNNING..."))
	}
}
