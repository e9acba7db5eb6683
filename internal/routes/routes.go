// Package routes holds the authorization policy table and assembles the
// HTTP router from it.
package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	_ "github.com/fakhrul62/product-recommendation-server/docs"
	"github.com/fakhrul62/product-recommendation-server/internal/handlers"
	"github.com/fakhrul62/product-recommendation-server/internal/logger"
	"github.com/fakhrul62/product-recommendation-server/internal/middlewares"
)

// QueryService is everything the query routes dispatch to.
type QueryService interface {
	handlers.QueryLister
	handlers.RecentQueryLister
	handlers.QueryGetter
	handlers.QueryCreator
	handlers.QueryReplacer
	handlers.QueryCounter
	handlers.QueryDeleter
}

// RecommendationService is everything the recommendation routes dispatch to.
type RecommendationService interface {
	handlers.RecommendationLister
	handlers.RecommendationGetter
	handlers.RecommendationCreator
	handlers.RecommendationDeleter
}

// UserService is everything the user routes dispatch to.
type UserService interface {
	handlers.UserCreator
	handlers.UserLister
	handlers.UserGetter
	handlers.UserUpserter
	handlers.UserDeleter
	handlers.SignInToucher
}

// SessionService issues and revokes session tokens.
type SessionService interface {
	handlers.SessionIssuer
	handlers.SessionRevoker
}

// Deps are the collaborators the router is built from.
type Deps struct {
	Queries         QueryService
	Recommendations RecommendationService
	Users           UserService
	Sessions        SessionService

	Tokens      middlewares.Tokener
	Revocations middlewares.RevocationChecker // nil disables the denylist check

	Production  bool
	CORSOrigins []string
	SwaggerURL  string
	Logger      *zap.SugaredLogger // defaults to logger.Log
}

// Route is one entry of the authorization policy table.
type Route struct {
	Method  string
	Pattern string
	Gated   bool // requires a verified session
	Handler http.HandlerFunc
}

// Policy returns the authorization policy table: every route the service
// exposes and whether it needs a session.
func Policy(d Deps) []Route {
	return []Route{
		{http.MethodGet, "/", false, handlers.NewRootHandler()},

		{http.MethodPost, "/jwt", false, handlers.NewIssueTokenHandler(d.Sessions, d.Production)},
		{http.MethodPost, "/jwt/logout", false, handlers.NewLogoutHandler(d.Sessions, d.Tokens, d.Production)},

		{http.MethodGet, "/queries", false, handlers.NewListQueriesHandler(d.Queries)},
		{http.MethodGet, "/queries-home", false, handlers.NewRecentQueriesHandler(d.Queries)},
		{http.MethodGet, "/queries-email", true, handlers.NewListOwnQueriesHandler(d.Queries)},
		{http.MethodPost, "/queries", true, handlers.NewCreateQueryHandler(d.Queries)},
		{http.MethodGet, "/queries/{id}", true, handlers.NewGetQueryHandler(d.Queries)},
		{http.MethodPut, "/queries/{id}", true, handlers.NewUpdateQueryHandler(d.Queries)},
		{http.MethodPatch, "/queries/{id}", true, handlers.NewIncrementQueryHandler(d.Queries)},
		{http.MethodDelete, "/queries/{id}", true, handlers.NewDeleteQueryHandler(d.Queries)},

		{http.MethodGet, "/recommendations", false, handlers.NewListRecommendationsHandler(d.Recommendations)},
		{http.MethodPost, "/recommendations", true, handlers.NewCreateRecommendationHandler(d.Recommendations)},
		{http.MethodGet, "/recommendations/{id}", true, handlers.NewGetRecommendationHandler(d.Recommendations)},
		{http.MethodDelete, "/recommendations/{id}", true, handlers.NewDeleteRecommendationHandler(d.Recommendations)},

		{http.MethodPost, "/users", false, handlers.NewCreateUserHandler(d.Users)},
		{http.MethodGet, "/users", false, handlers.NewListUsersHandler(d.Users)},
		{http.MethodGet, "/user/{id}", false, handlers.NewGetUserHandler(d.Users)},
		{http.MethodPut, "/user/{id}", false, handlers.NewUpsertUserHandler(d.Users)},
		{http.MethodDelete, "/user/{id}", false, handlers.NewDeleteUserHandler(d.Users)},
		{http.MethodPatch, "/user", false, handlers.NewTouchSignInHandler(d.Users)},
	}
}

// NewRouter builds the chi router: panic recovery, request logging, CORS
// with credentials, then every Policy route behind the auth gate when gated.
func NewRouter(d Deps) http.Handler {
	log := d.Logger
	if log == nil {
		log = logger.Log
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   d.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	auth := middlewares.AuthMiddleware(d.Tokens, d.Revocations)
	for _, route := range Policy(d) {
		var h http.Handler = route.Handler
		if route.Gated {
			h = auth(h)
		}
		r.Method(route.Method, route.Pattern, h)
	}

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(d.SwaggerURL)))

	return r
}
