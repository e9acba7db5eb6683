package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fakhrul62/product-recommendation-server/internal/logger"
	"github.com/fakhrul62/product-recommendation-server/internal/middlewares"
	"github.com/fakhrul62/product-recommendation-server/internal/models"
)

//go:generate mockgen -source=queries.go -destination=mock_queries.go -package=handlers

// QueryLister lists queries, optionally by owner.
type QueryLister interface {
	List(ctx context.Context, filter models.QueryFilter) ([]models.Query, error)
}

// RecentQueryLister lists the newest queries.
type RecentQueryLister interface {
	ListRecent(ctx context.Context, limit int64) ([]models.Query, error)
}

// QueryGetter loads one query by id.
type QueryGetter interface {
	Get(ctx context.Context, id string) (*models.Query, error)
}

// QueryCreator stores a new query.
type QueryCreator interface {
	Create(ctx context.Context, query models.Query) (*models.InsertResult, error)
}

// QueryReplacer replaces the editable fields of a query.
type QueryReplacer interface {
	Replace(ctx context.Context, id string, update models.QueryUpdate) (*models.UpdateResult, error)
}

// QueryCounter adjusts the recommendation counter of a query.
type QueryCounter interface {
	IncrementCounter(ctx context.Context, id string, delta int64) (*models.UpdateResult, error)
}

// QueryDeleter removes a query.
type QueryDeleter interface {
	Delete(ctx context.Context, id string) (*models.DeleteResult, error)
}

// IncrementRequest is the optional body of a counter increment
// swagger:model IncrementRequest
type IncrementRequest struct {
	// Amount added to the counter, 1 when omitted
	// default: 1
	Increment *int64 `json:"increment"`
}

// NewListQueriesHandler returns an HTTP handler listing queries.
// @Summary List queries
// @Description Returns every query, or only those authored by ?email
// @Tags queries
// @Produce json
// @Param email query string false "Author email"
// @Success 200 {array} models.Query
// @Failure 500 {object} handlers.ErrorResponse
// @Router /queries [get]
func NewListQueriesHandler(svc QueryLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := models.QueryFilter{OwnerEmail: r.URL.Query().Get("email")}

		queries, err := svc.List(r.Context(), filter)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, queries)
	}
}

// NewListOwnQueriesHandler returns an HTTP handler listing the queries of the
// signed-in user. Asking for someone else's queries is forbidden.
// @Summary List own queries
// @Tags queries
// @Produce json
// @Param email query string false "Author email, defaults to the session email"
// @Success 200 {array} models.Query
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized Access"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden Access"
// @Failure 500 {object} handlers.ErrorResponse
// @Router /queries-email [get]
// @Security CookieAuth
func NewListOwnQueriesHandler(svc QueryLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, ok := middlewares.ClaimsFromContext(ctx)
		if !ok {
			writeServiceError(w, models.ErrUnauthorized)
			return
		}

		email := r.URL.Query().Get("email")
		sessionEmail := claims.Email()
		if email == "" {
			email = sessionEmail
		}
		if sessionEmail != "" && email != sessionEmail {
			logger.Log.Warnw("forbidden owner feed", "requested", email, "session", sessionEmail)
			writeError(w, http.StatusForbidden, "Forbidden Access")
			return
		}

		queries, err := svc.List(ctx, models.QueryFilter{OwnerEmail: email})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, queries)
	}
}

// NewRecentQueriesHandler returns an HTTP handler for the home page feed.
// @Summary Recent queries
// @Description Returns up to six queries, newest first
// @Tags queries
// @Produce json
// @Success 200 {array} models.Query
// @Failure 500 {object} handlers.ErrorResponse
// @Router /queries-home [get]
func NewRecentQueriesHandler(svc RecentQueryLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		queries, err := svc.ListRecent(r.Context(), 0)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, queries)
	}
}

// NewGetQueryHandler returns an HTTP handler loading one query.
// @Summary Get query
// @Tags queries
// @Produce json
// @Param id path string true "Query id"
// @Success 200 {object} models.Query "The query, or null when it does not exist"
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized Access"
// @Router /queries/{id} [get]
// @Security CookieAuth
func NewGetQueryHandler(svc QueryGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query, err := svc.Get(r.Context(), chi.URLParam(r, "id"))
		writeLookup(w, query, err)
	}
}

// NewCreateQueryHandler returns an HTTP handler storing a new query.
// @Summary Create query
// @Tags queries
// @Accept json
// @Produce json
// @Param query body models.Query true "Query"
// @Success 200 {object} models.InsertResult
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized Access"
// @Router /queries [post]
// @Security CookieAuth
func NewCreateQueryHandler(svc QueryCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var query models.Query
		if err := decodeBody(r, &query); err != nil {
			logger.Log.Warnw("failed to decode query", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		res, err := svc.Create(r.Context(), query)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

// NewUpdateQueryHandler returns an HTTP handler replacing the editable fields
// of a query. An unknown id creates the document.
// @Summary Update query
// @Tags queries
// @Accept json
// @Produce json
// @Param id path string true "Query id"
// @Param update body models.QueryUpdate true "Fields to replace"
// @Success 200 {object} models.UpdateResult
// @Failure 400 {object} handlers.ErrorResponse "Invalid id or body"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized Access"
// @Router /queries/{id} [put]
// @Security CookieAuth
func NewUpdateQueryHandler(svc QueryReplacer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var update models.QueryUpdate
		if err := decodeBody(r, &update); err != nil {
			logger.Log.Warnw("failed to decode query update", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		res, err := svc.Replace(r.Context(), chi.URLParam(r, "id"), update)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

// NewIncrementQueryHandler returns an HTTP handler bumping the recommendation
// counter of a query.
// @Summary Increment recommendation counter
// @Tags queries
// @Accept json
// @Produce json
// @Param id path string true "Query id"
// @Param request body handlers.IncrementRequest false "Increment, 1 when omitted"
// @Success 200 {object} models.UpdateResult
// @Failure 400 {object} handlers.ErrorResponse "Invalid id or increment"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized Access"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /queries/{id} [patch]
// @Security CookieAuth
func NewIncrementQueryHandler(svc QueryCounter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req IncrementRequest
		if err := decodeBody(r, &req); err != nil && !isEmptyBody(err) {
			logger.Log.Warnw("failed to decode increment", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		delta := int64(1)
		if req.Increment != nil {
			delta = *req.Increment
		}

		res, err := svc.IncrementCounter(r.Context(), chi.URLParam(r, "id"), delta)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

// NewDeleteQueryHandler returns an HTTP handler removing a query.
// @Summary Delete query
// @Tags queries
// @Produce json
// @Param id path string true "Query id"
// @Success 200 {object} models.DeleteResult
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized Access"
// @Router /queries/{id} [delete]
// @Security CookieAuth
func NewDeleteQueryHandler(svc QueryDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := svc.Delete(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}
