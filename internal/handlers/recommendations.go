package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fakhrul62/product-recommendation-server/internal/logger"
	"github.com/fakhrul62/product-recommendation-server/internal/models"
)

//go:generate mockgen -source=recommendations.go -destination=mock_recommendations.go -package=handlers

// RecommendationLister lists recommendations by owner filter.
type RecommendationLister interface {
	List(ctx context.Context, filter models.RecommendationFilter) ([]models.Recommendation, error)
}

// RecommendationGetter loads one recommendation by id.
type RecommendationGetter interface {
	Get(ctx context.Context, id string) (*models.Recommendation, error)
}

// RecommendationCreator stores a new recommendation.
type RecommendationCreator interface {
	Create(ctx context.Context, rec models.Recommendation) (*models.InsertResult, error)
}

// RecommendationDeleter withdraws a recommendation.
type RecommendationDeleter interface {
	Delete(ctx context.Context, id string) (*models.DeleteResult, error)
}

// NewListRecommendationsHandler returns an HTTP handler listing recommendations.
// @Summary List recommendations
// @Description ?email keeps recommendations on that user's queries, ?excludeEmail drops them and wins when both are given
// @Tags recommendations
// @Produce json
// @Param email query string false "Query owner email"
// @Param excludeEmail query string false "Query owner email to exclude"
// @Success 200 {array} models.Recommendation
// @Failure 500 {object} handlers.ErrorResponse
// @Router /recommendations [get]
func NewListRecommendationsHandler(svc RecommendationLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := r.URL.Query()
		filter := models.RecommendationFilter{
			OwnerEmail:        params.Get("email"),
			ExcludeOwnerEmail: params.Get("excludeEmail"),
		}

		recs, err := svc.List(r.Context(), filter)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, recs)
	}
}

// NewGetRecommendationHandler returns an HTTP handler loading one recommendation.
// @Summary Get recommendation
// @Tags recommendations
// @Produce json
// @Param id path string true "Recommendation id"
// @Success 200 {object} models.Recommendation "The recommendation, or null when it does not exist"
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized Access"
// @Router /recommendations/{id} [get]
// @Security CookieAuth
func NewGetRecommendationHandler(svc RecommendationGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := svc.Get(r.Context(), chi.URLParam(r, "id"))
		writeLookup(w, rec, err)
	}
}

// NewCreateRecommendationHandler returns an HTTP handler storing a recommendation.
// The target query's counter is bumped by a separate PATCH /queries/{id}.
// @Summary Create recommendation
// @Tags recommendations
// @Accept json
// @Produce json
// @Param recommendation body models.Recommendation true "Recommendation"
// @Success 200 {object} models.InsertResult
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized Access"
// @Router /recommendations [post]
// @Security CookieAuth
func NewCreateRecommendationHandler(svc RecommendationCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var rec models.Recommendation
		if err := decodeBody(r, &rec); err != nil {
			logger.Log.Warnw("failed to decode recommendation", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		res, err := svc.Create(r.Context(), rec)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

// NewDeleteRecommendationHandler returns an HTTP handler withdrawing a
// recommendation and decrementing its query's counter.
// @Summary Delete recommendation
// @Tags recommendations
// @Produce json
// @Param id path string true "Recommendation id"
// @Success 200 {object} models.DeleteResult
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized Access"
// @Router /recommendations/{id} [delete]
// @Security CookieAuth
func NewDeleteRecommendationHandler(svc RecommendationDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := svc.Delete(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}
