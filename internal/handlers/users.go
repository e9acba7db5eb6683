package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/fakhrul62/product-recommendation-server/internal/logger"
	"github.com/fakhrul62/product-recommendation-server/internal/models"
	"github.com/fakhrul62/product-recommendation-server/internal/services"
)

//go:generate mockgen -source=users.go -destination=mock_users.go -package=handlers

// UserCreator stores a new account.
type UserCreator interface {
	Create(ctx context.Context, user models.User) (*models.InsertResult, error)
}

// UserLister lists accounts.
type UserLister interface {
	List(ctx context.Context) ([]models.User, error)
}

// UserGetter loads one account by id.
type UserGetter interface {
	Get(ctx context.Context, id string) (*models.User, error)
}

// UserUpserter replaces the credentials of an account.
type UserUpserter interface {
	Upsert(ctx context.Context, id, email, password string) (*models.UpdateResult, error)
}

// UserDeleter removes an account.
type UserDeleter interface {
	Delete(ctx context.Context, id string) (*models.DeleteResult, error)
}

// SignInToucher records a sign-in.
type SignInToucher interface {
	TouchLastSignIn(ctx context.Context, email, lastSignInTime string) (*models.UpdateResult, error)
}

// CreateUserRequest represents the JSON body for account creation
// swagger:model CreateUserRequest
type CreateUserRequest struct {
	// Display name
	// default: John Doe
	Name string `json:"name"`

	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Password, stored as a bcrypt hash
	// default: secret123
	Password string `json:"password"`

	// Avatar URL
	Photo string `json:"photo"`

	// Account creation time as reported by the identity provider
	CreationTime string `json:"creationTime"`

	// Last sign-in time as reported by the identity provider
	LastSignInTime string `json:"lastSignInTime"`

	// Any other profile members, stored as sent
	Extra bson.M `json:"-"`
}

func (req *CreateUserRequest) UnmarshalJSON(data []byte) error {
	type plain CreateUserRequest
	if err := json.Unmarshal(data, (*plain)(req)); err != nil {
		return err
	}

	extra, err := models.ExtraFields(data, plain{}, models.User{})
	if err != nil {
		return err
	}
	req.Extra = extra
	return nil
}

// UpsertUserRequest represents the JSON body replacing account credentials
// swagger:model UpsertUserRequest
type UpsertUserRequest struct {
	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Password
	// default: secret123
	Password string `json:"password"`
}

// TouchSignInRequest represents the JSON body recording a sign-in
// swagger:model TouchSignInRequest
type TouchSignInRequest struct {
	// Email of the account
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Sign-in time as reported by the identity provider
	LastSignInTime string `json:"lastSignInTime"`
}

// NewCreateUserHandler returns an HTTP handler storing a new account.
// @Summary Create user
// @Tags users
// @Accept json
// @Produce json
// @Param user body handlers.CreateUserRequest true "User"
// @Success 200 {object} models.InsertResult
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Router /users [post]
func NewCreateUserHandler(svc UserCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateUserRequest
		if err := decodeBody(r, &req); err != nil {
			logger.Log.Warnw("failed to decode user", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		res, err := svc.Create(r.Context(), models.User{
			Name:           req.Name,
			Email:          req.Email,
			Password:       req.Password,
			PhotoURL:       req.Photo,
			CreationTime:   req.CreationTime,
			LastSignInTime: req.LastSignInTime,
			Extra:          req.Extra,
		})
		if err != nil {
			writeUserError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

// NewListUsersHandler returns an HTTP handler listing accounts.
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} models.User
// @Failure 500 {object} handlers.ErrorResponse
// @Router /users [get]
func NewListUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.List(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, users)
	}
}

// NewGetUserHandler returns an HTTP handler loading one account.
// @Summary Get user
// @Tags users
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} models.User "The user, or null when it does not exist"
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Router /user/{id} [get]
func NewGetUserHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := svc.Get(r.Context(), chi.URLParam(r, "id"))
		writeLookup(w, user, err)
	}
}

// NewUpsertUserHandler returns an HTTP handler replacing account credentials.
// An unknown id creates an account holding only these fields.
// @Summary Upsert user credentials
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User id"
// @Param request body handlers.UpsertUserRequest true "Credentials"
// @Success 200 {object} models.UpdateResult
// @Failure 400 {object} handlers.ErrorResponse "Invalid id or body"
// @Router /user/{id} [put]
func NewUpsertUserHandler(svc UserUpserter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpsertUserRequest
		if err := decodeBody(r, &req); err != nil {
			logger.Log.Warnw("failed to decode user credentials", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		res, err := svc.Upsert(r.Context(), chi.URLParam(r, "id"), req.Email, req.Password)
		if err != nil {
			writeUserError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

// NewDeleteUserHandler returns an HTTP handler removing an account.
// @Summary Delete user
// @Tags users
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} models.DeleteResult
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Router /user/{id} [delete]
func NewDeleteUserHandler(svc UserDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := svc.Delete(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

// NewTouchSignInHandler returns an HTTP handler recording a sign-in by email.
// An unknown email answers with zero matches, not an error.
// @Summary Record sign-in
// @Tags users
// @Accept json
// @Produce json
// @Param request body handlers.TouchSignInRequest true "Sign-in"
// @Success 200 {object} models.UpdateResult
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Router /user [patch]
func NewTouchSignInHandler(svc SignInToucher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TouchSignInRequest
		if err := decodeBody(r, &req); err != nil {
			logger.Log.Warnw("failed to decode sign-in", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		res, err := svc.TouchLastSignIn(r.Context(), req.Email, req.LastSignInTime)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

func writeUserError(w http.ResponseWriter, err error) {
	if errors.Is(err, services.ErrPasswordTooLong) {
		writeError(w, http.StatusBadRequest, "Password too long")
		return
	}
	writeServiceError(w, err)
}
