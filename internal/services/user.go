package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"

	"github.com/fakhrul62/product-recommendation-server/internal/logger"
	"github.com/fakhrul62/product-recommendation-server/internal/models"
)

//go:generate mockgen -source=user.go -destination=mock_user.go -package=services

// ErrPasswordTooLong is returned when a password exceeds bcrypt's 72 byte input limit.
var ErrPasswordTooLong = errors.New("password exceeds 72 bytes")

// UserReader defines read-only operations for users.
type UserReader interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id bson.ObjectID) (*models.User, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, user models.User) (*models.InsertResult, error)
	Upsert(ctx context.Context, id bson.ObjectID, email, passwordHash string) (*models.UpdateResult, error)
	UpdateLastSignIn(ctx context.Context, email, lastSignInTime string) (*models.UpdateResult, error)
	Delete(ctx context.Context, id bson.ObjectID) (*models.DeleteResult, error)
}

// UserService handles account documents. Passwords are stored as bcrypt hashes.
type UserService struct {
	reader UserReader
	writer UserWriter
}

// NewUserService creates a new UserService instance.
func NewUserService(reader UserReader, writer UserWriter) *UserService {
	return &UserService{
		reader: reader,
		writer: writer,
	}
}

func (svc *UserService) Create(ctx context.Context, user models.User) (*models.InsertResult, error) {
	hashed, err := hashPassword(user.Password)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "email", user.Email, "err", err)
		return nil, err
	}
	user.ID = bson.NilObjectID
	user.Password = hashed

	res, err := svc.writer.Create(ctx, user)
	if err != nil {
		logger.Log.Errorw("failed to create user", "email", user.Email, "err", err)
		return nil, err
	}
	return res, nil
}

func (svc *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}
	return users, nil
}

func (svc *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	oid, err := models.ParseID(id)
	if err != nil {
		return nil, err
	}

	user, err := svc.reader.Get(ctx, oid)
	if err != nil {
		logger.Log.Errorw("failed to get user", "id", id, "err", err)
		return nil, err
	}
	return user, nil
}

// Upsert replaces email and password of the user with the given id. An
// unknown id creates a document with only those fields.
func (svc *UserService) Upsert(ctx context.Context, id, email, password string) (*models.UpdateResult, error) {
	oid, err := models.ParseID(id)
	if err != nil {
		return nil, err
	}

	hashed, err := hashPassword(password)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "id", id, "err", err)
		return nil, err
	}

	res, err := svc.writer.Upsert(ctx, oid, email, hashed)
	if err != nil {
		logger.Log.Errorw("failed to upsert user", "id", id, "err", err)
		return nil, err
	}
	return res, nil
}

// TouchLastSignIn records a sign-in for the user with the given email.
// An unknown email is not an error; the result reports zero matches.
func (svc *UserService) TouchLastSignIn(ctx context.Context, email, lastSignInTime string) (*models.UpdateResult, error) {
	res, err := svc.writer.UpdateLastSignIn(ctx, email, lastSignInTime)
	if err != nil {
		logger.Log.Errorw("failed to update last sign-in", "email", email, "err", err)
		return nil, err
	}
	return res, nil
}

func (svc *UserService) Delete(ctx context.Context, id string) (*models.DeleteResult, error) {
	oid, err := models.ParseID(id)
	if err != nil {
		return nil, err
	}

	res, err := svc.writer.Delete(ctx, oid)
	if err != nil {
		logger.Log.Errorw("failed to delete user", "id", id, "err", err)
		return nil, err
	}
	return res, nil
}

// hashPassword leaves an empty password empty.
func hashPassword(password string) (string, error) {
	if password == "" {
		return "", nil
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", ErrPasswordTooLong
	}
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
