package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"movievault/proj/internal/domain/models"
	"movievault/proj/internal/storage"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type UsersStorage interface {
	Insert(ctx context.Context, email string, passwordHash []byte) (*models.User, error)
	Get(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type AuthService struct {
	log      *slog.Logger
	storage  UsersStorage
	secret   string
	tokenTTL time.Duration
}

func New(log *slog.Logger, storage UsersStorage, secret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		log:      log,
		storage:  storage,
		secret:   secret,
		tokenTTL: tokenTTL,
	}
}

func (a *AuthService) CreateUser(ctx context.Context, email, password string) (*models.User, error) {
	const op = "auth.AuthService.CreateUser"
	log := a.log.With("op", op, "email", email)
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Error(err.Error())
		return nil, err
	}
	user, err := a.storage.Insert(ctx, email, hash)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			log.Info("user already exists")
			return nil, ErrUserAlreadyExists
		}
		log.Error(err.Error())
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials and issues a signed bearer token with
// the user id in the uid claim.
func (a *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	const op = "auth.AuthService.Login"
	log := a.log.With("op", op, "email", email)
	user, err := a.storage.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("user not found")
			return "", ErrInvalidCredentials
		}
		log.Error(err.Error())
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		log.Info("wrong password")
		return "", ErrInvalidCredentials
	}
	claims := jwt.MapClaims{
		"uid": user.ID,
		"exp": time.Now().Add(a.tokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(a.secret))
	if err != nil {
		log.Error(err.Error())
		return "", err
	}
	return token, nil
}

// Authenticate resolves a bearer token back to its user.
func (a *AuthService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	const op = "auth.AuthService.Authenticate"
	log := a.log.With("op", op)
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(a.secret), nil
	})
	if err != nil || !parsed.Valid {
		log.Info("invalid token")
		return nil, ErrInvalidToken
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	uid, ok := claims["uid"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}
	user, err := a.storage.Get(ctx, int64(uid))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Info("user not found", "uid", int64(uid))
			return nil, ErrUserNotFound
		}
		log.Error(err.Error())
		return nil, err
	}
	return user, nil
}
