package authservice

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/ikaro-souza/recipe-app-api/internal/pkg/validate"
	"github.com/ikaro-souza/recipe-app-api/internal/recipes/domain/models"
	"github.com/ikaro-souza/recipe-app-api/internal/recipes/repository/userrepo"
	"golang.org/x/crypto/bcrypt"
)

const tokenBytes = 20

var (
	// ErrInvalidCredentials deliberately does not say which part of the
	// credentials was wrong.
	ErrInvalidCredentials = errors.New("unable to authenticate with provided credentials")
	ErrInvalidToken       = errors.New("invalid authentication token")
)

type Repository interface {
	CreateUser(context.Context, models.User) (models.User, error)
	GetUserByEmail(context.Context, string) (models.User, error)
	UpdateUser(context.Context, models.User) (models.User, error)
	ReplaceToken(context.Context, models.Token) error
	GetUserByToken(context.Context, string) (models.User, error)
}

type AuthService struct {
	userRepo Repository
}

func New(userRepo Repository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
	}
}

// Register creates an active regular user. The email is lower-cased before
// the uniqueness check so registration is case-insensitive.
func (as *AuthService) Register(ctx context.Context, req RegisterRequest) (models.User, error) {
	req.Email = normalizeEmail(req.Email)

	if err := validate.Struct(req); err != nil {
		return models.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("generate from password error: %w", err)
	}

	u := models.User{ //nolint:exhaustruct
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         req.Name,
		Active:       true,
	}

	u, err = as.userRepo.CreateUser(ctx, u)
	if err != nil {
		if errors.Is(err, userrepo.ErrEmailTaken) {
			return models.User{}, validate.FieldErrors{"email": "user with this email already exists"}
		}

		return models.User{}, fmt.Errorf("create user error: %w", err)
	}

	return u, nil
}

// CreateSuperuser is Register with the staff and superuser flags set. It is
// reached from the admin command, not from the HTTP surface.
func (as *AuthService) CreateSuperuser(ctx context.Context, email, password string) (models.User, error) {
	email = normalizeEmail(email)

	req := RegisterRequest{Email: email, Password: password, Name: ""}
	if err := validate.Struct(req); err != nil {
		return models.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("generate from password error: %w", err)
	}

	u := models.User{ //nolint:exhaustruct
		Email:        email,
		PasswordHash: string(hash),
		Active:       true,
		Staff:        true,
		Superuser:    true,
	}

	u, err = as.userRepo.CreateUser(ctx, u)
	if err != nil {
		if errors.Is(err, userrepo.ErrEmailTaken) {
			return models.User{}, validate.FieldErrors{"email": "user with this email already exists"}
		}

		return models.User{}, fmt.Errorf("create superuser error: %w", err)
	}

	return u, nil
}

// Login verifies the credentials and issues a fresh token. The token upsert
// replaces any previous key for the user, so at most one token resolves at
// a time.
func (as *AuthService) Login(ctx context.Context, req LoginRequest) (string, error) {
	if err := validate.Struct(req); err != nil {
		return "", err
	}

	u, err := as.userRepo.GetUserByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, userrepo.ErrNotFound) {
			return "", ErrInvalidCredentials
		}

		return "", fmt.Errorf("get user error: %w", err)
	}

	if !u.Active {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	key, err := newTokenKey()
	if err != nil {
		return "", fmt.Errorf("new token key error: %w", err)
	}

	if err := as.userRepo.ReplaceToken(ctx, models.Token{Key: key, UserID: u.ID}); err != nil { //nolint:exhaustruct
		return "", fmt.Errorf("replace token error: %w", err)
	}

	return key, nil
}

// Authenticate resolves a bearer key to its owning user.
func (as *AuthService) Authenticate(ctx context.Context, key string) (models.User, error) {
	if key == "" {
		return models.User{}, ErrInvalidToken
	}

	u, err := as.userRepo.GetUserByToken(ctx, key)
	if err != nil {
		if errors.Is(err, userrepo.ErrTokenNotFound) {
			return models.User{}, ErrInvalidToken
		}

		return models.User{}, fmt.Errorf("get user by token error: %w", err)
	}

	return u, nil
}

// Update applies a partial name/password change to the user. A new
// password is re-validated and re-hashed; the stored hash never leaves the
// service.
func (as *AuthService) Update(ctx context.Context, u models.User, req UpdateUserRequest) (models.User, error) {
	if req.Name != nil {
		u.Name = *req.Name
	}

	if req.Password != nil {
		if len(*req.Password) < 6 { //nolint:gomnd
			return models.User{}, validate.FieldErrors{"password": "ensure this field has at least 6 characters"}
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return models.User{}, fmt.Errorf("generate from password error: %w", err)
		}

		u.PasswordHash = string(hash)
	}

	u, err := as.userRepo.UpdateUser(ctx, u)
	if err != nil {
		return models.User{}, fmt.Errorf("update user error: %w", err)
	}

	return u, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func newTokenKey() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("rand read error: %w", err)
	}

	return hex.EncodeToString(b), nil
}
