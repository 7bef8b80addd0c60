package authservice_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ikaro-souza/recipe-app-api/internal/pkg/validate"
	"github.com/ikaro-souza/recipe-app-api/internal/recipes/domain/models"
	"github.com/ikaro-souza/recipe-app-api/internal/recipes/repository/userrepo"
	"github.com/ikaro-souza/recipe-app-api/internal/recipes/services/authservice"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	users  map[string]models.User
	tokens map[int]string
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:  make(map[string]models.User),
		tokens: make(map[int]string),
		nextID: 1,
	}
}

func (f *fakeUserRepo) CreateUser(_ context.Context, u models.User) (models.User, error) {
	if _, ok := f.users[u.Email]; ok {
		return models.User{}, userrepo.ErrEmailTaken
	}

	u.ID = f.nextID
	f.nextID++
	f.users[u.Email] = u

	return u, nil
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (models.User, error) {
	u, ok := f.users[email]
	if !ok {
		return models.User{}, userrepo.ErrNotFound
	}

	return u, nil
}

func (f *fakeUserRepo) UpdateUser(_ context.Context, u models.User) (models.User, error) {
	for email, stored := range f.users {
		if stored.ID == u.ID {
			delete(f.users, email)
			f.users[u.Email] = u

			return u, nil
		}
	}

	return models.User{}, userrepo.ErrNotFound
}

func (f *fakeUserRepo) ReplaceToken(_ context.Context, token models.Token) error {
	f.tokens[token.UserID] = token.Key

	return nil
}

func (f *fakeUserRepo) GetUserByToken(_ context.Context, key string) (models.User, error) {
	for userID, stored := range f.tokens {
		if stored != key {
			continue
		}

		for _, u := range f.users {
			if u.ID == userID {
				return u, nil
			}
		}
	}

	return models.User{}, userrepo.ErrTokenNotFound
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	as := authservice.New(repo)

	u, err := as.Register(ctx, authservice.RegisterRequest{
		Email:    "Test@DOMain.CoM",
		Password: "testPass123",
		Name:     "Big Docker Guy",
	})
	require.NoError(t, err)

	require.Equal(t, "test@domain.com", u.Email)
	require.Equal(t, "Big Docker Guy", u.Name)
	require.True(t, u.Active)
	require.False(t, u.Staff)
	require.False(t, u.Superuser)

	require.NotEqual(t, "testPass123", u.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("testPass123")))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	as := authservice.New(repo)

	_, err := as.Register(ctx, authservice.RegisterRequest{Email: "test@user.com", Password: "testUser123"})
	require.NoError(t, err)

	_, err = as.Register(ctx, authservice.RegisterRequest{Email: "TEST@USER.com", Password: "testUser123"})

	var fe validate.FieldErrors

	require.ErrorAs(t, err, &fe)
	require.Contains(t, fe, "email")
	require.Len(t, repo.users, 1)
}

func TestRegisterInvalidPayload(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		req   authservice.RegisterRequest
		field string
	}{
		{"short password", authservice.RegisterRequest{Email: "test@user.com", Password: "123"}, "password"},
		{"empty password", authservice.RegisterRequest{Email: "test@user.com", Password: ""}, "password"},
		{"empty email", authservice.RegisterRequest{Email: "", Password: "testUser123"}, "email"},
		{"malformed email", authservice.RegisterRequest{Email: "not-an-email", Password: "testUser123"}, "email"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := newFakeUserRepo()
			as := authservice.New(repo)

			_, err := as.Register(ctx, tc.req)

			var fe validate.FieldErrors

			require.ErrorAs(t, err, &fe)
			require.Contains(t, fe, tc.field)
			require.Empty(t, repo.users, "no user row may exist after a failed signup")
		})
	}
}

func TestCreateSuperuser(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	as := authservice.New(repo)

	u, err := as.CreateSuperuser(ctx, "admin@test.com", "testPass123")
	require.NoError(t, err)

	require.True(t, u.Staff)
	require.True(t, u.Superuser)
	require.True(t, u.Active)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	as := authservice.New(repo)

	_, err := as.Register(ctx, authservice.RegisterRequest{Email: "test@user.com", Password: "testUser123"})
	require.NoError(t, err)

	key, err := as.Login(ctx, authservice.LoginRequest{Email: "test@user.com", Password: "testUser123"})
	require.NoError(t, err)
	require.NotEmpty(t, key)

	u, err := as.Authenticate(ctx, key)
	require.NoError(t, err)
	require.Equal(t, "test@user.com", u.Email)
}

func TestLoginReplacesToken(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	as := authservice.New(repo)

	_, err := as.Register(ctx, authservice.RegisterRequest{Email: "test@user.com", Password: "testUser123"})
	require.NoError(t, err)

	first, err := as.Login(ctx, authservice.LoginRequest{Email: "test@user.com", Password: "testUser123"})
	require.NoError(t, err)

	second, err := as.Login(ctx, authservice.LoginRequest{Email: "test@user.com", Password: "testUser123"})
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	_, err = as.Authenticate(ctx, first)
	require.ErrorIs(t, err, authservice.ErrInvalidToken)

	_, err = as.Authenticate(ctx, second)
	require.NoError(t, err)
}

func TestLoginInvalidCredentials(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	as := authservice.New(repo)

	_, err := as.Register(ctx, authservice.RegisterRequest{Email: "test@user.com", Password: "testUser123"})
	require.NoError(t, err)

	_, err = as.Login(ctx, authservice.LoginRequest{Email: "test@user.com", Password: "wrong"})
	require.ErrorIs(t, err, authservice.ErrInvalidCredentials)

	_, err = as.Login(ctx, authservice.LoginRequest{Email: "nobody@user.com", Password: "testUser123"})
	require.ErrorIs(t, err, authservice.ErrInvalidCredentials)
}

func TestLoginInactiveUser(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	as := authservice.New(repo)

	hash, err := bcrypt.GenerateFromPassword([]byte("testUser123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	repo.users["gone@user.com"] = models.User{ //nolint:exhaustruct
		ID:           1,
		Email:        "gone@user.com",
		PasswordHash: string(hash),
		Active:       false,
	}

	_, err = as.Login(ctx, authservice.LoginRequest{Email: "gone@user.com", Password: "testUser123"})
	require.ErrorIs(t, err, authservice.ErrInvalidCredentials)
}

func TestAuthenticateUnknownToken(t *testing.T) {
	ctx := context.Background()
	as := authservice.New(newFakeUserRepo())

	_, err := as.Authenticate(ctx, "deadbeef")
	require.ErrorIs(t, err, authservice.ErrInvalidToken)

	_, err = as.Authenticate(ctx, "")
	require.ErrorIs(t, err, authservice.ErrInvalidToken)
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	as := authservice.New(repo)

	u, err := as.Register(ctx, authservice.RegisterRequest{Email: "test@user.com", Password: "testUser123"})
	require.NoError(t, err)

	name := "X"
	password := "newpass1"

	updated, err := as.Update(ctx, u, authservice.UpdateUserRequest{Name: &name, Password: &password})
	require.NoError(t, err)
	require.Equal(t, "X", updated.Name)

	_, err = as.Login(ctx, authservice.LoginRequest{Email: "test@user.com", Password: "newpass1"})
	require.NoError(t, err)

	_, err = as.Login(ctx, authservice.LoginRequest{Email: "test@user.com", Password: "testUser123"})
	require.ErrorIs(t, err, authservice.ErrInvalidCredentials)
}

func TestUpdateShortPassword(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	as := authservice.New(repo)

	u, err := as.Register(ctx, authservice.RegisterRequest{Email: "test@user.com", Password: "testUser123"})
	require.NoError(t, err)

	password := "123"

	_, err = as.Update(ctx, u, authservice.UpdateUserRequest{Name: nil, Password: &password})

	var fe validate.FieldErrors

	require.True(t, errors.As(err, &fe))
	require.Contains(t, fe, "password")
}
