package users_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urbanfood/usersvc/pkg/repository/inmemory"
	"github.com/urbanfood/usersvc/pkg/users"
)

type staticTokens struct{}

func (staticTokens) Generate(_ context.Context, _ users.User) (string, error) {
	return "token-abc", nil
}

func newTestService(t *testing.T) (users.UseCase, *inmemory.UserRepository) {
	t.Helper()
	repo := inmemory.NewUserRepository()
	svc, err := users.NewService(repo, users.NewBcryptHasher(), staticTokens{})
	require.NoError(t, err)
	return svc, repo
}

func TestRegister_AssignsIDAndHashesPassword(t *testing.T) {
	t.Parallel()
	svc, repo := newTestService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, users.RegisterInput{
		FirstName: "Teste",
		LastName:  "Usuario",
		Email:     "teste@example.com",
		Password:  "senha123",
	})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "senha123", user.PasswordHash)

	stored, err := repo.GetByEmail(ctx, "teste@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, stored.ID)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, users.RegisterInput{Email: "a@x.com", Password: "pw1"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, users.RegisterInput{Email: "a@x.com", Password: "pw2"})
	require.ErrorIs(t, err, users.ErrEmailTaken)

	// A different email still goes through.
	_, err = svc.Register(ctx, users.RegisterInput{Email: "b@x.com", Password: "pw3"})
	require.NoError(t, err)
}

func TestRegister_RejectsEmptyFields(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, users.RegisterInput{Email: "", Password: "pw"})
	require.Error(t, err)
	_, err = svc.Register(ctx, users.RegisterInput{Email: "a@x.com", Password: ""})
	require.Error(t, err)
}

func TestLogin(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Register(ctx, users.RegisterInput{Email: "a@x.com", Password: "rightpass"})
	require.NoError(t, err)

	result, err := svc.Login(ctx, "a@x.com", "rightpass")
	require.NoError(t, err)
	assert.Equal(t, created.ID, result.User.ID)
	assert.Equal(t, "token-abc", result.Token)

	_, wrongPass := svc.Login(ctx, "a@x.com", "wrongpass")
	_, noUser := svc.Login(ctx, "nobody@x.com", "anything")

	// Unknown email and wrong password collapse to one signal.
	require.ErrorIs(t, wrongPass, users.ErrInvalidCredentials)
	require.ErrorIs(t, noUser, users.ErrInvalidCredentials)
	assert.Equal(t, wrongPass, noUser)
}

// brokenRepo simulates a storage outage: every call fails with the same error.
type brokenRepo struct{ err error }

func (r brokenRepo) Create(context.Context, *users.User) error { return r.err }
func (r brokenRepo) GetByEmail(context.Context, string) (users.User, error) {
	return users.User{}, r.err
}
func (r brokenRepo) GetByID(context.Context, int64) (users.User, error) {
	return users.User{}, r.err
}
func (r brokenRepo) List(context.Context) ([]users.User, error) { return nil, r.err }

func TestLogin_StorageFailureIsNotACredentialError(t *testing.T) {
	t.Parallel()
	outage := errors.New("connection refused")
	svc, err := users.NewService(brokenRepo{err: outage}, users.NewBcryptHasher(), staticTokens{})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "a@x.com", "anything")
	require.Error(t, err)
	require.NotErrorIs(t, err, users.ErrInvalidCredentials)
	require.ErrorIs(t, err, outage)
}

func TestGetByID_AfterDelete(t *testing.T) {
	t.Parallel()
	svc, repo := newTestService(t)
	ctx := context.Background()

	created, err := svc.Register(ctx, users.RegisterInput{Email: "gone@x.com", Password: "pw"})
	require.NoError(t, err)

	repo.Delete(ctx, created.ID)

	_, err = svc.GetByID(ctx, created.ID)
	require.ErrorIs(t, err, users.ErrNotFound)
}

func TestList_ReturnsAllInInsertionOrder(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	ctx := context.Background()

	for _, email := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		_, err := svc.Register(ctx, users.RegisterInput{Email: email, Password: "pw"})
		require.NoError(t, err)
	}

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "a@x.com", all[0].Email)
	assert.Equal(t, "c@x.com", all[2].Email)
}
