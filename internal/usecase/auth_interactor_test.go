package usecase

import (
	"context"
	"testing"

	"github.com/GoArmGo/AddressBook/internal/auth"
	"github.com/GoArmGo/AddressBook/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthUseCase(users *fakeUserStorage) AuthUseCase {
	return NewAuthUseCase(
		users,
		auth.NewHasher(bcrypt.MinCost),
		auth.NewTokenCodec("unit-test-secret", 0),
		testLogger(),
	)
}

func TestRegisterIssuesBearerToken(t *testing.T) {
	uc := newTestAuthUseCase(newFakeUserStorage())

	token, err := uc.Register(context.Background(), "a@x.com", "A", "555", "pw1")
	require.NoError(t, err)
	assert.NotEmpty(t, token.AccessToken)
	assert.Equal(t, "bearer", token.TokenType)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	uc := newTestAuthUseCase(newFakeUserStorage())

	_, err := uc.Register(context.Background(), "a@x.com", "A", "555", "pw1")
	require.NoError(t, err)

	// повтор с теми же прочими полями
	_, err = uc.Register(context.Background(), "a@x.com", "A", "555", "pw1")
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)

	// повтор с другими прочими полями — все равно дубликат
	_, err = uc.Register(context.Background(), "a@x.com", "B", "777", "pw2")
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestRegisterInvalidEmail(t *testing.T) {
	users := newFakeUserStorage()
	uc := newTestAuthUseCase(users)

	_, err := uc.Register(context.Background(), "not-an-email", "A", "555", "pw1")
	assert.ErrorIs(t, err, domain.ErrInvalidEmail)
	// до записи в хранилище дело не дошло
	assert.Empty(t, users.users)
}

func TestRegisterStoresHashNotPlaintext(t *testing.T) {
	users := newFakeUserStorage()
	uc := newTestAuthUseCase(users)

	_, err := uc.Register(context.Background(), "a@x.com", "A", "555", "pw1")
	require.NoError(t, err)

	stored, err := users.GetUserByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "pw1", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pw1")))
}

func TestLoginSuccess(t *testing.T) {
	uc := newTestAuthUseCase(newFakeUserStorage())

	_, err := uc.Register(context.Background(), "a@x.com", "A", "555", "pw1")
	require.NoError(t, err)

	token, err := uc.Login(context.Background(), "a@x.com", "pw1")
	require.NoError(t, err)
	assert.NotEmpty(t, token.AccessToken)
	assert.Equal(t, "bearer", token.TokenType)
}

func TestLoginDoesNotLeakWhichCredentialFailed(t *testing.T) {
	uc := newTestAuthUseCase(newFakeUserStorage())

	_, err := uc.Register(context.Background(), "a@x.com", "A", "555", "pw1")
	require.NoError(t, err)

	_, wrongPassword := uc.Login(context.Background(), "a@x.com", "wrong")
	_, unknownEmail := uc.Login(context.Background(), "nobody@x.com", "pw1")

	assert.ErrorIs(t, wrongPassword, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, domain.ErrInvalidCredentials)
	// одна и та же ошибка в обоих случаях
	assert.Equal(t, wrongPassword, unknownEmail)
}

func TestCurrentUserRefetchesFromStorage(t *testing.T) {
	users := newFakeUserStorage()
	uc := newTestAuthUseCase(users)

	token, err := uc.Register(context.Background(), "a@x.com", "A", "555", "pw1")
	require.NoError(t, err)

	user, err := uc.CurrentUser(context.Background(), token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email)
	assert.Equal(t, "A", user.Name)
	assert.NotZero(t, user.ID)
}

func TestCurrentUserRejectsBadToken(t *testing.T) {
	uc := newTestAuthUseCase(newFakeUserStorage())

	_, err := uc.CurrentUser(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestCurrentUserRejectsVanishedUser(t *testing.T) {
	users := newFakeUserStorage()
	uc := newTestAuthUseCase(users)

	token, err := uc.Register(context.Background(), "a@x.com", "A", "555", "pw1")
	require.NoError(t, err)

	// пользователь исчез из бд, токен формально валиден
	users.users = map[uint]*domain.User{}

	_, err = uc.CurrentUser(context.Background(), token.AccessToken)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestCurrentUserFailsClosedOnStorageError(t *testing.T) {
	users := newFakeUserStorage()
	uc := newTestAuthUseCase(users)

	token, err := uc.Register(context.Background(), "a@x.com", "A", "555", "pw1")
	require.NoError(t, err)

	users.failWith = assert.AnError

	_, err = uc.CurrentUser(context.Background(), token.AccessToken)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestUserDetail(t *testing.T) {
	users := newFakeUserStorage()
	uc := newTestAuthUseCase(users)

	_, err := uc.Register(context.Background(), "a@x.com", "A", "555", "pw1")
	require.NoError(t, err)

	user, err := uc.UserDetail(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", user.Email)

	_, err = uc.UserDetail(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
