package usecase

import (
	"context"

	"github.com/GoArmGo/AddressBook/internal/auth"
	"github.com/GoArmGo/AddressBook/internal/domain"
)

// PasswordHasher определяет интерфейс одностороннего хеширования паролей.
type PasswordHasher interface {
	// Hash возвращает соленый хеш пароля; соль случайная на каждый вызов.
	Hash(plaintext string) (string, error)

	// Verify сверяет пароль с сохраненным хешем; false при любой неоднозначности.
	Verify(plaintext, hash string) bool
}

// TokenCodec определяет интерфейс кодирования и проверки bearer-токенов.
type TokenCodec interface {
	// Encode выдает подписанный токен по данным пользователя.
	Encode(user *domain.User) (string, error)

	// Decode проверяет подпись и возвращает claims.
	// Любой дефект токена — domain.ErrInvalidToken.
	Decode(token string) (*auth.Claims, error)
}

// AuthUseCase определяет интерфейс бизнес-логики регистрации и входа.
// Это единственная «машина состояний» системы:
// Anonymous -> Registering -> Authenticated и Anonymous -> LoggingIn -> Authenticated.
type AuthUseCase interface {
	// Register регистрирует нового пользователя и сразу выдает токен.
	// Занятый email -> domain.ErrDuplicateEmail (до какой-либо записи в бд),
	// кривой email -> domain.ErrInvalidEmail.
	Register(ctx context.Context, email, name, phone, password string) (*domain.AuthToken, error)

	// Login проверяет пару email/пароль и выдает токен.
	// Неизвестный email и неверный пароль дают ОДНУ И ТУ ЖЕ ошибку
	// domain.ErrInvalidCredentials — наличие учетки не раскрывается.
	Login(ctx context.Context, email, password string) (*domain.AuthToken, error)

	// CurrentUser разбирает токен и перечитывает пользователя из бд по id
	// из claims. Битый токен или исчезнувший пользователь -> domain.ErrUnauthorized.
	CurrentUser(ctx context.Context, token string) (*domain.User, error)

	// UserDetail возвращает публичное представление пользователя по id.
	// Отсутствие -> domain.ErrUserNotFound.
	UserDetail(ctx context.Context, id uint) (*domain.User, error)
}
