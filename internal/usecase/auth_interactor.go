package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"

	"github.com/GoArmGo/AddressBook/internal/core/ports"
	"github.com/GoArmGo/AddressBook/internal/domain"
)

// authInteractor реализует AuthUseCase поверх хранилища пользователей,
// хешера паролей и кодека токенов.
type authInteractor struct {
	users  ports.UserStorage
	hasher PasswordHasher
	codec  TokenCodec
	logger *slog.Logger
}

// NewAuthUseCase создает новый экземпляр AuthUseCase.
func NewAuthUseCase(
	users ports.UserStorage,
	hasher PasswordHasher,
	codec TokenCodec,
	logger *slog.Logger,
) AuthUseCase {
	return &authInteractor{
		users:  users,
		hasher: hasher,
		codec:  codec,
		logger: logger,
	}
}

// Register регистрирует пользователя и выдает токен.
// Порядок проверок исторический: сначала занятость email, потом синтаксис.
func (i *authInteractor) Register(ctx context.Context, email, name, phone, password string) (*domain.AuthToken, error) {
	existing, err := i.users.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("lookup user by email: %w", err)
	}
	if existing != nil {
		i.logger.Warn("registration rejected, email already taken", "email", email)
		return nil, domain.ErrDuplicateEmail
	}

	if _, err := mail.ParseAddress(email); err != nil {
		i.logger.Warn("registration rejected, invalid email", "email", email)
		return nil, domain.ErrInvalidEmail
	}

	hash, err := i.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Email:        email,
		Name:         name,
		Phone:        phone,
		PasswordHash: hash,
	}
	if err := i.users.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	i.logger.Info("user registered", "user_id", user.ID, "email", user.Email)
	return i.issueToken(user)
}

// Login проверяет учетные данные и выдает токен.
func (i *authInteractor) Login(ctx context.Context, email, password string) (*domain.AuthToken, error) {
	user, err := i.users.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("lookup user by email: %w", err)
	}
	if user == nil || !i.hasher.Verify(password, user.PasswordHash) {
		// одна и та же ошибка на оба случая
		i.logger.Warn("login rejected", "email", email)
		return nil, domain.ErrInvalidCredentials
	}

	i.logger.Info("user logged in", "user_id", user.ID)
	return i.issueToken(user)
}

// CurrentUser превращает bearer-токен в пользователя.
func (i *authInteractor) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	claims, err := i.codec.Decode(token)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}

	// пользователь перечитывается по id из claims, а не берется из токена
	user, err := i.users.GetUserByID(ctx, claims.UserID)
	if err != nil {
		// бд недоступна или сломана — наружу все равно уходит 401,
		// источник перекрывает все ошибки этого шага одной credentials-ошибкой
		i.logger.Error("failed to refetch user from token", "user_id", claims.UserID, "error", err)
		return nil, domain.ErrUnauthorized
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	return user, nil
}

// UserDetail возвращает пользователя по id для публичного эндпоинта.
func (i *authInteractor) UserDetail(ctx context.Context, id uint) (*domain.User, error) {
	user, err := i.users.GetUserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("lookup user by id: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (i *authInteractor) issueToken(user *domain.User) (*domain.AuthToken, error) {
	token, err := i.codec.Encode(user)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &domain.AuthToken{AccessToken: token, TokenType: "bearer"}, nil
}
