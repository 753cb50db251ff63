package ports

import (
	"context"

	"github.com/GoArmGo/AddressBook/internal/domain"
)

// UserStorage определяет методы для взаимодействия с хранилищем пользователей.
// Методы Get* возвращают (nil, nil), если запись не найдена.
type UserStorage interface {
	// CreateUser сохраняет нового пользователя; id присваивает хранилище.
	CreateUser(ctx context.Context, user *domain.User) error

	// GetUserByEmail ищет пользователя по точному (с учетом регистра) email.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// GetUserByID ищет пользователя по внутреннему id.
	GetUserByID(ctx context.Context, id uint) (*domain.User, error)
}

// AddressStorage определяет методы для взаимодействия с хранилищем адресов.
// Методы Get* возвращают (nil, nil), если запись не найдена.
type AddressStorage interface {
	// SaveAddress сохраняет новый адрес; id присваивает хранилище.
	SaveAddress(ctx context.Context, address *domain.Address) error

	// ListAddressesByUser возвращает адреса, принадлежащие пользователю,
	// в порядке вставки.
	ListAddressesByUser(ctx context.Context, userID uint) ([]domain.Address, error)

	// ListAllAddresses возвращает все адреса без фильтрации по владельцу.
	ListAllAddresses(ctx context.Context) ([]domain.Address, error)

	// GetAddressByID ищет адрес по id.
	GetAddressByID(ctx context.Context, id uint) (*domain.Address, error)

	// GetAddressByCoordinates ищет первый адрес с точным совпадением координат.
	// Уникальность координат не гарантируется — возвращается первая запись.
	GetAddressByCoordinates(ctx context.Context, x, y float64) (*domain.Address, error)

	// UpdateAddress сохраняет измененные координаты существующего адреса.
	UpdateAddress(ctx context.Context, address *domain.Address) error

	// DeleteAddress удаляет адрес по id. Пользователя не затрагивает.
	DeleteAddress(ctx context.Context, id uint) error
}
