package usecase

import (
	"context"

	"github.com/GoArmGo/AddressBook/internal/domain"
)

// AddressUseCase определяет интерфейс бизнес-логики работы с адресами.
// Update и Delete сознательно НЕ проверяют владельца: так вел себя
// исходный контракт, и это сохранено как есть (см. DESIGN.md).
type AddressUseCase interface {
	// CreateAddress создает адрес от имени аутентифицированного пользователя.
	CreateAddress(ctx context.Context, user *domain.User, x, y float64) (*domain.Address, error)

	// GetAddressesByUser возвращает адреса, принадлежащие пользователю.
	GetAddressesByUser(ctx context.Context, userID uint) ([]domain.Address, error)

	// GetAllAddresses возвращает все адреса без какой-либо фильтрации.
	GetAllAddresses(ctx context.Context) ([]domain.Address, error)

	// GetAddressDetail возвращает адрес по id.
	// Отсутствие -> domain.ErrAddressNotFound.
	GetAddressDetail(ctx context.Context, id uint) (*domain.Address, error)

	// RetrieveAddress ищет адрес по точному совпадению координат.
	// При дубликатах возвращается первая запись.
	RetrieveAddress(ctx context.Context, x, y float64) (*domain.Address, error)

	// UpdateAddress заменяет координаты существующего адреса.
	UpdateAddress(ctx context.Context, id uint, x, y float64) (*domain.Address, error)

	// DeleteAddress безвозвратно удаляет адрес.
	DeleteAddress(ctx context.Context, id uint) error
}
