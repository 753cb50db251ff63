package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/GoArmGo/AddressBook/internal/core/ports"
	"github.com/GoArmGo/AddressBook/internal/domain"
)

// addressInteractor реализует AddressUseCase поверх хранилища адресов.
type addressInteractor struct {
	addresses ports.AddressStorage
	logger    *slog.Logger
}

// NewAddressUseCase создает новый экземпляр AddressUseCase.
func NewAddressUseCase(addresses ports.AddressStorage, logger *slog.Logger) AddressUseCase {
	return &addressInteractor{addresses: addresses, logger: logger}
}

// CreateAddress создает адрес, владелец — переданный пользователь.
func (i *addressInteractor) CreateAddress(ctx context.Context, user *domain.User, x, y float64) (*domain.Address, error) {
	address := &domain.Address{
		UserID: user.ID,
		X:      x,
		Y:      y,
	}
	if err := i.addresses.SaveAddress(ctx, address); err != nil {
		return nil, fmt.Errorf("create address: %w", err)
	}
	return address, nil
}

// GetAddressesByUser возвращает адреса пользователя.
func (i *addressInteractor) GetAddressesByUser(ctx context.Context, userID uint) ([]domain.Address, error) {
	addresses, err := i.addresses.ListAddressesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list addresses by user: %w", err)
	}
	return addresses, nil
}

// GetAllAddresses возвращает все адреса. Эндпоинт исторически без аутентификации.
func (i *addressInteractor) GetAllAddresses(ctx context.Context) ([]domain.Address, error) {
	addresses, err := i.addresses.ListAllAddresses(ctx)
	if err != nil {
		return nil, fmt.Errorf("list all addresses: %w", err)
	}
	return addresses, nil
}

// GetAddressDetail возвращает адрес по id.
func (i *addressInteractor) GetAddressDetail(ctx context.Context, id uint) (*domain.Address, error) {
	address, err := i.addresses.GetAddressByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get address by id: %w", err)
	}
	if address == nil {
		return nil, domain.ErrAddressNotFound
	}
	return address, nil
}

// RetrieveAddress ищет адрес по координатам.
func (i *addressInteractor) RetrieveAddress(ctx context.Context, x, y float64) (*domain.Address, error) {
	address, err := i.addresses.GetAddressByCoordinates(ctx, x, y)
	if err != nil {
		return nil, fmt.Errorf("get address by coordinates: %w", err)
	}
	if address == nil {
		return nil, domain.ErrAddressNotFound
	}
	return address, nil
}

// UpdateAddress заменяет координаты. Владелец не проверяется — паритет
// с исходным поведением.
func (i *addressInteractor) UpdateAddress(ctx context.Context, id uint, x, y float64) (*domain.Address, error) {
	address, err := i.GetAddressDetail(ctx, id)
	if err != nil {
		return nil, err
	}

	address.X = x
	address.Y = y
	if err := i.addresses.UpdateAddress(ctx, address); err != nil {
		return nil, fmt.Errorf("update address: %w", err)
	}

	i.logger.Info("address updated", "address_id", address.ID)
	return address, nil
}

// DeleteAddress удаляет адрес; отсутствие дает ErrAddressNotFound,
// сам запрос удаления идет только по существующей записи.
func (i *addressInteractor) DeleteAddress(ctx context.Context, id uint) error {
	address, err := i.GetAddressDetail(ctx, id)
	if err != nil {
		return err
	}

	if err := i.addresses.DeleteAddress(ctx, address.ID); err != nil {
		return fmt.Errorf("delete address: %w", err)
	}
	return nil
}
