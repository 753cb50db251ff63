package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/AddressBook/internal/domain"
	"gorm.io/gorm"
)

// AddressStorage реализует интерфейс ports.AddressStorage с использованием GORM
type AddressStorage struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewAddressStorage создает новый экземпляр AddressStorage
func NewAddressStorage(db *gorm.DB, logger *slog.Logger) *AddressStorage {
	return &AddressStorage{db: db, logger: logger}
}

// SaveAddress сохраняет новый адрес; id присваивает бд.
func (s *AddressStorage) SaveAddress(ctx context.Context, address *domain.Address) error {
	start := time.Now()

	if address.CreatedAt.IsZero() {
		address.CreatedAt = time.Now().UTC()
	}

	result := s.db.WithContext(ctx).Create(address)
	if result.Error != nil {
		s.logger.Error("failed to insert address", "user_id", address.UserID, "error", result.Error)
		return fmt.Errorf("insert address: %w", result.Error)
	}

	s.logger.Info("address created successfully",
		"address_id", address.ID,
		"user_id", address.UserID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// ListAddressesByUser возвращает все адреса пользователя в порядке вставки.
func (s *AddressStorage) ListAddressesByUser(ctx context.Context, userID uint) ([]domain.Address, error) {
	var addresses []domain.Address
	result := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&addresses)
	if result.Error != nil {
		return nil, fmt.Errorf("select addresses by user: %w", result.Error)
	}
	return addresses, nil
}

// ListAllAddresses возвращает все адреса без фильтрации по владельцу.
func (s *AddressStorage) ListAllAddresses(ctx context.Context) ([]domain.Address, error) {
	var addresses []domain.Address
	result := s.db.WithContext(ctx).Order("id").Find(&addresses)
	if result.Error != nil {
		return nil, fmt.Errorf("select all addresses: %w", result.Error)
	}
	return addresses, nil
}

// GetAddressByID ищет адрес по id. Возвращает (nil, nil), если адрес не найден.
func (s *AddressStorage) GetAddressByID(ctx context.Context, id uint) (*domain.Address, error) {
	var address domain.Address
	result := s.db.WithContext(ctx).First(&address, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("select address by id: %w", result.Error)
	}
	return &address, nil
}

// GetAddressByCoordinates ищет первый адрес с точным совпадением координат.
// Уникальности по координатам нет, возвращается первая запись.
func (s *AddressStorage) GetAddressByCoordinates(ctx context.Context, x, y float64) (*domain.Address, error) {
	var address domain.Address
	result := s.db.WithContext(ctx).
		Where("x = ? AND y = ?", x, y).
		Order("id").
		First(&address)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("select address by coordinates: %w", result.Error)
	}
	return &address, nil
}

// UpdateAddress сохраняет измененные координаты существующего адреса.
func (s *AddressStorage) UpdateAddress(ctx context.Context, address *domain.Address) error {
	result := s.db.WithContext(ctx).Model(address).Updates(map[string]interface{}{
		"x": address.X,
		"y": address.Y,
	})
	if result.Error != nil {
		s.logger.Error("failed to update address", "address_id", address.ID, "error", result.Error)
		return fmt.Errorf("update address: %w", result.Error)
	}
	return nil
}

// DeleteAddress удаляет адрес по id.
func (s *AddressStorage) DeleteAddress(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&domain.Address{}, "id = ?", id)
	if result.Error != nil {
		s.logger.Error("failed to delete address", "address_id", id, "error", result.Error)
		return fmt.Errorf("delete address: %w", result.Error)
	}
	s.logger.Info("address deleted", "address_id", id)
	return nil
}
