package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sort"

	"github.com/GoArmGo/AddressBook/internal/domain"
)

// In-memory реализации портов хранилищ для тестов бизнес-логики.

type fakeUserStorage struct {
	users  map[uint]*domain.User
	nextID uint
	// failWith подменяет все операции указанной ошибкой (имитация падения бд)
	failWith error
}

func newFakeUserStorage() *fakeUserStorage {
	return &fakeUserStorage{users: map[uint]*domain.User{}, nextID: 1}
}

func (f *fakeUserStorage) CreateUser(_ context.Context, user *domain.User) error {
	if f.failWith != nil {
		return f.failWith
	}
	user.ID = f.nextID
	f.nextID++
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserStorage) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, u := range f.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStorage) GetUserByID(_ context.Context, id uint) (*domain.User, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	clone := *u
	return &clone, nil
}

type fakeAddressStorage struct {
	addresses map[uint]*domain.Address
	nextID    uint
}

func newFakeAddressStorage() *fakeAddressStorage {
	return &fakeAddressStorage{addresses: map[uint]*domain.Address{}, nextID: 1}
}

func (f *fakeAddressStorage) SaveAddress(_ context.Context, address *domain.Address) error {
	address.ID = f.nextID
	f.nextID++
	clone := *address
	f.addresses[address.ID] = &clone
	return nil
}

func (f *fakeAddressStorage) sorted() []domain.Address {
	ids := make([]int, 0, len(f.addresses))
	for id := range f.addresses {
		ids = append(ids, int(id))
	}
	sort.Ints(ids)
	out := make([]domain.Address, 0, len(ids))
	for _, id := range ids {
		out = append(out, *f.addresses[uint(id)])
	}
	return out
}

func (f *fakeAddressStorage) ListAddressesByUser(_ context.Context, userID uint) ([]domain.Address, error) {
	var out []domain.Address
	for _, a := range f.sorted() {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAddressStorage) ListAllAddresses(_ context.Context) ([]domain.Address, error) {
	return f.sorted(), nil
}

func (f *fakeAddressStorage) GetAddressByID(_ context.Context, id uint) (*domain.Address, error) {
	a, ok := f.addresses[id]
	if !ok {
		return nil, nil
	}
	clone := *a
	return &clone, nil
}

func (f *fakeAddressStorage) GetAddressByCoordinates(_ context.Context, x, y float64) (*domain.Address, error) {
	for _, a := range f.sorted() {
		if a.X == x && a.Y == y {
			clone := a
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeAddressStorage) UpdateAddress(_ context.Context, address *domain.Address) error {
	stored, ok := f.addresses[address.ID]
	if !ok {
		return errors.New("no such address")
	}
	stored.X = address.X
	stored.Y = address.Y
	return nil
}

func (f *fakeAddressStorage) DeleteAddress(_ context.Context, id uint) error {
	delete(f.addresses, id)
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
