package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher — односторонний хешер паролей на bcrypt.
// Соль генерируется случайно на каждый вызов, поэтому один и тот же
// пароль дает разный хеш при каждом хешировании.
type Hasher struct {
	cost int
}

// NewHasher создает хешер с указанной стоимостью bcrypt.
// cost <= 0 означает bcrypt.DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash возвращает соленый bcrypt-хеш пароля.
func (h *Hasher) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("ошибка хеширования пароля: %w", err)
	}
	return string(hashed), nil
}

// Verify сверяет пароль с сохраненным хешем.
// Испорченный или чужой по формату хеш дает false, а не ошибку:
// проверка всегда «закрывается» при любой неоднозначности.
func (h *Hasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
