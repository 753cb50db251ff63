package auth

import (
	"fmt"
	"time"

	"github.com/GoArmGo/AddressBook/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims — набор полей идентичности, зашиваемых в токен.
// Поля формируются из персистентного User в момент выдачи; при каждой
// проверке токена пользователь перечитывается из бд по id,
// claims не принимаются на веру.
type Claims struct {
	UserID uint   `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	jwt.RegisteredClaims
}

// TokenCodec кодирует и проверяет bearer-токены.
// Единственный алгоритм — HS256 поверх общего секрета процесса.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenCodec создает кодек. ttl == 0 — токены без exp-claim,
// действительны до смены секрета.
func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	return &TokenCodec{secret: []byte(secret), ttl: ttl}
}

// Encode выдает подписанный токен по данным пользователя.
func (c *TokenCodec) Encode(user *domain.User) (string, error) {
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Phone:  user.Phone,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       uuid.NewString(),
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	if c.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(c.ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("ошибка подписи токена: %w", err)
	}
	return signed, nil
}

// Decode проверяет подпись и возвращает claims.
// Любой дефект — битый формат, не сошедшаяся подпись, чужой алгоритм,
// истекший срок — дает domain.ErrInvalidToken.
func (c *TokenCodec) Decode(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(t *jwt.Token) (interface{}, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !token.Valid {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}
