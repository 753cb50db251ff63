package domain

import "errors"

// Сентинельные ошибки бизнес-логики. Handler-слой отображает их
// в HTTP-статусы, все остальные ошибки уходят как 500.
var (
	// ErrDuplicateEmail — регистрация с уже занятым email.
	ErrDuplicateEmail = errors.New("email already exist, try with another email")

	// ErrInvalidEmail — email не проходит синтаксическую проверку.
	ErrInvalidEmail = errors.New("email not valid")

	// ErrInvalidCredentials — неверная пара email/пароль.
	// Одна и та же ошибка для "нет такого пользователя" и "не тот пароль",
	// чтобы не раскрывать, какая часть не совпала.
	ErrInvalidCredentials = errors.New("wrong login credentials")

	// ErrUnauthorized — токен не прошел проверку либо пользователь
	// из токена больше не существует.
	ErrUnauthorized = errors.New("wrong user credentials")

	// ErrInvalidToken — токен испорчен, подпись не сходится
	// или алгоритм подписи не тот.
	ErrInvalidToken = errors.New("invalid token")

	// ErrUserNotFound — нет пользователя с таким id.
	ErrUserNotFound = errors.New("user not found")

	// ErrAddressNotFound — нет адреса с таким id или координатами.
	ErrAddressNotFound = errors.New("address not found")
)
