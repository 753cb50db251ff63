package di

import (
	"github.com/GoArmGo/AddressBook/internal/app"
	"github.com/GoArmGo/AddressBook/internal/auth"
	"github.com/GoArmGo/AddressBook/internal/config"
	"github.com/GoArmGo/AddressBook/internal/database/client"
	"github.com/GoArmGo/AddressBook/internal/database/storage"
	"github.com/GoArmGo/AddressBook/internal/handler"
	"github.com/GoArmGo/AddressBook/internal/logger"
	"github.com/GoArmGo/AddressBook/internal/usecase"
)

// BuildApp инициализирует все зависимости и возвращает готовый объект App.
func BuildApp() (*app.App, error) {
	// 1. Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	slogger := logger.NewSlog(logger.SlogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	slogger.Info("logger initialized", "level", cfg.LogLevel, "format", cfg.LogFormat)

	// 2. Инициализация PostgreSQL клиента (с миграциями)
	dbClient, err := client.NewClient(cfg, slogger)
	if err != nil {
		return nil, err
	}

	// 3. Инициализация хранилищ
	userStorage := storage.NewUserStorage(dbClient.DB, slogger)
	addressStorage := storage.NewAddressStorage(dbClient.DB, slogger)

	// 4. Криптопримитивы: хешер паролей и кодек токенов.
	// Секрет подписи — процессная конфигурация, сюда он попадает один раз.
	hasher := auth.NewHasher(0)
	codec := auth.NewTokenCodec(cfg.JWTSecret, cfg.TokenTTL)

	// 5. Инициализация бизнес-логики (usecases)
	authUseCase := usecase.NewAuthUseCase(userStorage, hasher, codec, slogger)
	addressUseCase := usecase.NewAddressUseCase(addressStorage, slogger)

	// 6. HTTP-обработчики
	userHandler := handler.NewUserHandler(authUseCase, slogger)
	addressHandler := handler.NewAddressHandler(addressUseCase, slogger)

	// 7. Сборка итогового приложения
	application := app.NewApp(
		cfg,
		slogger,
		dbClient,
		userHandler,
		addressHandler,
		authUseCase,
	)

	slogger.Info("all dependencies initialized")
	return application, nil
}
