package app

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/GoArmGo/AddressBook/internal/config"
	"github.com/GoArmGo/AddressBook/internal/database/client"
	"github.com/GoArmGo/AddressBook/internal/handler"
	"github.com/GoArmGo/AddressBook/internal/usecase"
)

// App агрегирует зависимости приложения и управляет его жизненным циклом.
type App struct {
	cfg            *config.Config
	logger         *slog.Logger
	dbClient       *client.Client
	userHandler    *handler.UserHandler
	addressHandler *handler.AddressHandler
	authUseCase    usecase.AuthUseCase
}

// NewApp создает приложение из готовых зависимостей (см. di.BuildApp).
func NewApp(
	cfg *config.Config,
	logger *slog.Logger,
	dbClient *client.Client,
	userHandler *handler.UserHandler,
	addressHandler *handler.AddressHandler,
	authUseCase usecase.AuthUseCase,
) *App {
	return &App{
		cfg:            cfg,
		logger:         logger,
		dbClient:       dbClient,
		userHandler:    userHandler,
		addressHandler: addressHandler,
		authUseCase:    authUseCase,
	}
}

// Logger отдает основной логгер приложения.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Run запускает HTTP-сервер и блокируется до сигнала завершения.
func (a *App) Run(ctx context.Context) error {
	// канал для graceful shutdown
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	router := NewRouter(
		a.cfg.RequestTimeout,
		a.userHandler,
		a.addressHandler,
		a.authUseCase,
		a.logger,
	)

	err := runServer(ctx, fmt.Sprintf(":%s", a.cfg.ServerPort), router, a.logger)

	// аккуратно закрываем ресурсы независимо от исхода сервера
	if closeErr := a.Shutdown(); closeErr != nil {
		a.logger.Error("shutdown error", "error", closeErr)
	}

	return err
}

// Shutdown закрывает все ресурсы приложения
func (a *App) Shutdown() error {
	if a.dbClient != nil {
		if err := a.dbClient.Close(); err != nil {
			return fmt.Errorf("ошибка закрытия БД: %w", err)
		}
	}
	return nil
}
