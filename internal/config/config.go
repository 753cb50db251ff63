package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config хранит все конфигурационные параметры приложения.
type Config struct {
	DatabaseURL string `env:"DATABASE_URL,required"`
	ServerPort  string `env:"SERVER_PORT"`

	// Секрет для подписи JWT. Загружается один раз при старте
	// и явно передается в кодек токенов, никаких глобалов.
	JWTSecret string `env:"JWT_SECRET,required"`

	// Время жизни токена. Ноль (не задано) — токен бессрочный,
	// как в исходном контракте; значение вида "24h" включает exp-claim.
	TokenTTL time.Duration `env:"TOKEN_TTL"`

	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	LogLevel  string `env:"LOG_LEVEL"`  // "debug", "info", "warn", "error"
	LogFormat string `env:"LOG_FORMAT"` // "json" или "text"
}

// LoadConfig загружает конфигурацию из переменных окружения.
// В режиме разработки пытается загрузить .env файл.
func LoadConfig() (*Config, error) {
	if _, err := os.Stat(".env"); !os.IsNotExist(err) {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("ошибка загрузки .env файла: %w", err)
		}
	}

	cfg := Config{}
	// env.Parse обрабатывает "required" и парсит типы (duration и т.п.)
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("ошибка парсинга конфигурации из окружения: %w", err)
	}

	// Вручную устанавливаем значения по умолчанию для тех полей, где они нужны
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 60 * time.Second
	}

	// TokenTTL по умолчанию остается нулевым: бессрочные токены —
	// осознанное (пусть и слабое) упрощение исходного дизайна.

	return &cfg, nil
}
