package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config содержит конфигурацию сервисов и ограничения на входные параметры
type Config struct {
	Port            int           `env:"PORT" envDefault:"8000"`
	MaxPrincipal    float64       `env:"MAX_PRINCIPAL" envDefault:"1e9"`
	MaxContribution float64       `env:"MAX_CONTRIBUTION" envDefault:"1e8"`
	MaxYears        int           `env:"MAX_YEARS" envDefault:"100"`
	MaxRate         float64       `env:"MAX_RATE" envDefault:"200"`
	MaxBalanceCap   float64       `env:"MAX_BALANCE_CAP" envDefault:"1e12"`
	OTELEndpoint    string        `env:"OTEL_ENDPOINT"`
	OTELServiceName string        `env:"OTEL_SERVICE_NAME" envDefault:"firefly"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"INFO"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"text"`
	CORSAllowOrigin string        `env:"CORS_ALLOW_ORIGIN" envDefault:"*"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// LoadConfig загружает конфигурацию из переменных окружения
func LoadConfig() (*Config, error) {
	// Загружаем .env файл, если он существует (игнорируем ошибку)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет согласованность ограничений
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d: must be between 1 and 65535", c.Port)
	}
	if c.MaxPrincipal <= 0 || c.MaxContribution < 0 || c.MaxRate < 0 || c.MaxYears < 1 {
		return fmt.Errorf("invalid input limits: principal=%v contribution=%v rate=%v years=%d",
			c.MaxPrincipal, c.MaxContribution, c.MaxRate, c.MaxYears)
	}
	if c.MaxBalanceCap <= 0 {
		return fmt.Errorf("invalid balance cap %v: must be positive", c.MaxBalanceCap)
	}
	return nil
}

// Addr возвращает адрес HTTP сервера
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// BalanceCap возвращает максимальный баланс для защиты от переполнения
func (c *Config) BalanceCap() float64 {
	return c.MaxBalanceCap
}
