// config предоставляет структуру конфигурации сервиса и функции
// загрузки из файла/переменных окружения с предсказуемым приоритетом.
package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config — корневая конфигурация сервиса.
// Источники значений (по убыванию приоритета):
//  1. явный путь через флаг --config;
//  2. путь в переменной окружения CONFIG_PATH;
//  3. файл local.yaml из рабочей директории;
//  4. переменные окружения (cleanenv).
type Config struct {
	Env      string         `yaml:"env" env:"ENV" env-default:"local"`
	HTTP     HTTPConfig     `yaml:"http"`
	Auth     AuthConfig     `yaml:"auth"`
	Identity IdentityConfig `yaml:"identity"`
	Store    StoreConfig    `yaml:"store"`
	CORS     CORSConfig     `yaml:"cors"`
	Timeouts TimeoutConfig  `yaml:"timeouts"`
	Janitor  JanitorConfig  `yaml:"janitor"`
}

// HTTPConfig — сетевые настройки HTTP-сервера.
type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
}

// Addr возвращает адрес в формате host:port.
func (h HTTPConfig) Addr() string {
	return net.JoinHostPort(h.Host, h.Port)
}

// AuthConfig содержит параметры выпуска и валидации токенов.
//
// JWT_SECRET обязателен: без него процесс не стартует, чтобы сервис
// не подписывал токены секретом-заглушкой (fail-closed).
type AuthConfig struct {
	JWTSecret       string        `yaml:"jwt_secret" env:"JWT_SECRET" env-required:"true"`
	AccessTokenTTL  time.Duration `yaml:"access_token_ttl" env:"ACCESS_TOKEN_TTL" env-default:"1h"`
	RefreshTokenTTL time.Duration `yaml:"refresh_token_ttl" env:"REFRESH_TOKEN_TTL" env-default:"720h"`
	// Leeway — допуск на рассинхронизацию часов при проверке exp.
	Leeway time.Duration `yaml:"leeway" env:"CLOCK_SKEW_LEEWAY" env-default:"0s"`
}

// IdentityConfig — настройки внешнего провайдера идентичности.
// APIKey намеренно НЕ обязателен на старте: его отсутствие делает
// невозможными только login/register (ConfigurationError на вызов),
// остальные эндпоинты продолжают работать.
type IdentityConfig struct {
	APIKey  string        `yaml:"api_key" env:"IDENTITY_API_KEY"`
	BaseURL string        `yaml:"base_url" env:"IDENTITY_BASE_URL"`
	Timeout time.Duration `yaml:"timeout" env:"IDENTITY_TIMEOUT" env-default:"10s"`
}

// StoreConfig — бэкенды хранилищ.
// RedisURL пустой — refresh-токены живут в памяти процесса (референсный режим).
// MongoURL пустой — документное хранилище не сконфигурировано; зависящие от
// него эндпоинты отвечают 501.
type StoreConfig struct {
	RedisURL string `yaml:"redis_url" env:"REDIS_URL"`
	MongoURL string `yaml:"mongo_url" env:"MONGO_URL"`
}

// CORSConfig — разрешённые кросс-доменные источники:
// "*" либо список хостов через запятую.
type CORSConfig struct {
	AllowedOrigins string `yaml:"allowed_origins" env:"CORS_ORIGINS" env-default:"*"`
}

// TimeoutConfig — таймауты сервиса.
type TimeoutConfig struct {
	Service time.Duration `yaml:"service" env:"SERVICE_TIMEOUT" env-default:"15s"`
}

// JanitorConfig — период фоновой очистки просроченных токенов
// и устаревших отметок об отзыве.
type JanitorConfig struct {
	Interval time.Duration `yaml:"interval" env:"JANITOR_INTERVAL" env-default:"30m"`
}

// MustLoad — обёртка над Load с panic при ошибке.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}

	return cfg
}

// Load загружает конфигурацию по приоритету:
// 1) явный путь; 2) CONFIG_PATH; 3) ./local.yaml; 4) ENV.
// После чтения файла ENV-переменные накладываются поверх значений из YAML.
func Load(path string) (*Config, error) {
	var cfg Config

	tryRead := func(p string) (*Config, error) {
		if p == "" {
			return nil, fmt.Errorf("empty config path")
		}

		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file %q stat failed: %w", p, err)
		}

		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}

		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to overlay env: %w", err)
		}

		return &cfg, nil
	}

	if path != "" {
		return tryRead(path)
	}

	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		return tryRead(envPath)
	}

	if _, err := os.Stat("local.yaml"); err == nil {
		return tryRead("local.yaml")
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}

	return &cfg, nil
}
