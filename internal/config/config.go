package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// RegistryConfig адрес и ключ внешнего реестра. Пустой ключ отключает реестр.
type RegistryConfig struct {
	URL string `yaml:"url"`
	Key string `yaml:"key"`
}

// Config is named after the binary, flags of cmd/client override it
type Config struct {
	Dadata      RegistryConfig `yaml:"dadata"`
	FNS         RegistryConfig `yaml:"fns"`
	BaseURL     string         `yaml:"base_url" env:"KODRF_BASE_URL" env-default:"https://kodrf.ru"`
	DBPath      string         `yaml:"db_path" env:"KODRF_DB_PATH" env-default:"kodrf-client.db"`
	LogLevel    string         `yaml:"log_level" env:"KODRF_LOG_LEVEL" env-default:"warn"`
	HTTPTimeout time.Duration  `yaml:"http_timeout" env:"KODRF_HTTP_TIMEOUT" env-default:"30s"`
}

// registryEnv переменные реестров: вложенные структуры с разными ключами
// проще описать отдельно, чем через env-prefix
type registryEnv struct {
	DadataURL   string `env:"KODRF_DADATA_URL" env-default:"https://suggestions.dadata.ru/suggestions/api/4_1/rs"`
	DadataToken string `env:"KODRF_DADATA_TOKEN"`
	FNSURL      string `env:"KODRF_FNS_URL" env-default:"https://api-fns.ru/api"`
	FNSKey      string `env:"KODRF_FNS_KEY"`
}

// Load читает конфигурацию: YAML файл (если path не пустой), затем переменные окружения
func Load(path string) (Config, error) {
	var cfg Config
	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to read env variables: %w", err)
	}

	var reg registryEnv
	if err := cleanenv.ReadEnv(&reg); err != nil {
		return Config{}, fmt.Errorf("failed to read registry env variables: %w", err)
	}
	// окружение важнее файла, файл важнее значений по умолчанию
	cfg.Dadata = mergeRegistry(cfg.Dadata, reg.DadataURL, reg.DadataToken, "KODRF_DADATA_URL")
	cfg.FNS = mergeRegistry(cfg.FNS, reg.FNSURL, reg.FNSKey, "KODRF_FNS_URL")

	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func mergeRegistry(file RegistryConfig, url, key, urlEnv string) RegistryConfig {
	if file.URL == "" || envSet(urlEnv) {
		file.URL = url
	}
	if key != "" {
		file.Key = key
	}
	return file
}

func envSet(name string) bool {
	_, ok := os.LookupEnv(name)
	return ok
}

// ParseLevel разбирает уровень логирования: debug, info, warn, error
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelWarn, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}
