package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Delete-on-check specifics
	Vault      VaultConfig
	Watcher    WatcherConfig
	Dispatcher DispatcherConfig
	Sweep      SweepConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	PerMin int
}

type VaultConfig struct {
	Root      string
	Extension string
}

type WatcherConfig struct {
	Debounce time.Duration
}

type DispatcherConfig struct {
	// Delay before the deferred re-check of an edited buffer.
	Delay time.Duration
}

type SweepConfig struct {
	OnStart bool
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/delete-on-check/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/delete-on-check/")

	return load(v)
}

// LoadFile loads configuration from an explicit file path.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.RateLimit.PerMin = v.GetInt("rate_limit.per_min")

	// Vault
	cfg.Vault.Root = v.GetString("vault.root")
	cfg.Vault.Extension = v.GetString("vault.extension")

	var err error
	if cfg.Watcher.Debounce, err = duration(v, "watcher.debounce"); err != nil {
		return nil, err
	}
	if cfg.Dispatcher.Delay, err = duration(v, "dispatcher.delay"); err != nil {
		return nil, err
	}
	cfg.Sweep.OnStart = v.GetBool("sweep.on_start")

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("rate_limit.per_min", 300)

	v.SetDefault("vault.root", ".")
	v.SetDefault("vault.extension", ".md")
	v.SetDefault("watcher.debounce", "20ms")
	v.SetDefault("dispatcher.delay", "50ms")
	v.SetDefault("sweep.on_start", false)
}

// duration accepts "50ms" style strings as well as plain integers in milliseconds.
func duration(v *viper.Viper, key string) (time.Duration, error) {
	raw := strings.TrimSpace(v.GetString(key))
	if raw == "" {
		return 0, nil
	}
	if n := v.GetInt(key); n > 0 && fmt.Sprint(n) == raw {
		return time.Duration(n) * time.Millisecond, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("config: invalid %s %q: %w", key, raw, err)
	}
	return d, nil
}

func validate(cfg *Config) error {
	if strings.TrimSpace(cfg.Vault.Root) == "" {
		return fmt.Errorf("config: vault.root is required")
	}
	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		return fmt.Errorf("config: invalid http_server.port %d", cfg.HTTPServer.Port)
	}
	if cfg.Watcher.Debounce < 0 {
		return fmt.Errorf("config: watcher.debounce must not be negative")
	}
	if cfg.Dispatcher.Delay < 0 {
		return fmt.Errorf("config: dispatcher.delay must not be negative")
	}
	if cfg.RateLimit.PerMin < 0 {
		return fmt.Errorf("config: rate_limit.per_min must not be negative")
	}
	return nil
}
