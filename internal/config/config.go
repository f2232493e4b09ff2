// Package config loads the process configuration from configs/config.yml,
// environment variables and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPrefix = "PORTFOLIO"

	// MinSecretLen is the shortest signing secret accepted at startup.
	MinSecretLen = 16
)

var (
	ErrMissingSecret = errors.New("jwt secret is not configured (set JWT_SECRET)")
	ErrWeakSecret    = fmt.Errorf("jwt secret must be at least %d bytes", MinSecretLen)
)

// Config is immutable after Load; pass it by value.
type Config struct {
	Port      string
	Debug     bool
	DBPath    string
	JWTSecret string
	TokenTTL  time.Duration
	LogLevel  string
	LogFormat string
	Version   string

	ShutdownTimeout time.Duration
}

// LoadDotEnv loads KEY=VALUE pairs from path into the environment without
// overriding variables that are already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// Load reads config.yml from the given directories (default "configs") and
// overlays environment variables.
func Load(dirs ...string) (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yml")
	if len(dirs) == 0 {
		dirs = []string{"configs"}
	}
	for _, d := range dirs {
		v.AddConfigPath(d)
	}

	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// bare names kept for compatibility with existing deployments
	_ = v.BindEnv("jwt.secret", envPrefix+"_JWT_SECRET", "JWT_SECRET")
	_ = v.BindEnv("db.path", envPrefix+"_DB_PATH", "DB_PATH")
	_ = v.BindEnv("debug", envPrefix+"_DEBUG", "API_DEBUG")
	_ = v.BindEnv("port", envPrefix+"_PORT", "PORT")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{
		Port:            v.GetString("port"),
		Debug:           v.GetBool("debug"),
		DBPath:          v.GetString("db.path"),
		JWTSecret:       v.GetString("jwt.secret"),
		TokenTTL:        v.GetDuration("jwt.ttl"),
		LogLevel:        v.GetString("log.level"),
		LogFormat:       v.GetString("log.format"),
		Version:         v.GetString("version"),
		ShutdownTimeout: v.GetDuration("shutdown_timeout"),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("debug", false)
	v.SetDefault("db.path", "app.db")
	v.SetDefault("jwt.ttl", "168h")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("version", "1.0.0")
	v.SetDefault("shutdown_timeout", "10s")
}

// Validate refuses to start without a real signing secret.
func (c Config) Validate() error {
	switch {
	case c.JWTSecret == "":
		return ErrMissingSecret
	case len(c.JWTSecret) < MinSecretLen:
		return ErrWeakSecret
	case c.TokenTTL <= 0:
		return errors.New("jwt.ttl must be positive")
	}
	return nil
}
