// Package config loads runtime settings from configs/config.yml and
// WORDBOOK_* environment variables.
package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

const (
	envPrefix = "WORDBOOK"

	// Argon2 lanes are a uint8.
	maxParallelism = 255
)

// Config holds runtime settings for the server and the admin commands.
type Config struct {
	Port     string
	LogLevel string
	DB       DBConfig
	Session  SessionConfig
	Hashing  HashingConfig
}

// DBConfig points at the embedded SQLite store.
type DBConfig struct {
	Path         string
	MaxOpenConns int
}

// SessionConfig controls how the session cookie is emitted.
type SessionConfig struct {
	CookieName     string
	CookieSecure   bool
	CookieSameSite string // "", "lax", "strict" or "none"
}

// HashingConfig tunes Argon2id cost and the size of the hash worker pool.
type HashingConfig struct {
	Workers     int
	MemoryKiB   uint32
	Iterations  uint32
	Parallelism uint8
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("db.path", "wordbook.db")
	v.SetDefault("db.max_open_conns", 5)
	v.SetDefault("session.cookie_name", "pss_session")
	v.SetDefault("session.cookie_secure", false)
	v.SetDefault("session.cookie_same_site", "")
	v.SetDefault("hashing.workers", runtime.GOMAXPROCS(0))
	v.SetDefault("hashing.memory_kib", 19456)
	v.SetDefault("hashing.iterations", 2)
	v.SetDefault("hashing.parallelism", 1)
}

// Load reads config.yml from dir (if present), then applies environment
// overrides such as WORDBOOK_DB_PATH. A missing file is not an error.
func Load(dir string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yml")
	if dir != "" {
		v.AddConfigPath(dir)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	parallelism := v.GetInt("hashing.parallelism")
	if parallelism < 1 || parallelism > maxParallelism {
		return nil, fmt.Errorf("hashing.parallelism must be between 1 and %d, got %d", maxParallelism, parallelism)
	}

	cfg := &Config{
		Port:     v.GetString("port"),
		LogLevel: v.GetString("log.level"),
		DB: DBConfig{
			Path:         v.GetString("db.path"),
			MaxOpenConns: v.GetInt("db.max_open_conns"),
		},
		Session: SessionConfig{
			CookieName:     v.GetString("session.cookie_name"),
			CookieSecure:   v.GetBool("session.cookie_secure"),
			CookieSameSite: strings.ToLower(strings.TrimSpace(v.GetString("session.cookie_same_site"))),
		},
		Hashing: HashingConfig{
			Workers:     v.GetInt("hashing.workers"),
			MemoryKiB:   v.GetUint32("hashing.memory_kib"),
			Iterations:  v.GetUint32("hashing.iterations"),
			Parallelism: uint8(parallelism),
		},
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.DB.Path == "" {
		return errors.New("db.path must not be empty")
	}
	if c.Session.CookieName == "" {
		return errors.New("session.cookie_name must not be empty")
	}
	switch c.Session.CookieSameSite {
	case "", "lax", "strict", "none":
	default:
		return fmt.Errorf("session.cookie_same_site: unknown value %q", c.Session.CookieSameSite)
	}
	if c.Hashing.Iterations == 0 || c.Hashing.Parallelism == 0 {
		return errors.New("hashing.iterations and hashing.parallelism must be positive")
	}
	if c.Hashing.MemoryKiB < 8*uint32(c.Hashing.Parallelism) {
		return fmt.Errorf("hashing.memory_kib must be at least %d", 8*uint32(c.Hashing.Parallelism))
	}
	if c.Hashing.Workers <= 0 {
		c.Hashing.Workers = runtime.GOMAXPROCS(0)
	}
	if c.DB.MaxOpenConns <= 0 {
		c.DB.MaxOpenConns = 1
	}
	return nil
}
