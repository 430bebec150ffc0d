// Package config loads gradeline settings from a YAML file, a .env file and
// GRADELINE_* environment variables, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const EnvPrefix = "GRADELINE"

// Push events and CI results land on these routes.
const (
	gitEventPath    = "/api/v1/endpoint/git-event"
	teamResultPath  = "/api/v1/endpoint/ci-result"
	ownerResultPath = "/api/v1/endpoint/ci-result/owner"
)

type HTTPConfig struct {
	Addr            string        `mapstructure:"addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

type GiteaConfig struct {
	URL   string `mapstructure:"url"`
	Token string `mapstructure:"token"`
	// Owner is the organisation or user that owns every generated repository.
	Owner string `mapstructure:"owner"`
}

type WoodpeckerConfig struct {
	URL   string `mapstructure:"url"`
	Token string `mapstructure:"token"`
}

type CIConfig struct {
	// HookMatch selects the webhooks removed when a repository is activated.
	HookMatch string `mapstructure:"hook_match"`
	// ClientTimeout bounds every call to the Git host and the CI runner.
	ClientTimeout time.Duration `mapstructure:"client_timeout"`
}

type AuthConfig struct {
	JWTSecret       string `mapstructure:"jwt_secret"`
	PermissionsFile string `mapstructure:"permissions_file"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type Config struct {
	HTTP       HTTPConfig       `mapstructure:"http"`
	Database   DatabaseConfig   `mapstructure:"database"`
	PublicURL  string           `mapstructure:"public_url"`
	Gitea      GiteaConfig      `mapstructure:"gitea"`
	Woodpecker WoodpeckerConfig `mapstructure:"woodpecker"`
	CI         CIConfig         `mapstructure:"ci"`
	Auth       AuthConfig       `mapstructure:"auth"`
	Log        LogConfig        `mapstructure:"log"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.read_timeout", 5*time.Second)
	v.SetDefault("http.write_timeout", 30*time.Second)
	v.SetDefault("http.idle_timeout", 60*time.Second)
	v.SetDefault("http.shutdown_timeout", 10*time.Second)

	v.SetDefault("database.url", "")
	v.SetDefault("public_url", "")

	v.SetDefault("gitea.url", "")
	v.SetDefault("gitea.token", "")
	v.SetDefault("gitea.owner", "")

	v.SetDefault("woodpecker.url", "")
	v.SetDefault("woodpecker.token", "")

	v.SetDefault("ci.hook_match", "woodpecker")
	v.SetDefault("ci.client_timeout", 15*time.Second)

	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.permissions_file", "permissions.json")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}

// Load reads envFile (when present) into the process environment, then the
// optional YAML configFile, then the environment. Every key needs a default
// so that AutomaticEnv can see it during Unmarshal.
func Load(v *viper.Viper, configFile, envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.PublicURL = strings.TrimRight(cfg.PublicURL, "/")

	return &cfg, nil
}

// ValidateDatabase is enough for commands that only touch PostgreSQL.
func (c *Config) ValidateDatabase() error {
	if c.Database.URL == "" {
		return missing("database.url")
	}
	return nil
}

// Validate checks everything the HTTP server needs.
func (c *Config) Validate() error {
	if err := c.ValidateDatabase(); err != nil {
		return err
	}

	required := []struct {
		key   string
		value string
	}{
		{"public_url", c.PublicURL},
		{"gitea.url", c.Gitea.URL},
		{"gitea.token", c.Gitea.Token},
		{"gitea.owner", c.Gitea.Owner},
		{"woodpecker.url", c.Woodpecker.URL},
		{"woodpecker.token", c.Woodpecker.Token},
		{"auth.jwt_secret", c.Auth.JWTSecret},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return missing(r.key)
		}
	}

	if strings.TrimSpace(c.CI.HookMatch) == "" {
		return missing("ci.hook_match")
	}
	if c.CI.ClientTimeout <= 0 {
		return fmt.Errorf("ci.client_timeout must be positive, got %s", c.CI.ClientTimeout)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

func missing(key string) error {
	env := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	return fmt.Errorf("config %s is required (env %s)", key, env)
}

func (c *Config) PushWebhookURL() string   { return c.PublicURL + gitEventPath }
func (c *Config) TeamCallbackURL() string  { return c.PublicURL + teamResultPath }
func (c *Config) OwnerCallbackURL() string { return c.PublicURL + ownerResultPath }

// NewLogger builds the process logger. Format is "json" or "text".
func (c LogConfig) NewLogger() (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.Level)
	if err != nil {
		return nil, err
	}

	logger := logrus.New()
	logger.SetLevel(level)
	switch c.Format {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	case "text", "":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return nil, fmt.Errorf("unknown log format %q", c.Format)
	}
	return logger, nil
}
