// Package config loads the service configuration. Layers are applied in order,
// later ones winning: defaults, a YAML file, an optional YAML document from
// AWS SSM Parameter Store, then environment variables (a .env file is loaded
// into the environment first).
package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
	"hrmslite.com/hrms/infrastructure/devops"
)

type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Store      StoreConfig      `yaml:"store"`
	Log        LogConfig        `yaml:"log"`
	Auth       AuthConfig       `yaml:"auth"`
	Slack      SlackConfig      `yaml:"slack"`
	Attendance AttendanceConfig `yaml:"attendance"`
}

type ServerConfig struct {
	Port            int           `yaml:"port"`
	Mode            string        `yaml:"mode"`
	CorsOrigins     []string      `yaml:"corsOrigins"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`
}

type StoreConfig struct {
	// Driver is one of mongo, mysql, postgres, sqlite or memory.
	Driver         string        `yaml:"driver"`
	URI            string        `yaml:"uri"`
	Database       string        `yaml:"database"`
	DSN            string        `yaml:"dsn"`
	MaxConnections int           `yaml:"maxConnections"`
	ConnectTimeout time.Duration `yaml:"connectTimeout"`
	LogLevel       string        `yaml:"logLevel"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	// File enables a rotating file sink next to stdout.
	File string `yaml:"file"`
}

type AuthConfig struct {
	// SigningSecret is base64 encoded. Empty disables authentication.
	SigningSecret string `yaml:"signingSecret"`
}

type SlackConfig struct {
	Token        string `yaml:"token"`
	InfoChannel  string `yaml:"infoChannel"`
	ErrorChannel string `yaml:"errorChannel"`
}

type AttendanceConfig struct {
	// Timezone is an IANA name used for calendar days. Empty means the process
	// local zone.
	Timezone string `yaml:"timezone"`
}

var drivers = map[string]bool{
	"mongo":    true,
	"mysql":    true,
	"postgres": true,
	"sqlite":   true,
	"memory":   true,
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            5000,
			Mode:            "release",
			CorsOrigins:     []string{"*"},
			ShutdownTimeout: 10 * time.Second,
		},
		Store: StoreConfig{
			Driver:         "mongo",
			URI:            "mongodb://localhost:27017",
			Database:       "hrms-lite",
			MaxConnections: 10,
			ConnectTimeout: 10 * time.Second,
			LogLevel:       "silent",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load builds the configuration for the server and tools. path may be empty,
// in which case HRMS_CONFIG is consulted.
func Load(ctx context.Context, path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("HRMS_CONFIG")
	}
	if path != "" {
		if err := cfg.ApplyFile(path); err != nil {
			return nil, err
		}
	}

	// .env is optional; existing variables are not overridden
	_ = godotenv.Load()

	if name := os.Getenv("HRMS_CONFIG_SSM_PARAMETER"); name != "" {
		client, err := devops.NewParameterClient(ctx)
		if err != nil {
			return nil, err
		}
		if err := cfg.ApplyParameter(ctx, client, name); err != nil {
			return nil, err
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) ApplyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := c.ApplyYAML(data); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

// ApplyYAML overlays the fields present in data.
func (c *Config) ApplyYAML(data []byte) error {
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("unmarshal yaml: %w", err)
	}
	return nil
}

func (c *Config) ApplyParameter(ctx context.Context, client devops.ParameterGetter, name string) error {
	doc, err := devops.LoadConfigDocument(ctx, client, name)
	if err != nil {
		return err
	}
	return c.ApplyYAML(doc)
}

// ApplyEnv overlays environment variables. lookup is os.LookupEnv outside of
// tests.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	if v, ok := lookup("PORT"); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		c.Server.Port = port
	}
	str("GIN_MODE", &c.Server.Mode)
	if v, ok := lookup("CORS_ORIGINS"); ok && v != "" {
		c.Server.CorsOrigins = splitList(v)
	}

	str("STORE_DRIVER", &c.Store.Driver)
	str("MONGODB_URI", &c.Store.URI)
	str("DATABASE_NAME", &c.Store.Database)
	str("DSN", &c.Store.DSN)

	str("LOG_LEVEL", &c.Log.Level)
	str("LOG_FILE", &c.Log.File)

	str("HRMS_SIGNING_SECRET", &c.Auth.SigningSecret)

	str("SLACK_BOT_TOKEN", &c.Slack.Token)
	str("SLACK_INFO_CHANNEL", &c.Slack.InfoChannel)
	str("SLACK_ERROR_CHANNEL", &c.Slack.ErrorChannel)

	str("ATTENDANCE_TIMEZONE", &c.Attendance.Timezone)
	return nil
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if !drivers[c.Store.Driver] {
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	switch c.Store.Driver {
	case "mongo":
		if c.Store.URI == "" || c.Store.Database == "" {
			return fmt.Errorf("mongo store needs uri and database")
		}
	case "mysql", "postgres", "sqlite":
		if c.Store.DSN == "" {
			return fmt.Errorf("%s store needs a dsn", c.Store.Driver)
		}
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves the attendance time zone.
func (c *Config) Location() (*time.Location, error) {
	if c.Attendance.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Attendance.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid attendance timezone %q: %w", c.Attendance.Timezone, err)
	}
	return loc, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
