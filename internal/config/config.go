package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"
)

const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendPebble   = "pebble"
)

// Config es la configuración del servidor de eventos.
type Config struct {
	// Listen es la dirección HTTP (":8080").
	Listen string `yaml:"listen"`

	Storage Storage `yaml:"storage"`
	Logging Logging `yaml:"logging"`
	CORS    CORS    `yaml:"cors"`
	Export  Export  `yaml:"export"`
}

type Storage struct {
	// Backend: memory (default), postgres o pebble.
	Backend     string `yaml:"backend"`
	PostgresDSN string `yaml:"postgres_dsn"`
	PebbleDir   string `yaml:"pebble_dir"`
}

type Logging struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	App    string `yaml:"app"`
}

type CORS struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// Export programa la escritura periódica de un archivo .ics.
// Sin ICSPath no se exporta nada.
type Export struct {
	ICSPath  string `yaml:"ics_path"`
	Schedule string `yaml:"schedule"`
}

// DefaultConfig devuelve la configuración por defecto.
func DefaultConfig() *Config {
	return &Config{
		Listen: ":8080",
		Storage: Storage{
			Backend:   BackendMemory,
			PebbleDir: "./data",
		},
		Logging: Logging{
			Level:  "info",
			Format: "text",
			App:    "events-calendar",
		},
		CORS: CORS{
			AllowedOrigins: []string{"*"},
		},
		Export: Export{
			Schedule: "*/15 * * * *",
		},
	}
}

// Load lee el YAML en path sobre los defaults. Con path vacío usa sólo defaults.
// En ambos casos aplica variables de entorno, normaliza y valida.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.ApplyEnv(os.Getenv)
	cfg.Normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv sobreescribe campos con variables de entorno:
// PORT, DB_DSN, STORAGE_BACKEND, PEBBLE_DIR, LOG_LEVEL, LOG_FORMAT, APP_NAME.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv("PORT"); v != "" {
		c.Listen = ":" + strings.TrimPrefix(v, ":")
	}
	if v := getenv("DB_DSN"); v != "" {
		c.Storage.PostgresDSN = v
		// Igual que antes: si hay DSN y no se pidió otro backend, se usa Postgres.
		if getenv("STORAGE_BACKEND") == "" {
			c.Storage.Backend = BackendPostgres
		}
	}
	if v := getenv("STORAGE_BACKEND"); v != "" {
		c.Storage.Backend = v
	}
	if v := getenv("PEBBLE_DIR"); v != "" {
		c.Storage.PebbleDir = v
	}
	if v := getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := getenv("LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	if v := getenv("APP_NAME"); v != "" {
		c.Logging.App = v
	}
}

// Normalize completa valores vacíos con defaults.
func (c *Config) Normalize() {
	def := DefaultConfig()

	if strings.TrimSpace(c.Listen) == "" {
		c.Listen = def.Listen
	}
	c.Storage.Backend = strings.ToLower(strings.TrimSpace(c.Storage.Backend))
	if c.Storage.Backend == "" {
		c.Storage.Backend = def.Storage.Backend
	}
	if c.Storage.PebbleDir == "" {
		c.Storage.PebbleDir = def.Storage.PebbleDir
	}
	if c.Logging.Level == "" {
		c.Logging.Level = def.Logging.Level
	}
	if c.Logging.Format == "" {
		c.Logging.Format = def.Logging.Format
	}
	if c.CORS.AllowedOrigins == nil {
		c.CORS.AllowedOrigins = def.CORS.AllowedOrigins
	}
	if c.Export.Schedule == "" {
		c.Export.Schedule = def.Export.Schedule
	}
}

// Validate revisa combinaciones inválidas.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendMemory, BackendPebble:
	case BackendPostgres:
		if strings.TrimSpace(c.Storage.PostgresDSN) == "" {
			return errors.New("config: storage.postgres_dsn is required for the postgres backend")
		}
	default:
		return fmt.Errorf("config: unknown storage backend %q", c.Storage.Backend)
	}

	if c.Export.ICSPath != "" {
		if _, err := cron.ParseStandard(c.Export.Schedule); err != nil {
			return fmt.Errorf("config: invalid export.schedule %q: %w", c.Export.Schedule, err)
		}
	}
	return nil
}

// Save escribe la configuración con permisos 0600.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
