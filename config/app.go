package config

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// AppConfig is the configuration of the rhyme service and CLI.
type AppConfig struct {
	Server ServerConfig   `yaml:"server"`
	Data   DataConfig     `yaml:"data"`
	Log    LogConfig      `yaml:"log"`
	Jobs   JobsConfig     `yaml:"jobs"`
	Rhymer RhymerSettings `yaml:"rhymer"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"   env:"SERVER_MAX_BODY_BYTES"   env-default:"1048576"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DataConfig holds the location of the persisted index.
type DataConfig struct {
	Dir       string `yaml:"dir"        env:"DATA_DIR"        env-default:"./rhymer_data"`
	IndexFile string `yaml:"index_file" env:"DATA_INDEX_FILE" env-default:"rhymer.gob"`
	Lexicon   string `yaml:"lexicon"    env:"DATA_POS_LEXICON"` // Optional word<TAB>tag file for part-of-speech lookups
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// JobsConfig holds background job settings.
type JobsConfig struct {
	MaxWorkers int `yaml:"max_workers" env:"JOBS_MAX_WORKERS" env-default:"1"`
}

// LoadApp reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
// The YAML file path is path when given, else CONFIG_PATH, else "./config.yaml".
// If the file does not exist and no path was set explicitly,
// configuration is loaded from ENV + defaults only.
func LoadApp(path string) (*AppConfig, error) {
	var cfg AppConfig

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	explicitPath := path != ""
	if !explicitPath {
		path = "./config.yaml"
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicitPath {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	cfg.Rhymer.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// Validate checks the configuration for values the service cannot run with.
func (c *AppConfig) Validate() error {
	var problems []string

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		problems = append(problems, fmt.Sprintf("server.port %d is out of range", c.Server.Port))
	}
	if strings.TrimSpace(c.Data.Dir) == "" {
		problems = append(problems, "data.dir is required")
	}
	if strings.TrimSpace(c.Data.IndexFile) == "" {
		problems = append(problems, "data.index_file is required")
	}
	if !slices.Contains([]string{"debug", "info", "warn", "error"}, strings.ToLower(c.Log.Level)) {
		problems = append(problems, fmt.Sprintf("log.level %q is not one of debug, info, warn, error", c.Log.Level))
	}
	if !slices.Contains([]string{"text", "json"}, strings.ToLower(c.Log.Format)) {
		problems = append(problems, fmt.Sprintf("log.format %q is not one of text, json", c.Log.Format))
	}
	if c.Jobs.MaxWorkers < 1 {
		problems = append(problems, "jobs.max_workers must be at least 1")
	}
	problems = append(problems, c.Rhymer.Validate()...)

	if len(problems) > 0 {
		return fmt.Errorf("%s", strings.Join(problems, "; "))
	}
	return nil
}
