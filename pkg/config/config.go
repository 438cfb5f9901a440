package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"AstroCore/pkg/util"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"logging"`
	Ephemeris struct {
		Source     string        `yaml:"source"`
		ServiceURL string        `yaml:"service_url"`
		Timeout    time.Duration `yaml:"timeout"`
		MinYear    int           `yaml:"min_year"`
		MaxYear    int           `yaml:"max_year"`
	} `yaml:"ephemeris"`
	Houses struct {
		System string `yaml:"system"`
	} `yaml:"houses"`
	Horoscope struct {
		CacheTTL time.Duration `yaml:"cache_ttl"`
		Redis    struct {
			Enabled  bool   `yaml:"enabled"`
			Addr     string `yaml:"addr"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
		} `yaml:"redis"`
	} `yaml:"horoscope"`
	RateLimit struct {
		Enabled bool    `yaml:"enabled"`
		RPS     float64 `yaml:"rps"`
		Burst   int     `yaml:"burst"`
	} `yaml:"ratelimit"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// Validate required fields
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	// Override with environment variables
	if v := os.Getenv("EPHEMERIS_SOURCE"); v != "" {
		c.Ephemeris.Source = v
	}
	if v := os.Getenv("EPHEMERIS_SERVICE_URL"); v != "" {
		c.Ephemeris.ServiceURL = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Horoscope.Redis.Enabled = true
		c.Horoscope.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		c.Horoscope.Redis.Password = v
	}
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = util.ParseIntDefault(v, c.Server.Port)
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}

	return c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Ephemeris.Source == "" {
		return fmt.Errorf("ephemeris.source is required")
	}
	if c.Ephemeris.Source != "local" && c.Ephemeris.Source != "http" {
		return fmt.Errorf("ephemeris.source must be 'local' or 'http', got '%s'", c.Ephemeris.Source)
	}
	if c.Ephemeris.Source == "http" && c.Ephemeris.ServiceURL == "" {
		return fmt.Errorf("ephemeris.service_url is required for http source")
	}
	if c.Ephemeris.MinYear != 0 && c.Ephemeris.MaxYear != 0 && c.Ephemeris.MinYear >= c.Ephemeris.MaxYear {
		return fmt.Errorf("ephemeris.min_year must be below max_year")
	}
	if c.Horoscope.Redis.Enabled && c.Horoscope.Redis.Addr == "" {
		return fmt.Errorf("horoscope.redis.addr is required when redis is enabled")
	}
	return nil
}
