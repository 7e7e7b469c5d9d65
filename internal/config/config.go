package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const appName = "numconv"

type Config struct {
	Service  svcConfig `yaml:"service"`
	LogLevel string    `yaml:"logLevel,omitempty"`
}

type svcConfig struct {
	Address                string          `yaml:"address,omitempty"`
	ReadTimeoutSeconds     int             `yaml:"readTimeoutSeconds,omitempty"`
	WriteTimeoutSeconds    int             `yaml:"writeTimeoutSeconds,omitempty"`
	ShutdownTimeoutSeconds int             `yaml:"shutdownTimeoutSeconds,omitempty"`
	RateLimit              rateLimitConfig `yaml:"rateLimit,omitempty"`
}

// rateLimitConfig bounds requests per client IP. A zero Requests value
// disables limiting.
type rateLimitConfig struct {
	Requests      int `yaml:"requests,omitempty"`
	WindowSeconds int `yaml:"windowSeconds,omitempty"`
}

func ConfigDir() string {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "." + appName
	}
	return filepath.Join(dir, "."+appName)
}

func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

func NewDefault() *Config {
	return &Config{
		Service: svcConfig{
			Address:                ":8080",
			ReadTimeoutSeconds:     5,
			WriteTimeoutSeconds:    10,
			ShutdownTimeoutSeconds: 5,
			RateLimit: rateLimitConfig{
				Requests:      300,
				WindowSeconds: 60,
			},
		},
		LogLevel: "info",
	}
}

func NewFromFile(cfgFile string) (*Config, error) {
	cfg, err := Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func LoadOrGenerate(cfgFile string) (*Config, error) {
	if _, err := os.Stat(cfgFile); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(cfgFile), os.FileMode(0755)); err != nil {
			return nil, fmt.Errorf("creating directory for config file: %v", err)
		}
		if err := Save(NewDefault(), cfgFile); err != nil {
			return nil, err
		}
	}
	return NewFromFile(cfgFile)
}

func Load(cfgFile string) (*Config, error) {
	contents, err := os.ReadFile(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %v", err)
	}
	c := NewDefault()
	if err := yaml.Unmarshal(contents, c); err != nil {
		return nil, fmt.Errorf("decoding config: %v", err)
	}
	return c, nil
}

func Save(cfg *Config, cfgFile string) error {
	contents, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %v", err)
	}
	if err := os.WriteFile(cfgFile, contents, 0600); err != nil {
		return fmt.Errorf("writing config file: %v", err)
	}
	return nil
}

func Validate(cfg *Config) error {
	if cfg.Service.Address == "" {
		return fmt.Errorf("service address must not be empty")
	}
	if cfg.LogLevel != "" {
		if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
			return fmt.Errorf("invalid log level %q", cfg.LogLevel)
		}
	}
	if cfg.Service.ReadTimeoutSeconds < 0 || cfg.Service.WriteTimeoutSeconds < 0 || cfg.Service.ShutdownTimeoutSeconds < 0 {
		return fmt.Errorf("service timeouts must not be negative")
	}
	rl := cfg.Service.RateLimit
	if rl.Requests < 0 || rl.WindowSeconds < 0 {
		return fmt.Errorf("rate limit values must not be negative")
	}
	if rl.Requests > 0 && rl.WindowSeconds == 0 {
		return fmt.Errorf("rate limit window must be set when requests is set")
	}
	return nil
}
