package server

import (
	"fmt"
	"net"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the HTTP service settings.
type Config struct {
	Addr            string        `yaml:"addr"`
	UploadsDir      string        `yaml:"uploads_dir"`
	ExportsDir      string        `yaml:"exports_dir"`
	PublicDir       string        `yaml:"public_dir"`
	MaxUploadBytes  int64         `yaml:"max_upload_bytes"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

func (c *Config) defaults() {
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.UploadsDir == "" {
		c.UploadsDir = "uploads"
	}
	if c.ExportsDir == "" {
		c.ExportsDir = "exports"
	}
	if c.PublicDir == "" {
		c.PublicDir = "public"
	}
	if c.MaxUploadBytes <= 0 {
		c.MaxUploadBytes = 32 << 20
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = 10 * time.Second
	}
}

// LoadConfig reads a YAML config file. An empty path yields the defaults.
// The PORT environment variable overrides the listen port.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	cfg.applyEnv(os.Getenv)
	cfg.defaults()
	return cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) {
	port := getenv("PORT")
	if port == "" {
		return
	}
	host := ""
	if c.Addr != "" {
		if h, _, err := net.SplitHostPort(c.Addr); err == nil {
			host = h
		}
	}
	c.Addr = net.JoinHostPort(host, port)
}
