package server

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.yaml")
	data := "addr: 127.0.0.1:8080\nuploads_dir: data/in\nshutdown_timeout: 3s\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("PORT", "")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Addr != "127.0.0.1:8080" || cfg.UploadsDir != "data/in" {
		t.Errorf("Unexpected config %+v", cfg)
	}
	if cfg.ExportsDir != "exports" || cfg.PublicDir != "public" {
		t.Errorf("Expected default dirs, got %+v", cfg)
	}
	if cfg.ShutdownTimeout != 3*time.Second || cfg.MaxUploadBytes != 32<<20 {
		t.Errorf("Unexpected limits %+v", cfg)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("Expected error for missing config file")
	}
}

func TestApplyEnvPort(t *testing.T) {
	tests := []struct {
		addr     string
		port     string
		expected string
	}{
		{"", "", ""},
		{"", "8081", ":8081"},
		{"127.0.0.1:3000", "9000", "127.0.0.1:9000"},
		{":3000", "9000", ":9000"},
	}

	for _, tt := range tests {
		cfg := Config{Addr: tt.addr}
		cfg.applyEnv(func(string) string { return tt.port })
		if cfg.Addr != tt.expected {
			t.Errorf("applyEnv(%q, PORT=%q) = %q, expected %q", tt.addr, tt.port, cfg.Addr, tt.expected)
		}
	}
}
