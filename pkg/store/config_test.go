package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := map[string]func(c *Config){
		"unknown driver":       func(c *Config) { c.Remote.Driver = "ftp" },
		"redis without url":    func(c *Config) { c.Remote.Driver = DriverRedis },
		"s3 without endpoint":  func(c *Config) { c.Remote.Driver = DriverS3 },
		"bad collection":       func(c *Config) { c.Remote.Collection = "drop table;" },
		"missing record":       func(c *Config) { c.Remote.Record = "" },
		"negative debounce":    func(c *Config) { c.Debounce = -time.Second },
		"unknown timezone":     func(c *Config) { c.Timezone = "Mars/Olympus" },
		"missing storage path": func(c *Config) { c.Path = "" },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			c := DefaultConfig()
			mutate(c)
			if err := c.Validate(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}

func TestLoadConfigFromFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := "path: " + filepath.Join(dir, "cache") + "\nremote:\n  driver: sqlite\n  url: " + filepath.Join(dir, "diary.db") + "\n"
	if err := os.WriteFile(filepath.Join(dir, ".diary.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("DIARY_CONFIG_PATH", dir)
	t.Setenv("DIARY_DEBOUNCE", "1s")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Remote.Driver != DriverSQLite {
		t.Fatalf("expected sqlite driver, got %q", cfg.Remote.Driver)
	}
	if cfg.BasePath() != filepath.Join(dir, "cache") {
		t.Fatalf("unexpected base path %q", cfg.BasePath())
	}
	if cfg.Debounce != time.Second {
		t.Fatalf("expected env override of debounce, got %v", cfg.Debounce)
	}
	if cfg.Remote.Record != "default" || cfg.Key != "diary:data:v1" {
		t.Fatalf("expected defaults to survive, got %#v", cfg)
	}
}

func TestLocation(t *testing.T) {
	c := DefaultConfig()
	c.Timezone = "UTC"
	if c.Location() != time.UTC {
		t.Fatalf("expected UTC")
	}
	c.Timezone = ""
	if c.Location() != time.Local {
		t.Fatalf("expected local")
	}
}
