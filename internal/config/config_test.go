package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.DBPath != DefaultDBPath {
		t.Errorf("expected db path %s, got %s", DefaultDBPath, cfg.DBPath)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("expected log level %s, got %s", DefaultLogLevel, cfg.LogLevel)
	}
	if cfg.LogFormat != DefaultLogFormat {
		t.Errorf("expected log format %s, got %s", DefaultLogFormat, cfg.LogFormat)
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
db_path = "data/todos.db"
log_level = "debug"
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.DBPath != "data/todos.db" {
		t.Errorf("expected db path data/todos.db, got %s", cfg.DBPath)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.LogLevel)
	}
	if cfg.LogFormat != DefaultLogFormat {
		t.Errorf("expected default log format to be kept, got %s", cfg.LogFormat)
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `db_path = `)

	_, err := Load(dir)
	if err == nil {
		t.Fatal("expected error for invalid TOML")
	}
	if !strings.Contains(err.Error(), "failed to parse config") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoad_UnknownKey(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `database = "x.db"`)

	_, err := Load(dir)
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
	if !strings.Contains(err.Error(), `unknown key "database"`) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadFile_MissingIsError(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `log_format = "json"`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("expected log format json, got %s", cfg.LogFormat)
	}
	if cfg.DBPath != DefaultDBPath {
		t.Errorf("expected default db path, got %s", cfg.DBPath)
	}
}
