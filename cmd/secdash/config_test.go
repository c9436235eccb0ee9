package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.APIAddr != "127.0.0.1:8080" {
		t.Errorf("api addr = %q", cfg.APIAddr)
	}
	if cfg.InitialTab != "overview" || cfg.Skin != "default" {
		t.Errorf("tab=%q skin=%q", cfg.InitialTab, cfg.Skin)
	}
	if cfg.RestoreDelay != 100*time.Millisecond {
		t.Errorf("restore delay = %s, want 100ms", cfg.RestoreDelay)
	}
	if cfg.ConfigPath != "" {
		t.Errorf("config path = %q, want none", cfg.ConfigPath)
	}
}

func TestLoadConfig_MissingExplicitPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "nope.yml")
	if _, err := loadConfig(path); err == nil {
		t.Fatal("expected error for missing --config file")
	}
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("SECDASH_API_PORT", "9090")

	path := filepath.Join(t.TempDir(), "config.yml")
	doc := "initial-tab: trends\nprint-dir: ~/reports\nrestore-delay: 250ms\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.ConfigPath != path {
		t.Errorf("config path = %q, want %q", cfg.ConfigPath, path)
	}
	if cfg.InitialTab != "trends" {
		t.Errorf("initial tab = %q", cfg.InitialTab)
	}
	if cfg.APIAddr != "127.0.0.1:9090" {
		t.Errorf("api addr = %q, want env port", cfg.APIAddr)
	}
	if cfg.PrintDir != filepath.Join(home, "reports") {
		t.Errorf("print dir = %q", cfg.PrintDir)
	}
	if cfg.RestoreDelay != 250*time.Millisecond {
		t.Errorf("restore delay = %s", cfg.RestoreDelay)
	}
}

func TestLoadConfig_InvalidPort(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SECDASH_API_PORT", "70000")

	if _, err := loadConfig(""); err == nil || !strings.Contains(err.Error(), "api-port") {
		t.Fatalf("err = %v, want invalid api-port", err)
	}
}

func TestRunExport(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	cfg.ExportPath = filepath.Join(t.TempDir(), "out", "dash.html")
	cfg.InitialTab = "incidents"

	if err := runExport(context.Background(), cfg); err != nil {
		t.Fatalf("runExport: %v", err)
	}
	data, err := os.ReadFile(cfg.ExportPath)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	html := string(data)
	if !strings.Contains(html, `<section id="incidents-tab" class="tab-content active">`) {
		t.Error("export should open on the requested tab")
	}
	if !strings.Contains(html, `"canvas":"emailAttackAnalysisChart"`) {
		t.Error("export missing chart configuration")
	}
}

func TestNewApp_Commands(t *testing.T) {
	app := newApp()
	want := map[string]bool{"tui": true, "serve": true, "export": true, "version": true}
	for _, c := range app.Commands {
		delete(want, c.Name)
	}
	if len(want) != 0 {
		t.Fatalf("missing commands: %v", want)
	}
	if app.DefaultCommand != "tui" {
		t.Fatalf("default command = %q", app.DefaultCommand)
	}
}
