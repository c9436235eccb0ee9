package main

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/tinytelemetry/secdash/internal/model"
)

const (
	defaultBindHost     = "127.0.0.1"
	defaultAPIPort      = 8080
	defaultSkin         = model.DefaultSkin
	defaultInitialTab   = model.DefaultInitialTab
	defaultRestoreDelay = model.DefaultRestoreDelay
	defaultExportPath   = "secdash.html"
	defaultPrintKeep    = 20
)

// appConfig is internal runtime configuration.
type appConfig struct {
	Skin         string        `mapstructure:"skin"`
	BindHost     string        `mapstructure:"bind-host"`
	APIPort      int           `mapstructure:"api-port"`
	APIAddr      string        `mapstructure:"api-addr"`
	InitialTab   string        `mapstructure:"initial-tab"`
	RestoreDelay time.Duration `mapstructure:"restore-delay"`
	PrintDir     string        `mapstructure:"print-dir"`
	PrintKeep    int           `mapstructure:"print-keep"`
	ExportPath   string        `mapstructure:"export-path"`
	ConfigDir    string        `mapstructure:"-"` // skins live under here
	ConfigPath   string        `mapstructure:"-"` // not from config file
}

func loadConfig(configPath string) (appConfig, error) {
	var cfg appConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}
	configDir := filepath.Join(home, ".config", "secdash")

	v := viper.New()
	v.SetEnvPrefix("SECDASH")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("skin", defaultSkin)
	v.SetDefault("bind-host", defaultBindHost)
	v.SetDefault("api-port", defaultAPIPort)
	v.SetDefault("api-addr", "")
	v.SetDefault("initial-tab", defaultInitialTab)
	v.SetDefault("restore-delay", defaultRestoreDelay)
	v.SetDefault("print-dir", filepath.Join(home, "Documents", "secdash"))
	v.SetDefault("print-keep", defaultPrintKeep)
	v.SetDefault("export-path", defaultExportPath)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(configDir, "config.yml"))
	}

	usedPath := ""
	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		notFound := errors.As(err, &configFileNotFound) || os.IsNotExist(err)
		// A path named on the command line must exist.
		if !notFound || configPath != "" {
			return cfg, fmt.Errorf("reading config: %w", err)
		}
	} else {
		usedPath = v.ConfigFileUsed()
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	cfg.ConfigDir = configDir
	cfg.ConfigPath = usedPath

	if cfg.APIPort <= 0 || cfg.APIPort > 65535 {
		return cfg, fmt.Errorf("invalid api-port: %d", cfg.APIPort)
	}
	if cfg.RestoreDelay <= 0 {
		return cfg, fmt.Errorf("invalid restore-delay: %s", cfg.RestoreDelay)
	}

	cfg.PrintDir = expandHome(home, cfg.PrintDir)
	cfg.ExportPath = expandHome(home, cfg.ExportPath)

	if cfg.APIAddr == "" {
		cfg.APIAddr = net.JoinHostPort(cfg.BindHost, strconv.Itoa(cfg.APIPort))
	}

	return cfg, nil
}

func expandHome(home, path string) string {
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}
