package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tinytelemetry/secdash/internal/catalog"
	"github.com/tinytelemetry/secdash/internal/tui"
	"github.com/urfave/cli/v2"
)

var tuiCommand = &cli.Command{
	Name:  "tui",
	Usage: "Show the dashboard in the terminal",
	Flags: []cli.Flag{
		tabFlag,
		&cli.StringFlag{
			Name:  "print-dir",
			Usage: "directory printed reports are written to",
		},
	},
	Action: func(c *cli.Context) error {
		cfg, err := configFromContext(c)
		if err != nil {
			return err
		}
		if dir := c.String("print-dir"); dir != "" {
			cfg.PrintDir = dir
		}
		return runTUI(c.Context, cfg)
	},
}

func runTUI(ctx context.Context, cfg appConfig) error {
	closeLog := configureRuntimeLogger()
	defer closeLog()

	if err := tui.InitializeSkin(cfg.Skin, cfg.ConfigDir); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to load skin '%s': %v (using default)\n", cfg.Skin, err)
	}

	dashPage := tui.NewDashboardPage(ctx, tui.Options{
		Layout:       catalog.Layout(),
		InitialTab:   cfg.InitialTab,
		RestoreDelay: cfg.RestoreDelay,
		PrintDir:     cfg.PrintDir,
		PrintKeep:    cfg.PrintKeep,
	})
	app := tui.NewApp(dashPage, tui.NewHelpPage(tui.DefaultKeyMap()))

	log.Printf("tui: starting (skin=%s tab=%s)", cfg.Skin, cfg.InitialTab)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty") {
			return fmt.Errorf("TUI requires a real terminal")
		}
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}

// configureRuntimeLogger sends the standard logger to a file so log lines do
// not corrupt the alternate screen.
func configureRuntimeLogger() func() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	home, err := os.UserHomeDir()
	if err != nil {
		log.SetOutput(os.Stderr)
		return func() {}
	}

	logDir := filepath.Join(home, ".local", "state", "secdash")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(os.Stderr)
		return func() {}
	}

	logPath := filepath.Join(logDir, "secdash.log")
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.SetOutput(os.Stderr)
		return func() {}
	}

	log.SetOutput(f)
	return func() {
		_ = f.Close()
	}
}
