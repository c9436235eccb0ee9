package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/tinytelemetry/secdash/internal/catalog"
	"github.com/tinytelemetry/secdash/internal/httpserver"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

var serveCommand = &cli.Command{
	Name:  "serve",
	Usage: "Serve the dashboard over HTTP",
	Flags: []cli.Flag{
		tabFlag,
		&cli.StringFlag{
			Name:  "addr",
			Usage: "listen address (overrides bind-host and api-port)",
		},
	},
	Action: func(c *cli.Context) error {
		cfg, err := configFromContext(c)
		if err != nil {
			return err
		}
		if addr := c.String("addr"); addr != "" {
			cfg.APIAddr = addr
		}
		return runServer(c.Context, cfg)
	},
}

func runServer(parent context.Context, cfg appConfig) error {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	srv := httpserver.NewServer(cfg.APIAddr, httpserver.Options{
		Layout:       catalog.Layout(),
		InitialTab:   cfg.InitialTab,
		RestoreDelay: cfg.RestoreDelay,
	})
	if err := srv.Start(); err != nil {
		return fmt.Errorf("starting HTTP server on %s: %w", cfg.APIAddr, err)
	}

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	printStartupBanner(cfg)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		select {
		case <-sigCh:
			fmt.Println("\nShutting down gracefully...")
			cancel()
		case <-gctx.Done():
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdown := make(chan error, 1)
		go func() { shutdown <- srv.Stop() }()

		select {
		case err := <-shutdown:
			if err != nil {
				return fmt.Errorf("stopping HTTP server: %w", err)
			}
		case <-time.After(10 * time.Second):
			return fmt.Errorf("stopping HTTP server: timed out")
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Printf("server: errgroup exited with error: %v", err)
		return err
	}
	return nil
}

func printStartupBanner(cfg appConfig) {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	green := lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	cyan := lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	yellow := lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	bold := lipgloss.NewStyle().Bold(true)

	check := green.Render("●")
	dot := dim.Render("●")

	logo := cyan.Bold(true).Render(`
    ╔═╗╔═╗╔═╗╔╦╗╔═╗╔═╗╦ ╦
    ╚═╗║╣ ║   ║║╠═╣╚═╗╠═╣
    ╚═╝╚═╝╚═╝═╩╝╩ ╩╚═╝╩ ╩`)

	layout := catalog.Layout()

	var lines []string
	lines = append(lines, "")
	lines = append(lines, logo)
	lines = append(lines, "    "+dim.Render("v"+version))
	lines = append(lines, "")

	separator := dim.Render("    ─────────────────────────────────")
	lines = append(lines, separator)
	lines = append(lines, "")

	lines = append(lines, bold.Render("    Dashboard"))
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("    %s  HTTP           %s", check, cyan.Render("http://"+cfg.APIAddr+"/")))
	lines = append(lines, fmt.Sprintf("    %s  Charts         %s", check, dim.Render(fmt.Sprintf("%d across %d tabs", len(layout.Slots), len(layout.Tabs)))))
	lines = append(lines, fmt.Sprintf("    %s  Initial Tab    %s", check, dim.Render(cfg.InitialTab)))
	lines = append(lines, "")

	lines = append(lines, bold.Render("    Config"))
	lines = append(lines, "")
	if cfg.ConfigPath != "" {
		lines = append(lines, fmt.Sprintf("    %s  Config File    %s", check, dim.Render(shortenPath(cfg.ConfigPath))))
	} else {
		lines = append(lines, fmt.Sprintf("    %s  Config File    %s", dot, dim.Render("default (no file)")))
	}

	lines = append(lines, "")
	lines = append(lines, separator)
	lines = append(lines, "")
	lines = append(lines, "    "+dim.Render("Press ")+yellow.Render("Ctrl+C")+dim.Render(" to stop"))
	lines = append(lines, "")

	fmt.Println(strings.Join(lines, "\n"))
}

func shortenPath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if strings.HasPrefix(path, home) {
		return "~" + path[len(home):]
	}
	return path
}
