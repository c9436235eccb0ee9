package main

import (
	"context"
	"fmt"
	"log"

	"github.com/tinytelemetry/secdash/internal/catalog"
	"github.com/tinytelemetry/secdash/internal/chartjs"
	"github.com/tinytelemetry/secdash/internal/dashboard"
	"github.com/tinytelemetry/secdash/internal/report"
	"github.com/urfave/cli/v2"
)

var exportCommand = &cli.Command{
	Name:  "export",
	Usage: "Write the dashboard as a standalone HTML file",
	Flags: []cli.Flag{
		tabFlag,
		&cli.StringFlag{
			Name:    "out",
			Aliases: []string{"o"},
			Usage:   "output file (overrides export-path)",
		},
	},
	Action: func(c *cli.Context) error {
		cfg, err := configFromContext(c)
		if err != nil {
			return err
		}
		if out := c.String("out"); out != "" {
			cfg.ExportPath = out
		}
		if err := runExport(c.Context, cfg); err != nil {
			return err
		}
		fmt.Printf("Dashboard written to %s\n", cfg.ExportPath)
		return nil
	},
}

// runExport loads the page headlessly and renders it. Panel restores are run
// before rendering so the file carries the page's settled state.
func runExport(ctx context.Context, cfg appConfig) error {
	layout := catalog.Layout()
	page := dashboard.BuildPage(layout, dashboard.WithActiveTab(cfg.InitialTab))

	var factory chartjs.Factory
	var queue dashboard.Queue
	d := dashboard.Load(ctx, page, dashboard.Config{
		Layout:       layout,
		Factory:      &factory,
		Scheduler:    &queue,
		RestoreDelay: cfg.RestoreDelay,
	})
	queue.RunAll()

	log.Printf("export: %d charts, %d recommendations", len(d.Charts), d.Cards)

	view := report.FromPage(page, factory.Charts(), cfg.RestoreDelay)
	if err := report.WriteFile(cfg.ExportPath, view); err != nil {
		return fmt.Errorf("exporting dashboard: %w", err)
	}
	return nil
}
