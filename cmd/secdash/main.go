package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

// Build variables - set by ldflags during build.
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
	goVersion = "unknown"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "secdash",
		Usage:   "Executive security dashboard for the terminal and the browser",
		Version: version,
		Description: `secdash shows incident, alert and attack-technique charts with
canned security recommendations.

Examples:
  # Terminal dashboard
  secdash
  secdash tui --tab trends

  # Serve the browser dashboard
  secdash serve --addr 0.0.0.0:8080

  # Write a standalone HTML report
  secdash export --out report.html`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "config file (default is $HOME/.config/secdash/config.yml)",
				EnvVars: []string{"SECDASH_CONFIG"},
			},
		},
		Commands: []*cli.Command{
			tuiCommand,
			serveCommand,
			exportCommand,
			versionCommand,
		},
		DefaultCommand: tuiCommand.Name,
	}
}

// configFromContext loads configuration and applies the flags shared by
// every command.
func configFromContext(c *cli.Context) (appConfig, error) {
	cfg, err := loadConfig(c.String("config"))
	if err != nil {
		return cfg, err
	}
	if tab := c.String("tab"); tab != "" {
		cfg.InitialTab = tab
	}
	return cfg, nil
}

var tabFlag = &cli.StringFlag{
	Name:  "tab",
	Usage: "initially active tab (overview, incidents, trends)",
}

var versionCommand = &cli.Command{
	Name:  "version",
	Usage: "Print version information",
	Action: func(c *cli.Context) error {
		fmt.Printf("secdash - Executive Security Dashboard\n")
		fmt.Printf("  Version:    %s\n", version)
		fmt.Printf("  Commit:     %s\n", commit)
		fmt.Printf("  Built:      %s\n", buildTime)
		fmt.Printf("  Go version: %s\n", goVersion)
		return nil
	},
}
