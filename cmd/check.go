package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/docdyhr/mcp-wordpress-sub011/internal/config"
	"github.com/docdyhr/mcp-wordpress-sub011/internal/registry"
	"github.com/docdyhr/mcp-wordpress-sub011/pkg/logging"

	"github.com/briandowns/spinner"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

var checkConfigPath string

// checkCmd verifies the configuration and connectivity without starting
// a server: load config, build the clients, ping every site, and print
// the results as a table.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check site configuration and connectivity",
	Long: `Loads the site configuration, builds a client per site, and checks
that each site's REST API is reachable. No MCP server is started.

Examples:
  mcp-wordpress check
  mcp-wordpress check --config sites.yaml`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	logging.InitForCLI(logging.LevelError, os.Stderr)

	cfg, err := config.Load(checkConfigPath)
	if err != nil {
		return err
	}

	sites, err := registry.New(&cfg)
	if err != nil {
		return err
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = fmt.Sprintf(" Checking %d site(s)...", sites.Len())
	s.Start()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	results := sites.PingAll(ctx)
	s.Stop()

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{
		text.FgHiCyan.Sprint("SITE"),
		text.FgHiCyan.Sprint("NAME"),
		text.FgHiCyan.Sprint("URL"),
		text.FgHiCyan.Sprint("STATUS"),
	})

	unreachable := 0
	for _, result := range results {
		status := text.FgGreen.Sprint("reachable")
		if !result.Reachable {
			status = text.FgRed.Sprint("unreachable")
			unreachable++
		}
		t.AppendRow(table.Row{result.SiteID, result.Name, result.BaseURL, status})
	}
	t.Render()

	if unreachable > 0 {
		return fmt.Errorf("%d of %d site(s) unreachable", unreachable, len(results))
	}
	return nil
}

func init() {
	checkCmd.Flags().StringVar(&checkConfigPath, "config", "", "Path to the site configuration file")
	rootCmd.AddCommand(checkCmd)
}
