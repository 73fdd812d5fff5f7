package cmd

import (
	"context"
	"fmt"

	"github.com/docdyhr/mcp-wordpress-sub011/internal/app"

	"github.com/spf13/cobra"
)

var (
	serveConfigPath string
	serveDebug      bool
	serveTransport  string
	serveHost       string
	servePort       int
)

// serveCmd starts the MCP server. This is the main command of
// mcp-wordpress: it loads the site configuration, builds one
// authenticated client per site, and serves the tool catalog over the
// selected transport.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Starts the MCP server and exposes the WordPress tool catalog to
connected AI assistants.

Transports:
  stdio            (default) speak MCP over stdin/stdout; this is what
                   desktop AI assistants expect. All logging goes to stderr.
  streamable-http  serve MCP over HTTP on --host/--port.
  sse              serve MCP over server-sent events on --host/--port.

Configuration:
  Sites are read from --config if given, otherwise from
  mcp-wordpress.config.json in the working directory, otherwise a single
  site is built from the WORDPRESS_* environment variables
  (WORDPRESS_SITE_URL, WORDPRESS_USERNAME, WORDPRESS_APP_PASSWORD, ...).

Examples:
  mcp-wordpress serve
  mcp-wordpress serve --config sites.yaml --debug
  mcp-wordpress serve --transport streamable-http --port 8090`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	application, err := app.NewApplication(&app.Config{
		ConfigPath: serveConfigPath,
		Debug:      serveDebug,
		Transport:  serveTransport,
		Host:       serveHost,
		Port:       servePort,
		Version:    rootCmd.Version,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return application.Run(ctx)
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to the site configuration file")
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Enable debug logging")
	serveCmd.Flags().StringVar(&serveTransport, "transport", "stdio", "MCP transport: stdio, streamable-http, or sse")
	serveCmd.Flags().StringVar(&serveHost, "host", "localhost", "Host to bind the HTTP transports to")
	serveCmd.Flags().IntVar(&servePort, "port", 8090, "Port to bind the HTTP transports to")

	rootCmd.AddCommand(serveCmd)
}
