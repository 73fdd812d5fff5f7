package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/docdyhr/mcp-wordpress-sub011/internal/config"
	"github.com/docdyhr/mcp-wordpress-sub011/internal/registry"
	"github.com/docdyhr/mcp-wordpress-sub011/internal/server"
	"github.com/docdyhr/mcp-wordpress-sub011/pkg/logging"
)

// Config holds the application configuration assembled from CLI flags.
type Config struct {
	// ConfigPath is an explicit config file path; empty enables the
	// default file and env fallback chain.
	ConfigPath string

	Debug     bool
	Transport string
	Host      string
	Port      int
	Version   string
}

// Application bootstraps and runs the MCP server: configuration, the
// per-site client registry, startup connectivity checks, and the
// transport lifecycle.
type Application struct {
	config *Config
	sites  *registry.Registry
	server *server.Server
}

// NewApplication performs the bootstrap sequence. Configuration errors
// and zero configured sites are fatal here, before any transport is
// started.
func NewApplication(cfg *Config) (*Application, error) {
	logLevel := logging.LevelInfo
	if cfg.Debug {
		logLevel = logging.LevelDebug
	}
	// Stdio transport owns stdout for the protocol, so logs go to stderr
	// for every transport.
	logging.InitForCLI(logLevel, os.Stderr)

	wpConfig, err := config.Load(cfg.ConfigPath)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to load configuration")
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logging.Info("Bootstrap", "Loaded configuration with %d site(s)", len(wpConfig.Sites))

	sites, err := registry.New(&wpConfig)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to build site registry")
		return nil, fmt.Errorf("failed to build site registry: %w", err)
	}

	transport, err := server.ParseTransport(cfg.Transport)
	if err != nil {
		return nil, err
	}

	srv := server.New(sites, server.Options{
		Name:      "mcp-wordpress",
		Version:   cfg.Version,
		Transport: transport,
		Host:      cfg.Host,
		Port:      cfg.Port,
	})

	return &Application{
		config: cfg,
		sites:  sites,
		server: srv,
	}, nil
}

// Run starts the server and blocks until the context is cancelled or a
// termination signal arrives. Startup pings are advisory: an
// unreachable site is logged and served anyway, since it may come back.
func (a *Application) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	for _, result := range a.sites.PingAll(ctx) {
		if result.Reachable {
			logging.Info("Bootstrap", "Site %s (%s) is reachable", result.SiteID, result.BaseURL)
		}
	}

	if path := a.configFilePath(); path != "" {
		watcher, err := config.NewWatcher(path)
		if err != nil {
			logging.Warn("Bootstrap", "Config watcher unavailable: %v", err)
		} else {
			// Start closes the underlying watcher when ctx is cancelled.
			go watcher.Start(ctx)
		}
	}

	if err := a.server.Start(ctx); err != nil {
		return fmt.Errorf("failed to start MCP server: %w", err)
	}

	<-ctx.Done()

	shutdownCtx := context.Background()
	return a.server.Stop(shutdownCtx)
}

// configFilePath returns the config file to watch: the explicit path, or
// the default file when configuration came from it. Env-only
// configuration has no file to watch.
func (a *Application) configFilePath() string {
	if a.config.ConfigPath != "" {
		return a.config.ConfigPath
	}
	if _, err := os.Stat(config.DefaultConfigFile); err == nil {
		return config.DefaultConfigFile
	}
	return ""
}
