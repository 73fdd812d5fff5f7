// Package logging provides a structured logging system built on Go's
// standard slog package, with subsystem-tagged helpers used across the
// server.
//
// All log entries include a timestamp, level, subsystem identifier, the
// message, and optional error information.
//
// # Usage
//
//	logging.InitForCLI(logging.LevelInfo, os.Stderr)
//
//	logging.Info("Bootstrap", "Application starting up")
//	logging.Debug("Config", "Loaded configuration from %s", configPath)
//	logging.Error("WordPress", err, "Request failed for site %s", siteID)
//
// # Subsystem Organization
//
// Logs are organized by subsystem to enable filtering and categorization:
//
//   - Bootstrap: application initialization and startup
//   - Config: configuration loading, validation, and change watching
//   - Auth: authentication handshakes and header derivation
//   - WordPress: outbound REST requests and error classification
//   - Registry: site resolution and connectivity checks
//   - Server: MCP server lifecycle and tool dispatch
//
// The logging system is safe for concurrent use from multiple goroutines.
package logging
