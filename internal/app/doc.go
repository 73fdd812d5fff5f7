// Package app bootstraps the server: logging, configuration loading,
// the per-site client registry, startup connectivity checks, and the
// transport lifecycle with graceful shutdown on SIGINT/SIGTERM.
package app
