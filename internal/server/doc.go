// Package server exposes the WordPress tool catalog over the MCP
// protocol. It registers one tool per WordPress operation, resolves the
// optional site argument through the registry, and runs the selected
// transport (stdio by default, streamable-http or sse for networked
// clients).
//
// Handlers never return a Go error for a failed operation: every
// failure becomes a tool error result so the MCP session survives bad
// calls.
package server
