package server

import (
	"encoding/json"
	"fmt"

	"github.com/docdyhr/mcp-wordpress-sub011/internal/wordpress"

	"github.com/mark3labs/mcp-go/mcp"
)

// Handler conventions: every failure comes back to the MCP client as a
// tool error result, never as a Go error, so one bad call can never take
// the session down. The site argument is resolved first; everything else
// is forwarded to the domain operation.

// siteFor resolves the optional site argument to a client.
func (s *Server) siteFor(args map[string]interface{}) (*wordpress.Client, error) {
	siteID, _ := args["site"].(string)
	return s.sites.Get(siteID)
}

// jsonResult renders a value as an indented JSON text result.
func jsonResult(v interface{}) *mcp.CallToolResult {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to format result: %v", err))
	}
	return mcp.NewToolResultText(string(data))
}

// idArg extracts and validates the required integer id argument.
func idArg(args map[string]interface{}, field string) (int, error) {
	return wordpress.ValidateID(args[field], field)
}

func stringArg(args map[string]interface{}, key string) string {
	value, _ := args[key].(string)
	return value
}

func boolArg(args map[string]interface{}, key string) bool {
	value, _ := args[key].(bool)
	return value
}

func intArg(args map[string]interface{}, key string) int {
	switch v := args[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}

func stringSliceArg(args map[string]interface{}, key string) []string {
	items, ok := args[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

// fieldArgs copies the arguments with the control keys removed, leaving
// only resource fields to forward to the API.
func fieldArgs(args map[string]interface{}, controlKeys ...string) map[string]interface{} {
	skip := map[string]bool{"site": true}
	for _, key := range controlKeys {
		skip[key] = true
	}
	out := make(map[string]interface{}, len(args))
	for key, value := range args {
		if skip[key] {
			continue
		}
		out[key] = value
	}
	return out
}
