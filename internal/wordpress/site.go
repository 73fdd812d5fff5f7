package wordpress

import (
	"context"
	"net/http"
	"strings"

	"github.com/docdyhr/mcp-wordpress-sub011/pkg/logging"
)

// GetSettings fetches the site-wide settings resource.
func (c *Client) GetSettings(ctx context.Context) (*SiteSettings, error) {
	var settings SiteSettings
	if err := c.Get(ctx, "settings", nil, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// UpdateSettings updates site-wide settings from the given fields.
func (c *Client) UpdateSettings(ctx context.Context, fields map[string]interface{}) (*SiteSettings, error) {
	var settings SiteSettings
	if err := c.Post(ctx, "settings", fields, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// Search runs the site-wide search across the given content subtypes
// (post, page, ...). An empty subtype list searches everything.
func (c *Client) Search(ctx context.Context, term string, subtypes []string, filter map[string]interface{}) ([]SearchResult, error) {
	if err := ValidateRequired(term, "term"); err != nil {
		return nil, err
	}

	query := map[string]interface{}{"search": term}
	if len(subtypes) > 0 {
		query["subtype"] = strings.Join(subtypes, ",")
	}
	for key, value := range filter {
		query[key] = value
	}

	var results []SearchResult
	if err := c.Get(ctx, "search", query, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// Ping checks basic connectivity by fetching the REST API root. A probe
// answers "is it up right now", so there is no retry. The outcome is
// reduced to a boolean: failures are logged, not propagated, so one
// unreachable site never breaks a startup check for the others.
func (c *Client) Ping(ctx context.Context) bool {
	err := c.do(ctx, request{method: http.MethodGet, path: "/wp-json"}, nil)
	if err != nil {
		logging.Warn("WordPress", "Ping failed for site %s (%s): %v", c.site.ID, c.BaseURL(), err)
		return false
	}
	return true
}
