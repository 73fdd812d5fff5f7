package registry

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/docdyhr/mcp-wordpress-sub011/internal/config"
	"github.com/docdyhr/mcp-wordpress-sub011/internal/wordpress"
	"github.com/docdyhr/mcp-wordpress-sub011/pkg/logging"

	"golang.org/x/sync/errgroup"
)

// Registry holds one wordpress.Client per configured site and resolves
// the optional site argument of every tool call. Clients are built once
// at startup and live for the process lifetime.
type Registry struct {
	mu      sync.RWMutex
	clients map[string]*wordpress.Client
	order   []string
}

// New builds a client for every configured site. Configuration with zero
// sites is rejected here so the server never starts without a target.
func New(cfg *config.Config) (*Registry, error) {
	if len(cfg.Sites) == 0 {
		return nil, fmt.Errorf("no WordPress sites configured")
	}

	r := &Registry{
		clients: make(map[string]*wordpress.Client, len(cfg.Sites)),
		order:   make([]string, 0, len(cfg.Sites)),
	}
	for _, site := range cfg.Sites {
		client, err := wordpress.NewClient(site)
		if err != nil {
			return nil, err
		}
		r.clients[site.ID] = client
		r.order = append(r.order, site.ID)
		logging.Info("Registry", "registered site %s (%s)", site.ID, client.BaseURL())
	}
	return r, nil
}

// Get resolves a site id to its client. An empty id resolves to the sole
// configured site, or to the "default" site when several are configured.
// An unknown id fails with an error naming the configured ids, so the
// calling tool can surface an actionable message.
func (r *Registry) Get(siteID string) (*wordpress.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if siteID == "" {
		if len(r.order) == 1 {
			return r.clients[r.order[0]], nil
		}
		if client, ok := r.clients[config.DefaultSiteID]; ok {
			return client, nil
		}
		return nil, fmt.Errorf("multiple sites are configured, pass site as one of: %s",
			strings.Join(r.IDs(), ", "))
	}

	client, ok := r.clients[siteID]
	if !ok {
		return nil, fmt.Errorf("unknown site %q, configured sites: %s",
			siteID, strings.Join(r.IDs(), ", "))
	}
	return client, nil
}

// IDs returns the configured site ids in sorted order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.order))
	copy(ids, r.order)
	sort.Strings(ids)
	return ids
}

// All returns every client in configuration order.
func (r *Registry) All() []*wordpress.Client {
	r.mu.RLock()
	defer r.mu.RUnlock()

	clients := make([]*wordpress.Client, 0, len(r.order))
	for _, id := range r.order {
		clients = append(clients, r.clients[id])
	}
	return clients
}

// Len returns the number of registered sites.
func (r *Registry) Len() int {
	return len(r.order)
}

// PingResult is the outcome of one site's connectivity probe.
type PingResult struct {
	SiteID    string
	Name      string
	BaseURL   string
	Reachable bool
}

// PingAll probes every site concurrently. A site that cannot be reached
// is reported, not fatal: one broken site must not take the others down.
func (r *Registry) PingAll(ctx context.Context) []PingResult {
	clients := r.All()
	results := make([]PingResult, len(clients))

	g, ctx := errgroup.WithContext(ctx)
	for i, client := range clients {
		g.Go(func() error {
			reachable := client.Ping(ctx)
			if !reachable {
				logging.Warn("Registry", "site %s (%s) is not reachable", client.ID(), client.BaseURL())
			}
			results[i] = PingResult{
				SiteID:    client.ID(),
				Name:      client.Name(),
				BaseURL:   client.BaseURL(),
				Reachable: reachable,
			}
			return nil
		})
	}
	_ = g.Wait()
	return results
}
