// Package config defines the multi-site WordPress configuration and its
// loading rules.
//
// Configuration comes from one of two sources, normalized into the same
// shape before the site registry ever sees it:
//
//   - A multi-site config file: a sites list where each entry has an id,
//     a display name, and a nested config block keyed by the WORDPRESS_*
//     variable names. The file is parsed with yaml.v3, which also accepts
//     the JSON form used by the original deployments.
//
//   - Environment variables (WORDPRESS_SITE_URL, WORDPRESS_USERNAME,
//     WORDPRESS_APP_PASSWORD, WORDPRESS_AUTH_METHOD, ...) producing a
//     single implicit "default" site.
//
// The loaded Config is immutable for the process lifetime. A Watcher can
// observe the config file and log a restart-required notice when it
// changes on disk.
package config
