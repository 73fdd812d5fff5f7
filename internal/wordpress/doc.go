// Package wordpress implements the per-site WordPress REST API client:
// the request-dispatch and authentication core everything else consumes.
//
// # Architecture
//
// One Client exists per configured site, owning:
//
//   - An AuthManager that performs whatever handshake the site's auth
//     method requires (a token exchange for jwt; a field check for the
//     header-only schemes) and derives per-request headers from its state.
//   - The request engine: path/query construction against the
//     /wp-json/wp/v2 namespace, header assembly, per-request timeouts,
//     bounded retry with exponential backoff for transient failures, and
//     multipart upload for media.
//   - Error classification: every failure that leaves this package is a
//     typed *APIError (or its *AuthError subtype) carrying one code from
//     a closed taxonomy plus the real HTTP status.
//
// Domain operations (posts, pages, media, users, comments, taxonomies,
// site) are thin mappings from a verb to the Get/Post/Put/Delete contract;
// they hold no state of their own.
//
// Parameter validators reject malformed input before a request is issued,
// so validation failures never consume network attempts and are never
// retried.
package wordpress
