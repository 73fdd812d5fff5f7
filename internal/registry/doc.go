// Package registry maps site ids to per-site WordPress clients and
// resolves the site argument carried by tool calls. It is the only place
// that knows which sites exist; tools resolve through it and never hold
// clients of their own.
package registry
