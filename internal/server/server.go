package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/docdyhr/mcp-wordpress-sub011/internal/registry"
	"github.com/docdyhr/mcp-wordpress-sub011/pkg/logging"

	"github.com/mark3labs/mcp-go/server"
)

// Transport selects how the MCP server talks to its client.
type Transport string

const (
	TransportStdio          Transport = "stdio"
	TransportSSE            Transport = "sse"
	TransportStreamableHTTP Transport = "streamable-http"
)

// Options configures the MCP server.
type Options struct {
	Name      string
	Version   string
	Transport Transport
	Host      string
	Port      int
}

// Server exposes the WordPress tool catalog over MCP. One instance per
// process; it owns the transport lifecycle.
type Server struct {
	opts  Options
	sites *registry.Registry

	server *server.MCPServer

	sseServer            *server.SSEServer
	streamableHTTPServer *server.StreamableHTTPServer
	stdioServer          *server.StdioServer

	ctx        context.Context
	cancelFunc context.CancelFunc
	mu         sync.Mutex
}

// New builds the server and registers the full tool catalog.
func New(sites *registry.Registry, opts Options) *Server {
	if opts.Name == "" {
		opts.Name = "mcp-wordpress"
	}
	if opts.Version == "" {
		opts.Version = "dev"
	}
	if opts.Transport == "" {
		opts.Transport = TransportStdio
	}

	mcpServer := server.NewMCPServer(
		opts.Name,
		opts.Version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithPromptCapabilities(false),
	)

	s := &Server{
		opts:   opts,
		sites:  sites,
		server: mcpServer,
	}
	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	s.registerPostTools()
	s.registerPageTools()
	s.registerMediaTools()
	s.registerUserTools()
	s.registerCommentTools()
	s.registerTaxonomyTools()
	s.registerSiteTools()
}

// Start starts the configured transport. Stdio and the HTTP transports
// all run in the background; the caller blocks on its own signal
// handling and calls Stop to shut down.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ctx != nil {
		return fmt.Errorf("server already started")
	}
	s.ctx, s.cancelFunc = context.WithCancel(ctx)

	addr := fmt.Sprintf("%s:%d", s.opts.Host, s.opts.Port)

	switch s.opts.Transport {
	case TransportSSE:
		logging.Info("Server", "Starting MCP server with SSE transport on %s", addr)
		baseURL := fmt.Sprintf("http://%s", addr)
		s.sseServer = server.NewSSEServer(
			s.server,
			server.WithBaseURL(baseURL),
			server.WithSSEEndpoint("/sse"),
			server.WithMessageEndpoint("/message"),
			server.WithKeepAlive(true),
			server.WithKeepAliveInterval(30*time.Second),
		)
		sseServer := s.sseServer
		go func() {
			if err := sseServer.Start(addr); err != nil && err != http.ErrServerClosed {
				logging.Error("Server", err, "SSE server error")
			}
		}()

	case TransportStreamableHTTP:
		logging.Info("Server", "Starting MCP server with streamable-http transport on %s", addr)
		s.streamableHTTPServer = server.NewStreamableHTTPServer(s.server)
		streamableServer := s.streamableHTTPServer
		go func() {
			if err := streamableServer.Start(addr); err != nil && err != http.ErrServerClosed {
				logging.Error("Server", err, "Streamable HTTP server error")
			}
		}()

	case TransportStdio:
		fallthrough
	default:
		// Stdio owns stdout for the protocol; all logging goes to stderr.
		logging.Info("Server", "Starting MCP server with stdio transport")
		s.stdioServer = server.NewStdioServer(s.server)
		stdioServer := s.stdioServer
		serverCtx := s.ctx
		go func() {
			if err := stdioServer.Listen(serverCtx, os.Stdin, os.Stdout); err != nil && serverCtx.Err() == nil {
				logging.Error("Server", err, "Stdio server error")
			}
		}()
	}

	return nil
}

// Stop shuts the transport down, waiting up to five seconds for
// in-flight requests.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	if s.ctx == nil {
		s.mu.Unlock()
		return fmt.Errorf("server not started")
	}

	logging.Info("Server", "Stopping MCP server")

	cancelFunc := s.cancelFunc
	sseServer := s.sseServer
	streamableServer := s.streamableHTTPServer
	s.mu.Unlock()

	if cancelFunc != nil {
		cancelFunc()
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if sseServer != nil {
		if err := sseServer.Shutdown(shutdownCtx); err != nil {
			logging.Error("Server", err, "Error shutting down SSE server")
		}
	}
	if streamableServer != nil {
		if err := streamableServer.Shutdown(shutdownCtx); err != nil {
			logging.Error("Server", err, "Error shutting down streamable HTTP server")
		}
	}
	// The stdio server stops on context cancellation.

	s.mu.Lock()
	s.ctx = nil
	s.cancelFunc = nil
	s.sseServer = nil
	s.streamableHTTPServer = nil
	s.stdioServer = nil
	s.mu.Unlock()

	return nil
}

// ParseTransport validates a transport name from configuration.
func ParseTransport(value string) (Transport, error) {
	switch Transport(value) {
	case TransportStdio, TransportSSE, TransportStreamableHTTP:
		return Transport(value), nil
	case "":
		return TransportStdio, nil
	default:
		return "", fmt.Errorf("unsupported transport %q (expected stdio, sse, or streamable-http)", value)
	}
}
