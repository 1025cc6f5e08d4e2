package mcp

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/diary/pkg/app"
)

// Transport selects the mechanism used to expose the MCP server.
type Transport string

const (
	// TransportHTTP serves MCP via the streamable HTTP transport.
	TransportHTTP Transport = "http"
	// TransportStdio serves MCP over stdio.
	TransportStdio Transport = "stdio"
)

// DefaultListenAddr is used when no HTTP listen address is given.
const DefaultListenAddr = "127.0.0.1:8765"

// Runner serves one diary session over MCP.
type Runner struct {
	App      *app.Service
	Location *time.Location
	Name     string
	Version  string

	Transport        Transport
	HTTPListenAddr   string
	HTTPEndpointPath string
	OnHTTPListening  func(net.Addr)
	HTTPServerCert   string
	HTTPServerKey    string
}

// Do executes the runner. Pending diary writes are flushed when the server
// stops.
func (r Runner) Do(ctx context.Context) error {
	if r.App == nil {
		return errors.New("mcp runner requires a diary session")
	}
	defer r.App.Flush()

	srv := r.newServer()

	switch t := r.Transport; t {
	case "", TransportHTTP:
		return r.serveHTTP(ctx, srv)
	case TransportStdio:
		return server.ServeStdio(srv)
	default:
		return fmt.Errorf("unknown MCP transport %q", t)
	}
}

func (r Runner) newServer() *server.MCPServer {
	name := r.Name
	if name == "" {
		name = "diary"
	}
	version := r.Version
	if version == "" {
		version = "dev"
	}

	srv := server.NewMCPServer(
		fmt.Sprintf("%s MCP", name),
		version,
		server.WithResourceCapabilities(false, false),
		server.WithToolCapabilities(false),
		server.WithInstructions("Read and write a personal diary: daily logs of timestamped entries with mood and tags, plus free-form notes."),
		server.WithRecovery(),
	)

	svc := NewService(r.App, r.Location)
	registerResources(srv, svc)
	registerTools(srv, svc)
	return srv
}

// serveHTTP serves the streamable HTTP transport until ctx ends, then shuts
// the listener down gracefully.
func (r Runner) serveHTTP(ctx context.Context, srv *server.MCPServer) error {
	tls := r.HTTPServerCert != "" || r.HTTPServerKey != ""
	if tls && (r.HTTPServerCert == "" || r.HTTPServerKey == "") {
		return errors.New("mcp: tls needs both a certificate and a key")
	}

	path := r.HTTPEndpointPath
	if path == "" {
		path = "/mcp"
	}
	addr := r.HTTPListenAddr
	if addr == "" {
		addr = DefaultListenAddr
	}

	mux := http.NewServeMux()
	mux.Handle(path, server.NewStreamableHTTPServer(srv))
	hs := &http.Server{Handler: mux, ReadHeaderTimeout: 10 * time.Second}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("mcp: listen on %s: %w", addr, err)
	}
	if r.OnHTTPListening != nil {
		r.OnHTTPListening(ln.Addr())
	}

	served := make(chan error, 1)
	go func() {
		if tls {
			served <- hs.ServeTLS(ln, r.HTTPServerCert, r.HTTPServerKey)
			return
		}
		served <- hs.Serve(ln)
	}()

	select {
	case err := <-served:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := hs.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-served; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
