package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/vinodesignbuild/jobtread-mcp/internal/logger"
)

const (
	// Name is the MCP implementation name.
	Name = "jobtread-mcp"

	// Version is the MCP server version.
	Version = "1.0.0"

	// Endpoint paths served by the HTTP transport.
	PathMCP    = "/mcp"
	PathHealth = "/health"
	PathTools  = "/tools"

	maxRequestBytes = 1 << 20
	shutdownTimeout = 5 * time.Second
)

// Server is the MCP server for JobTread.
type Server struct {
	ports  *Ports
	server *mcp.Server
	tools  []*mcp.Tool
}

// NewServer creates a new MCP server with the given ports.
func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	impl := &mcp.Implementation{
		Name:    Name,
		Version: Version,
	}

	s := &Server{
		ports:  ports,
		server: mcp.NewServer(impl, nil),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Run starts the MCP server over stdio.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) Run(ctx context.Context) error {
	logger.Info("Serving MCP over stdio")
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// Handler returns the HTTP handler: MCP at /mcp plus health, tool
// listing and info.
func (s *Server) Handler() http.Handler {
	streamable := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestSize(maxRequestBytes))
	r.Use(requestLogger)

	r.Get("/", s.handleInfo)
	r.Get(PathHealth, handleHealth)
	r.Get(PathTools, s.handleTools)
	r.Handle(PathMCP, streamable)

	return r
}

// RunHTTP starts the MCP server over HTTP on the specified address.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown when context is cancelled
	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		httpServer.Shutdown(sctx) //nolint:errcheck
	}()

	logger.Info("Serving MCP over HTTP on %s%s", addr, PathMCP)
	err := httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// serverInfo describes the server at the HTTP root.
type serverInfo struct {
	Name      string   `json:"name"`
	Version   string   `json:"version"`
	Protocol  string   `json:"protocol"`
	Tools     []string `json:"tools"`
	Endpoints []string `json:"endpoints"`
}

func (s *Server) handleInfo(w http.ResponseWriter, _ *http.Request) {
	names := make([]string, len(s.tools))
	for i, t := range s.tools {
		names[i] = t.Name
	}
	writeJSON(w, http.StatusOK, serverInfo{
		Name:      Name,
		Version:   Version,
		Protocol:  "Model Context Protocol",
		Tools:     names,
		Endpoints: []string{PathMCP, PathHealth, PathTools},
	})
}

// toolInfo is one entry of the tool listing.
type toolInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// handleTools lists the registered tools for plain HTTP clients.
func (s *Server) handleTools(w http.ResponseWriter, _ *http.Request) {
	tools := make([]toolInfo, len(s.tools))
	for i, t := range s.tools {
		tools[i] = toolInfo{Name: t.Name, Description: t.Description}
	}
	writeJSON(w, http.StatusOK, map[string]any{"tools": tools})
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": Name,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("writing response: %v", err)
	}
}

// requestLogger logs each request in verbose mode.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		logger.Debug("%s %s %d %s", r.Method, r.URL.Path, ww.Status(), time.Since(start))
	})
}
