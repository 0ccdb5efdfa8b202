// Package mcp exposes the change journal and the kind taxonomy to MCP
// clients, over stdio or SSE.
package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	swell "github.com/aretw0/swell"
	"github.com/aretw0/swell/internal/presentation/graph"
	"github.com/aretw0/swell/pkg/domain"
	"github.com/aretw0/swell/pkg/ports"
)

// ChangesResponse is the structured output of the recent_changes tool.
type ChangesResponse struct {
	Changes []domain.Change `json:"changes" jsonschema_description:"Reduced changes, newest first"`
}

// ClassificationResponse is the structured output of the classify_kind tool.
type ClassificationResponse struct {
	Kind       string `json:"kind" jsonschema_description:"The raw kind that was classified"`
	Change     string `json:"change" jsonschema_description:"The change kind it reduces to"`
	Terminates bool   `json:"terminates" jsonschema_description:"Whether this kind closes a wave"`
	Filtered   bool   `json:"filtered" jsonschema_description:"Whether this kind is dropped before buffering"`
}

// Server wraps a change journal and exposes it as an MCP Server.
type Server struct {
	journal   ports.Journal
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance backed by the given journal.
func NewServer(journal ports.Journal) *Server {
	s := &Server{
		journal:   journal,
		mcpServer: server.NewMCPServer("swell-mcp", strings.TrimSpace(swell.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)

	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		// Create a timeout context for the graceful shutdown
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		fmt.Println("\nShutdown signal received, shutting down server...")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slog.Debug("CORS Middleware", "method", r.Method, "path", r.URL.Path)
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: recent_changes
	recentTool := mcp.NewTool("recent_changes",
		mcp.WithDescription("List recent reduced changes, newest first. If limit is omitted or zero, returns everything the journal holds."),
		mcp.WithNumber("limit", mcp.Description("Maximum number of changes to return (optional)")),
		mcp.WithOutputSchema[ChangesResponse](),
	)
	s.mcpServer.AddTool(recentTool, mcp.NewStructuredToolHandler(s.handleRecentChanges))

	// TOOL: classify_kind
	classifyTool := mcp.NewTool("classify_kind",
		mcp.WithDescription("Classify a raw notification kind: the change it reduces to, whether it closes a wave, and whether it is filtered as noise."),
		mcp.WithString("kind", mcp.Required(), mcp.Description("Raw kind name, e.g. copy_node")),
		mcp.WithOutputSchema[ClassificationResponse](),
	)
	s.mcpServer.AddTool(classifyTool, mcp.NewStructuredToolHandler(s.handleClassifyKind))
}

// Handler methods for structured tools

func (s *Server) handleRecentChanges(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ChangesResponse, error) {
	limit := 0
	if raw, ok := args["limit"].(float64); ok {
		limit = int(raw)
	}

	changes, err := s.journal.Recent(ctx, limit)
	if err != nil {
		return ChangesResponse{}, fmt.Errorf("journal read failed: %w", err)
	}
	return ChangesResponse{Changes: changes}, nil
}

func (s *Server) handleClassifyKind(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ClassificationResponse, error) {
	name, _ := args["kind"].(string)
	kind := domain.RawKind(name)

	change, err := domain.Classify(kind)
	if err != nil {
		return ClassificationResponse{}, fmt.Errorf("classify failed: %w", err)
	}

	return ClassificationResponse{
		Kind:       name,
		Change:     string(change),
		Terminates: kind.Terminates(),
		Filtered:   kind == domain.RawNodeUpdate,
	}, nil
}

func (s *Server) registerResources() {
	// EXPOSE: swell://taxonomy
	s.mcpServer.AddResource(mcp.NewResource("swell://taxonomy", "Raw Kind Taxonomy",
		mcp.WithMIMEType("text/markdown"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "swell://taxonomy",
				MIMEType: "text/markdown",
				Text:     graph.Table(),
			},
		}, nil
	})
}
