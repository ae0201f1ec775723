// Package mcp exposes machine sessions as Model Context Protocol tools.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/internal/presentation/graph"
	"github.com/aretw0/turing/pkg/catalog"
	"github.com/aretw0/turing/pkg/session"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const programsURI = "turing://programs"

// ProgramInfo summarises a catalog program.
type ProgramInfo struct {
	Name    string   `json:"name" jsonschema_description:"Program name, used by new_machine"`
	Summary string   `json:"summary" jsonschema_description:"One line description"`
	Initial string   `json:"initial" jsonschema_description:"Initial control state"`
	States  []string `json:"states" jsonschema_description:"Control states in order of appearance"`
	Rules   int      `json:"rules" jsonschema_description:"Number of transition rules"`
}

// ProgramList is the result of list_programs.
type ProgramList struct {
	Programs []ProgramInfo `json:"programs"`
}

// MachineResponse aligns with the HTTP API and provides a unified structure across adapters.
type MachineResponse struct {
	ID      string `json:"id" jsonschema_description:"Session ID of the machine"`
	Program string `json:"program" jsonschema_description:"Program the machine runs"`
	State   string `json:"state" jsonschema_description:"Current control state"`
	Head    int    `json:"head" jsonschema_description:"Logical head position"`
	Steps   int    `json:"steps" jsonschema_description:"Transitions applied so far"`
	Halted  bool   `json:"halted" jsonschema_description:"Indicates that no rule matches the current state and symbol"`
	Tape    string `json:"tape" jsonschema_description:"Two-line textual view of the tape"`
}

func newMachineResponse(v session.View) MachineResponse {
	return MachineResponse{
		ID:      v.ID,
		Program: v.Program,
		State:   v.Snapshot.State,
		Head:    v.Snapshot.Head,
		Steps:   v.Snapshot.Steps,
		Halted:  v.Snapshot.Halted,
		Tape:    v.Text,
	}
}

// Sessions is the subset of session.Manager used by the server.
type Sessions interface {
	Create(program string) (session.View, error)
	Get(ctx context.Context, id string) (session.View, error)
	Step(ctx context.Context, id string, n int) (session.View, error)
	Run(ctx context.Context, id string, maxSteps int) (session.View, error)
}

// Server wraps the session manager and exposes it as an MCP Server.
type Server struct {
	sessions  Sessions
	maxSteps  int
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
// maxSteps bounds run_machine when the caller gives no limit; zero means
// session.MaxStepsPerRequest.
func NewServer(sessions Sessions, maxSteps int, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if maxSteps <= 0 || maxSteps > session.MaxStepsPerRequest {
		maxSteps = session.MaxStepsPerRequest
	}
	s := &Server{
		sessions:  sessions,
		maxSteps:  maxSteps,
		logger:    logger,
		mcpServer: server.NewMCPServer("turing-mcp", strings.TrimSpace(turing.Version)),
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
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("Shutdown signal received, shutting down server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
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
	s.mcpServer.AddTool(mcp.NewTool("list_programs",
		mcp.WithDescription("List the built-in Turing machine programs."),
		mcp.WithOutputSchema[ProgramList](),
	), mcp.NewStructuredToolHandler(s.handleListPrograms))

	s.mcpServer.AddTool(mcp.NewTool("new_machine",
		mcp.WithDescription("Start a new machine on a blank tape. Returns its session ID."),
		mcp.WithString("program", mcp.Description("Program name (defaults to "+catalog.Default+")")),
		mcp.WithOutputSchema[MachineResponse](),
	), mcp.NewStructuredToolHandler(s.handleNewMachine))

	s.mcpServer.AddTool(mcp.NewTool("step_machine",
		mcp.WithDescription("Apply up to count transitions. A halted machine is left unchanged."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Session ID")),
		mcp.WithNumber("count", mcp.Description("Number of steps (default 1)")),
		mcp.WithOutputSchema[MachineResponse](),
	), mcp.NewStructuredToolHandler(s.handleStepMachine))

	s.mcpServer.AddTool(mcp.NewTool("run_machine",
		mcp.WithDescription("Step the machine until it halts or max steps were applied."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Session ID")),
		mcp.WithNumber("max", mcp.Description("Step limit (defaults to the server limit)")),
		mcp.WithOutputSchema[MachineResponse](),
	), mcp.NewStructuredToolHandler(s.handleRunMachine))

	s.mcpServer.AddTool(mcp.NewTool("view_machine",
		mcp.WithDescription("Return the current state and tape of a machine."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Session ID")),
		mcp.WithOutputSchema[MachineResponse](),
	), mcp.NewStructuredToolHandler(s.handleViewMachine))

	s.mcpServer.AddTool(mcp.NewTool("get_graph",
		mcp.WithDescription("Get the Mermaid state diagram of a program."),
		mcp.WithString("program", mcp.Required(), mcp.Description("Program name")),
	), s.handleGetGraph)
}

func (s *Server) handleListPrograms(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ProgramList, error) {
	var list ProgramList
	for _, p := range catalog.All() {
		list.Programs = append(list.Programs, ProgramInfo{
			Name:    p.Name,
			Summary: p.Summary,
			Initial: p.Initial,
			States:  p.States(),
			Rules:   len(p.Rules),
		})
	}
	return list, nil
}

func (s *Server) handleNewMachine(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (MachineResponse, error) {
	program, _ := args["program"].(string)
	if program == "" {
		program = catalog.Default
	}
	v, err := s.sessions.Create(program)
	if err != nil {
		return MachineResponse{}, fmt.Errorf("new machine failed: %w", err)
	}
	return newMachineResponse(v), nil
}

func (s *Server) handleStepMachine(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (MachineResponse, error) {
	id, _ := args["id"].(string)
	count := intArg(args, "count", 1)
	v, err := s.sessions.Step(ctx, id, count)
	if err != nil {
		return MachineResponse{}, fmt.Errorf("step failed: %w", err)
	}
	return newMachineResponse(v), nil
}

func (s *Server) handleRunMachine(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (MachineResponse, error) {
	id, _ := args["id"].(string)
	limit := intArg(args, "max", s.maxSteps)
	v, err := s.sessions.Run(ctx, id, limit)
	if err != nil {
		return MachineResponse{}, fmt.Errorf("run failed: %w", err)
	}
	return newMachineResponse(v), nil
}

func (s *Server) handleViewMachine(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (MachineResponse, error) {
	id, _ := args["id"].(string)
	v, err := s.sessions.Get(ctx, id)
	if err != nil {
		return MachineResponse{}, fmt.Errorf("view failed: %w", err)
	}
	return newMachineResponse(v), nil
}

func (s *Server) handleGetGraph(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, _ := request.GetArguments()["program"].(string)
	p, err := catalog.Lookup(name)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(graph.GenerateMermaid(p.Initial, p.Rules, nil)), nil
}

// intArg reads a JSON number argument clamped to session.MaxStepsPerRequest.
// Missing or non-positive values fall back to def.
func intArg(args map[string]interface{}, key string, def int) int {
	n := def
	switch v := args[key].(type) {
	case float64:
		if v >= 1 {
			n = int(min(v, session.MaxStepsPerRequest))
		}
	case int:
		if v >= 1 {
			n = v
		}
	}
	return min(n, session.MaxStepsPerRequest)
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(programsURI, "Built-in Programs",
		mcp.WithMIMEType("application/json"),
	), s.handleProgramsResource)
}

func (s *Server) handleProgramsResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	jsonBytes, err := json.Marshal(catalog.All())
	if err != nil {
		return nil, fmt.Errorf("failed to encode programs: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      programsURI,
			MIMEType: "application/json",
			Text:     string(jsonBytes),
		},
	}, nil
}
