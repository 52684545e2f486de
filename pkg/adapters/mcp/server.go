package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/aretw0/sortvis"
	"github.com/aretw0/sortvis/pkg/dataset"
	"github.com/aretw0/sortvis/pkg/domain"
	"github.com/aretw0/sortvis/pkg/pacing"
	"github.com/aretw0/sortvis/pkg/ports"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// MaxValues bounds the arrays accepted or generated by a tool call.
const MaxValues = 1000

// ArrayResponse is the result of gen_array.
type ArrayResponse struct {
	Values []int `json:"values" jsonschema_description:"A random permutation of 1..n"`
}

// StepsResponse is the result of build_steps.
type StepsResponse struct {
	Algorithm domain.Algorithm  `json:"algorithm"`
	Count     int               `json:"count" jsonschema_description:"Number of steps"`
	Steps     []domain.WireStep `json:"steps" jsonschema_description:"Tagged steps in replay order"`
}

// IntervalResponse is the result of compute_interval.
type IntervalResponse struct {
	Speed      float64 `json:"speed" jsonschema_description:"The clamped speed"`
	IntervalMS int     `json:"interval_ms" jsonschema_description:"Tick period in milliseconds"`
}

// SimulateResponse is the result of simulate.
type SimulateResponse struct {
	StepCount int             `json:"step_count"`
	Snapshot  domain.Snapshot `json:"snapshot" jsonschema_description:"Board state after the last step"`
}

// Server wraps the replay engine and exposes it as an MCP Server.
type Server struct {
	engine    ports.Replayer
	gen       *dataset.Generator
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(engine ports.Replayer, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		engine:    engine,
		gen:       dataset.NewGenerator(),
		logger:    logger,
		mcpServer: server.NewMCPServer("sortvis-mcp", strings.TrimSpace(sortvis.Version)),
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
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: gen_array
	s.mcpServer.AddTool(mcp.NewTool("gen_array",
		mcp.WithDescription("Generate a uniformly shuffled permutation of 1..n."),
		mcp.WithNumber("n", mcp.Required(), mcp.Description("Array size, clamped to [0, 1000]")),
		mcp.WithString("seed", mcp.Description("Decimal uint64 seed for a reproducible permutation (optional)")),
		mcp.WithOutputSchema[ArrayResponse](),
	), mcp.NewStructuredToolHandler(s.handleGenArray))

	// TOOL: build_steps
	s.mcpServer.AddTool(mcp.NewTool("build_steps",
		mcp.WithDescription("Build the full visualization step list of a sort over the given values."),
		mcp.WithString("algorithm", mcp.Required(), mcp.Enum("bubble", "quick"), mcp.Description("Sorting algorithm")),
		mcp.WithString("values", mcp.Required(), mcp.Description("JSON array of integers")),
		mcp.WithOutputSchema[StepsResponse](),
	), mcp.NewStructuredToolHandler(s.handleBuildSteps))

	// TOOL: compute_interval
	s.mcpServer.AddTool(mcp.NewTool("compute_interval",
		mcp.WithDescription("Compute the animation tick period for a speed setting."),
		mcp.WithNumber("speed", mcp.Required(), mcp.Description("Speed multiplier, clamped to [0.2, 10]")),
		mcp.WithOutputSchema[IntervalResponse](),
	), mcp.NewStructuredToolHandler(s.handleComputeInterval))

	// TOOL: simulate
	s.mcpServer.AddTool(mcp.NewTool("simulate",
		mcp.WithDescription("Replay every step of a sort and return the final board."),
		mcp.WithString("algorithm", mcp.Required(), mcp.Enum("bubble", "quick"), mcp.Description("Sorting algorithm")),
		mcp.WithString("values", mcp.Required(), mcp.Description("JSON array of integers")),
		mcp.WithOutputSchema[SimulateResponse](),
	), mcp.NewStructuredToolHandler(s.handleSimulate))
}

// Handler methods for structured tools

func (s *Server) handleGenArray(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (ArrayResponse, error) {
	n, _ := args["n"].(float64)
	gen := s.gen
	if raw, ok := args["seed"]; ok {
		seed, err := parseSeed(raw)
		if err != nil {
			s.logger.Warn("MCP gen_array: seed rejected", "error", err)
			return ArrayResponse{}, err
		}
		gen = dataset.NewSeededGenerator(seed)
	}
	return ArrayResponse{Values: gen.GenArray(clampCount(n))}, nil
}

// clampCount maps a requested array size onto [0, MaxValues].
func clampCount(n float64) int {
	switch {
	case math.IsNaN(n), n <= 0:
		return 0
	case n >= MaxValues:
		return MaxValues
	}
	return int(n)
}

// maxExactSeed is the largest integer a JSON number carries without rounding.
const maxExactSeed = 1 << 53

// parseSeed accepts a decimal string for the full uint64 range, or a JSON
// number when it is a non-negative integer that float64 holds exactly.
func parseSeed(raw any) (uint64, error) {
	switch v := raw.(type) {
	case string:
		seed, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("seed must be a decimal uint64: %w", err)
		}
		return seed, nil
	case float64:
		if v < 0 || v > maxExactSeed || v != math.Trunc(v) {
			return 0, fmt.Errorf("numeric seed must be an integer in [0, %d]; pass larger seeds as a string", uint64(maxExactSeed))
		}
		return uint64(v), nil
	default:
		return 0, fmt.Errorf("seed must be a string or integer, got %T", raw)
	}
}

func (s *Server) handleBuildSteps(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (StepsResponse, error) {
	alg, values, err := sortArgs(args)
	if err != nil {
		s.logger.Warn("MCP build_steps: arguments rejected", "error", err)
		return StepsResponse{}, err
	}
	list, err := s.engine.BuildSteps(ctx, alg, values)
	if err != nil {
		return StepsResponse{}, fmt.Errorf("build steps failed: %w", err)
	}
	return StepsResponse{Algorithm: alg, Count: len(list), Steps: domain.WireSteps(list)}, nil
}

func (s *Server) handleComputeInterval(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (IntervalResponse, error) {
	speed, ok := args["speed"].(float64)
	if !ok {
		speed = pacing.DefaultSpeed
	}
	clamped := pacing.ClampSpeed(speed)
	return IntervalResponse{Speed: clamped, IntervalMS: pacing.IntervalMS(clamped)}, nil
}

func (s *Server) handleSimulate(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (SimulateResponse, error) {
	alg, values, err := sortArgs(args)
	if err != nil {
		s.logger.Warn("MCP simulate: arguments rejected", "error", err)
		return SimulateResponse{}, err
	}
	snap, err := s.engine.Simulate(ctx, alg, values)
	if err != nil {
		return SimulateResponse{}, fmt.Errorf("simulate failed: %w", err)
	}
	return SimulateResponse{StepCount: snap.StepCount, Snapshot: snap}, nil
}

func sortArgs(args map[string]interface{}) (domain.Algorithm, []int, error) {
	name, _ := args["algorithm"].(string)
	alg, err := domain.ParseAlgorithm(name)
	if err != nil {
		return "", nil, err
	}
	raw, _ := args["values"].(string)
	var values []int
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return "", nil, fmt.Errorf("values must be a JSON array of integers: %w", err)
	}
	if len(values) > MaxValues {
		return "", nil, fmt.Errorf("too many values: at most %d", MaxValues)
	}
	return alg, values, nil
}

func (s *Server) registerResources() {
	// EXPOSE: sortvis://pacing
	s.mcpServer.AddResource(mcp.NewResource("sortvis://pacing", "Pacing and size constants",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, _ := json.Marshal(map[string]any{
			"algorithms":        domain.Algorithms(),
			"base_step_ms":      pacing.BaseStepMS,
			"speed_coefficient": pacing.SpeedCoefficient,
			"min_timer_ms":      pacing.MinTimerMS,
			"min_speed":         pacing.MinSpeed,
			"max_speed":         pacing.MaxSpeed,
			"min_size":          dataset.MinSize,
			"max_size":          dataset.MaxSize,
			"default_size":      dataset.DefaultSize,
		})

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "sortvis://pacing",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
