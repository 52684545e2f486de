package http

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/aretw0/sortvis"
	"github.com/aretw0/sortvis/pkg/dataset"
	"github.com/aretw0/sortvis/pkg/domain"
	"github.com/aretw0/sortvis/pkg/pacing"
	"github.com/aretw0/sortvis/pkg/ports"
	"github.com/aretw0/sortvis/pkg/runner"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

//go:embed openapi.yaml
var rawSpec []byte

// MaxValues bounds the size of arrays accepted or generated per request.
const MaxValues = 1000

const tracerName = "github.com/aretw0/sortvis/pkg/adapters/http"

// Server serves the stateless replay API and live SSE replays.
type Server struct {
	Engine ports.Replayer

	logger     *slog.Logger
	tracer     trace.Tracer
	gatherer   prometheus.Gatherer
	runnerOpts []runner.Option
	spec       *openapi3.T
}

// Option configures the HTTP server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithTracerProvider overrides the global OpenTelemetry provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *Server) {
		s.tracer = tp.Tracer(tracerName)
	}
}

// WithMetrics exposes g on GET /metrics.
func WithMetrics(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.gatherer = g
	}
}

// WithRunnerOptions are applied to every runner started by GET /stream,
// before the per-request size, speed and seed.
func WithRunnerOptions(opts ...runner.Option) Option {
	return func(s *Server) {
		s.runnerOpts = append(s.runnerOpts, opts...)
	}
}

// NewHandler creates a new HTTP handler for the engine.
// It fails if the embedded OpenAPI document is invalid.
func NewHandler(engine ports.Replayer, opts ...Option) (http.Handler, error) {
	spec, err := LoadSpec(context.Background())
	if err != nil {
		return nil, err
	}
	s := &Server{
		Engine: engine,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		tracer: otel.GetTracerProvider().Tracer(tracerName),
		spec:   spec,
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(enableCORS)

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(rawSpec)
	})
	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Get("/array", s.GenArray)
	r.Post("/steps", s.BuildSteps)
	r.Get("/interval", s.ComputeInterval)
	r.Post("/simulate", s.Simulate)
	r.Get("/stream", s.Stream)
	if s.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}
	return r, nil
}

// LoadSpec parses and validates the embedded OpenAPI document.
func LoadSpec(ctx context.Context) (*openapi3.T, error) {
	doc, err := openapi3.NewLoader().LoadFromData(rawSpec)
	if err != nil {
		return nil, fmt.Errorf("failed to parse openapi spec: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("invalid openapi spec: %w", err)
	}
	return doc, nil
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// SortRequest is the body of POST /steps and POST /simulate.
type SortRequest struct {
	Algorithm string `json:"algorithm"`
	Values    []int  `json:"values"`
}

// StepsResponse is the body returned by POST /steps.
type StepsResponse struct {
	Algorithm domain.Algorithm  `json:"algorithm"`
	Count     int               `json:"count"`
	Steps     []domain.WireStep `json:"steps"`
}

// SimulateResponse is the body returned by POST /simulate.
type SimulateResponse struct {
	StepCount int             `json:"step_count"`
	Snapshot  domain.Snapshot `json:"snapshot"`
}

// IntervalResponse is the body returned by GET /interval.
type IntervalResponse struct {
	Speed      float64 `json:"speed"`
	IntervalMS int     `json:"interval_ms"`
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.logger, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	apiVersion := "unknown"
	if s.spec.Info != nil {
		apiVersion = s.spec.Info.Version
	}
	writeJSON(w, s.logger, map[string]any{
		"app":         "sortvis-http",
		"version":     strings.TrimSpace(sortvis.Version),
		"api_version": apiVersion,
		"algorithms":  domain.Algorithms(),
	})
}

// GenArray handles the GET /array request.
func (s *Server) GenArray(w http.ResponseWriter, r *http.Request) {
	n, err := queryInt(r, "n", dataset.DefaultSize)
	if err != nil || n < 0 || n > MaxValues {
		http.Error(w, fmt.Sprintf("Invalid size: n must be within [0, %d]", MaxValues), http.StatusBadRequest)
		return
	}
	gen, err := generatorFor(r)
	if err != nil {
		http.Error(w, "Invalid seed", http.StatusBadRequest)
		return
	}
	writeJSON(w, s.logger, map[string][]int{"values": gen.GenArray(n)})
}

// BuildSteps handles the POST /steps request.
func (s *Server) BuildSteps(w http.ResponseWriter, r *http.Request) {
	alg, values, ok := s.decodeSortRequest(w, r)
	if !ok {
		return
	}

	ctx, span := s.startSpan(r.Context(), "steps.build", alg, values)
	defer span.End()

	list, err := s.Engine.BuildSteps(ctx, alg, values)
	if err != nil {
		s.fail(w, span, "BuildSteps", err)
		return
	}
	span.SetAttributes(attribute.Int("sortvis.step_count", len(list)))

	writeJSON(w, s.logger, StepsResponse{
		Algorithm: alg,
		Count:     len(list),
		Steps:     domain.WireSteps(list),
	})
}

// Simulate handles the POST /simulate request.
func (s *Server) Simulate(w http.ResponseWriter, r *http.Request) {
	alg, values, ok := s.decodeSortRequest(w, r)
	if !ok {
		return
	}

	ctx, span := s.startSpan(r.Context(), "steps.simulate", alg, values)
	defer span.End()

	snap, err := s.Engine.Simulate(ctx, alg, values)
	if err != nil {
		s.fail(w, span, "Simulate", err)
		return
	}
	span.SetAttributes(attribute.Int("sortvis.step_count", snap.StepCount))

	writeJSON(w, s.logger, SimulateResponse{StepCount: snap.StepCount, Snapshot: snap})
}

// ComputeInterval handles the GET /interval request.
func (s *Server) ComputeInterval(w http.ResponseWriter, r *http.Request) {
	speed := pacing.DefaultSpeed
	if raw := r.URL.Query().Get("speed"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			http.Error(w, "Invalid speed", http.StatusBadRequest)
			return
		}
		speed = v
	}
	clamped := pacing.ClampSpeed(speed)
	writeJSON(w, s.logger, IntervalResponse{Speed: clamped, IntervalMS: pacing.IntervalMS(clamped)})
}

func (s *Server) decodeSortRequest(w http.ResponseWriter, r *http.Request) (domain.Algorithm, []int, bool) {
	var body SortRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("Invalid request body", "path", r.URL.Path, "error", err)
		return "", nil, false
	}
	alg, err := domain.ParseAlgorithm(body.Algorithm)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return "", nil, false
	}
	if len(body.Values) > MaxValues {
		http.Error(w, fmt.Sprintf("Too many values: at most %d", MaxValues), http.StatusBadRequest)
		return "", nil, false
	}
	return alg, body.Values, true
}

func (s *Server) startSpan(ctx context.Context, name string, alg domain.Algorithm, values []int) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, name, trace.WithAttributes(
		attribute.String("sortvis.algorithm", string(alg)),
		attribute.Int("sortvis.size", len(values)),
	))
}

func (s *Server) fail(w http.ResponseWriter, span trace.Span, op string, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	status := http.StatusInternalServerError
	if errors.Is(err, domain.ErrUnknownAlgorithm) {
		status = http.StatusBadRequest
	}
	http.Error(w, fmt.Sprintf("%s error: %v", op, err), status)
	s.logger.Error(op+" failed", "error", err)
}

func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

// generatorFor returns a seeded generator when ?seed= is present.
func generatorFor(r *http.Request) (*dataset.Generator, error) {
	raw := r.URL.Query().Get("seed")
	if raw == "" {
		return dataset.NewGenerator(), nil
	}
	seed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil, err
	}
	return dataset.NewSeededGenerator(seed), nil
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("response encode failed", "error", err)
	}
}
