package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/search"
)

// DefaultMaxLimit caps the depth limit a client may request.
const DefaultMaxLimit = 64

// RequestIDHeader carries the id assigned to each search request.
const RequestIDHeader = "X-Request-ID"

// Option configures a Server.
type Option func(*Options)

// Options holds Server parameters.
type Options struct {
	Logger   *slog.Logger
	MaxLimit int
}

// DefaultOptions returns a discard logger and DefaultMaxLimit.
func DefaultOptions() Options {
	return Options{
		Logger:   slog.New(slog.DiscardHandler),
		MaxLimit: DefaultMaxLimit,
	}
}

// WithLogger sets the request logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxLimit sets the largest accepted depth limit. Values below zero are ignored.
func WithMaxLimit(n int) Option {
	return func(o *Options) {
		if n >= 0 {
			o.MaxLimit = n
		}
	}
}

// SearchRequest is the body of POST /search. An empty algorithm selects
// bi-directional search; a nil limit selects search.DefaultDepthLimit.
type SearchRequest struct {
	Start     core.State `json:"start"`
	Goal      core.State `json:"goal"`
	Algorithm string     `json:"algorithm"`
	Limit     *int       `json:"limit,omitempty"`
}

// SearchResponse reports one run. Depth, Cost and Path are zero values unless
// Outcome is "found".
type SearchResponse struct {
	ID        string       `json:"id"`
	Algorithm string       `json:"algorithm"`
	Outcome   string       `json:"outcome"`
	Depth     int          `json:"depth"`
	Cost      int64        `json:"cost"`
	Path      []core.State `json:"path"`
	Expanded  int          `json:"expanded"`
	Generated int          `json:"generated"`
	ElapsedMS float64      `json:"elapsed_ms"`
}

// GraphInfo is the body of GET /graph.
type GraphInfo struct {
	Kind   string `json:"kind"`
	States int    `json:"states"`
	Edges  int    `json:"edges"`
}

// Server exposes a graph over HTTP.
type Server struct {
	app   *fiber.App
	graph *core.Graph
	opts  Options
}

// New builds the fiber app and registers the routes.
func New(g *core.Graph, opts ...Option) *Server {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &Server{
		app:   fiber.New(fiber.Config{AppName: "lvsearch"}),
		graph: g,
		opts:  o,
	}

	s.app.Get("/healthz", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	s.app.Get("/graph", s.handleGraph)
	s.app.Post("/search", s.handleSearch)

	return s
}

// App returns the underlying fiber app, e.g. for app.Test.
func (s *Server) App() *fiber.App { return s.app }

// Listen serves on addr until Shutdown is called.
func (s *Server) Listen(addr string) error {
	s.opts.Logger.Info("listening", slog.String("addr", addr), slog.Int("states", s.graph.Len()))
	return s.app.Listen(addr, fiber.ListenConfig{DisableStartupMessage: true})
}

// Shutdown stops the server, waiting for in-flight requests until ctx is done.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

func (s *Server) handleGraph(c fiber.Ctx) error {
	return c.JSON(GraphInfo{
		Kind:   s.graph.Kind().String(),
		States: s.graph.Len(),
		Edges:  s.graph.EdgeCount(),
	})
}

func (s *Server) handleSearch(c fiber.Ctx) error {
	id := uuid.NewString()
	c.Set(RequestIDHeader, id)

	var req SearchRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	st, err := parseAlgorithm(req.Algorithm)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	popts := []search.Option{search.WithLogger(s.opts.Logger.With(slog.String("request_id", id)))}
	if req.Limit != nil {
		if *req.Limit > s.opts.MaxLimit {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("limit %d exceeds maximum %d", *req.Limit, s.opts.MaxLimit),
			})
		}
		popts = append(popts, search.WithDepthLimit(*req.Limit))
	}

	p, err := search.NewProblem(req.Start, req.Goal, s.graph, popts...)
	switch {
	case errors.Is(err, search.ErrStartStateNotFound), errors.Is(err, search.ErrGoalStateNotFound):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	case err != nil:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	began := time.Now()
	res := p.Run(st)
	elapsed := time.Since(began)

	s.opts.Logger.LogAttrs(c.Context(), slog.LevelInfo, "search",
		slog.String("request_id", id),
		slog.String("strategy", st.String()),
		slog.String("outcome", res.Outcome.String()),
		slog.Duration("elapsed", elapsed),
	)

	return c.JSON(newSearchResponse(id, st, res, elapsed))
}

// parseAlgorithm accepts the strategies of search.Strategies; tree search is
// not served because its frontier is unbounded on cyclic graphs.
func parseAlgorithm(name string) (search.Strategy, error) {
	if name == "" {
		return search.BiDirectional, nil
	}
	st, err := search.ParseStrategy(name)
	if err != nil {
		return 0, err
	}
	for _, allowed := range search.Strategies() {
		if st == allowed {
			return st, nil
		}
	}
	return 0, fmt.Errorf("%w: %q is not served", search.ErrUnknownStrategy, name)
}

func newSearchResponse(id string, st search.Strategy, res search.Result, elapsed time.Duration) SearchResponse {
	out := SearchResponse{
		ID:        id,
		Algorithm: st.String(),
		Outcome:   res.Outcome.String(),
		Path:      []core.State{},
		Expanded:  res.Stats.Expanded,
		Generated: res.Stats.Generated,
		ElapsedMS: float64(elapsed.Microseconds()) / 1000,
	}
	if res.Found() {
		out.Depth = res.Node.Depth
		out.Cost = res.Node.Cost
		out.Path = res.Path()
	}
	return out
}
