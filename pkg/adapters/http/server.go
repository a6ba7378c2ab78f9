package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/teamtree"
	"github.com/aretw0/teamtree/internal/presentation/graph"
	"github.com/aretw0/teamtree/internal/presentation/tui"
	"github.com/aretw0/teamtree/pkg/domain"
	"github.com/aretw0/teamtree/pkg/hierarchy"
	"github.com/aretw0/teamtree/pkg/ports"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server handles the chart API.
type Server struct {
	Charts  ports.Charts
	Metrics http.Handler
	Logger  *slog.Logger
}

// Option configures the handler.
type Option func(*Server)

// WithMetrics mounts a Prometheus handler at /metrics.
func WithMetrics(h http.Handler) Option {
	return func(s *Server) {
		s.Metrics = h
	}
}

// WithLogger sets the request error logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = logger
	}
}

// CreateChartRequest is the body of POST /charts.
type CreateChartRequest struct {
	ID   string `json:"id"`
	Root string `json:"root"`
}

// InsertRequest is the body of POST /charts/{id}/reports.
type InsertRequest struct {
	Manager  string `json:"manager"`
	Employee string `json:"employee"`
	Side     string `json:"side"`
}

// InsertResponse reports an insertion outcome.
type InsertResponse struct {
	domain.Outcome
	Message string `json:"message"`
}

// RenderResponse lists the pre-order rendering of a chart.
type RenderResponse struct {
	ID      string            `json:"id"`
	Entries []hierarchy.Entry `json:"entries"`
}

// NewHandler creates the HTTP handler for the chart service.
func NewHandler(charts ports.Charts, opts ...Option) http.Handler {
	s := &Server{
		Charts: charts,
		Logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(enableCORS)

	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	if s.Metrics != nil {
		r.Handle("/metrics", s.Metrics)
	}

	r.Route("/charts", func(r chi.Router) {
		r.Get("/", s.ListCharts)
		r.Post("/", s.CreateChart)
		r.Route("/{chartID}", func(r chi.Router) {
			r.Get("/", s.GetChart)
			r.Post("/reports", s.Insert)
			r.Get("/render", s.Render)
			r.Get("/graph", s.Graph)
		})
	})

	return r
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ListCharts handles GET /charts.
func (s *Server) ListCharts(w http.ResponseWriter, r *http.Request) {
	ids, err := s.Charts.List(r.Context())
	if err != nil {
		s.fail(w, "List failed", err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	s.writeJSON(w, http.StatusOK, map[string][]string{"charts": ids})
}

// CreateChart handles POST /charts.
func (s *Server) CreateChart(w http.ResponseWriter, r *http.Request) {
	var body CreateChartRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.Logger.Warn("CreateChart: Invalid request body", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if body.ID == "" || body.Root == "" {
		http.Error(w, "id and root are required", http.StatusBadRequest)
		return
	}

	tree, err := s.Charts.Create(r.Context(), body.ID, body.Root)
	if err != nil {
		if errors.Is(err, domain.ErrRootExists) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		s.fail(w, "Create failed", err)
		return
	}
	s.writeJSON(w, http.StatusCreated, tree.Snapshot(body.ID))
}

// GetChart handles GET /charts/{chartID}.
func (s *Server) GetChart(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "chartID")
	tree, ok := s.load(w, r, id)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, tree.Snapshot(id))
}

// Insert handles POST /charts/{chartID}/reports.
func (s *Server) Insert(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "chartID")

	var body InsertRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.Logger.Warn("Insert: Invalid request body", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	out, err := s.Charts.Insert(r.Context(), id, body.Manager, body.Employee, domain.ParseSide(body.Side))
	if err != nil {
		s.fail(w, "Insert failed", err)
		return
	}

	s.writeJSON(w, outcomeStatus(out.Kind), InsertResponse{Outcome: out, Message: tui.Message(out)})
}

// Render handles GET /charts/{chartID}/render.
// ?format=text returns the indented plain-text rendering.
func (s *Server) Render(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "chartID")
	tree, ok := s.load(w, r, id)
	if !ok {
		return
	}

	if strings.EqualFold(r.URL.Query().Get("format"), "text") {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if err := tui.WriteTree(w, tree); err != nil {
			s.Logger.Error("Render write failed", "error", err)
		}
		return
	}

	s.writeJSON(w, http.StatusOK, RenderResponse{ID: id, Entries: tree.Entries()})
}

// Graph handles GET /charts/{chartID}/graph.
func (s *Server) Graph(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "chartID")
	tree, ok := s.load(w, r, id)
	if !ok {
		return
	}

	var highlight *graph.Highlight
	if names := r.URL.Query()["highlight"]; len(names) > 0 {
		highlight = &graph.Highlight{Names: names}
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(graph.GenerateMermaid(tree.Snapshot(id).Root, highlight)))
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"app":     "teamtree-http",
		"version": strings.TrimSpace(teamtree.Version),
	})
}

func (s *Server) load(w http.ResponseWriter, r *http.Request, id string) (*hierarchy.Tree, bool) {
	tree, err := s.Charts.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrChartNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return nil, false
		}
		s.fail(w, "Load failed", err)
		return nil, false
	}
	return tree, true
}

func (s *Server) fail(w http.ResponseWriter, msg string, err error) {
	s.Logger.Error(msg, "error", err)
	http.Error(w, msg, http.StatusInternalServerError)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("Response encode failed", "error", err)
	}
}

func outcomeStatus(kind domain.OutcomeKind) int {
	switch kind {
	case domain.OutcomeInserted:
		return http.StatusCreated
	case domain.OutcomeSlotOccupied, domain.OutcomeEmptyTree:
		return http.StatusConflict
	case domain.OutcomeManagerNotFound:
		return http.StatusNotFound
	case domain.OutcomeInvalidSide:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
