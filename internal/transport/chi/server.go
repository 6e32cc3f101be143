package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/grazioso-salvare/shelterdex/internal/domain"
	"github.com/grazioso-salvare/shelterdex/internal/logger"
	animaluc "github.com/grazioso-salvare/shelterdex/internal/usecase/animal"
	healthuc "github.com/grazioso-salvare/shelterdex/internal/usecase/health"
	provisionuc "github.com/grazioso-salvare/shelterdex/internal/usecase/provision"
)

// Error codes returned in the JSON error body.
const (
	codeBadRequest         = "bad_request"
	codeUnknownFilter      = "unknown_filter"
	codeCollectionNotFound = "collection_not_found"
	codeInvalidValidator   = "invalid_validator"
	codeIndexConflict      = "index_conflict"
	codeInternalError      = "internal_error"
)

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server exposes the rescue-match API over chi.
type Server struct {
	animals       *animaluc.Service
	provision     *provisionuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	animals *animaluc.Service,
	provision *provisionuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		animals:   animals,
		provision: provision,
		health:    health,
		logger:    logger,
	}
	// The provision usecase translates db sentinels to domain errors, so the
	// chain only handles the domain vocabulary.
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrUnknownFilter, http.StatusBadRequest, codeUnknownFilter),
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, codeCollectionNotFound),
		sentinelHandler(domain.ErrInvalidSchema, http.StatusBadRequest, codeInvalidValidator),
		sentinelHandler(domain.ErrIndexConflict, http.StatusConflict, codeIndexConflict),
	}
	return s
}

// Register mounts all routes on the router.
func (s *Server) Register(r chi.Router) {
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/rescue-types", s.ListRescueTypes)
		r.Get("/animals", s.ListAnimals)
		r.Get("/animals/stats/breeds", s.BreedStats)
		r.Get("/animals/stats/sex", s.SexStats)
		r.Get("/animals/stats/age", s.AgeStats)
		r.Post("/admin/provision", s.Provision)
	})
}

// ListRescueTypes handles GET /v1/rescue-types.
func (s *Server) ListRescueTypes(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]domain.FilterType{
		"rescue_types": s.animals.RescueTypes(),
	})
}

// ListAnimals handles GET /v1/animals.
func (s *Server) ListAnimals(w http.ResponseWriter, r *http.Request) {
	page, err := intQuery(r, "page", 1)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}
	pageSize, err := intQuery(r, "page_size", 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}

	result, err := s.animals.List(r.Context(), r.URL.Query().Get("filter"), page, pageSize)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// BreedStats handles GET /v1/animals/stats/breeds.
func (s *Server) BreedStats(w http.ResponseWriter, r *http.Request) {
	out, err := s.animals.BreedStats(r.Context(), r.URL.Query().Get("filter"))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"breeds": out})
}

// SexStats handles GET /v1/animals/stats/sex.
func (s *Server) SexStats(w http.ResponseWriter, r *http.Request) {
	out, err := s.animals.SexStats(r.Context(), r.URL.Query().Get("filter"))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"sex": out})
}

// AgeStats handles GET /v1/animals/stats/age.
func (s *Server) AgeStats(w http.ResponseWriter, r *http.Request) {
	out, err := s.animals.AgeStats(r.Context(), r.URL.Query().Get("filter"))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"age": out})
}

// Provision handles POST /v1/admin/provision: applies the validator and
// builds the secondary indexes on the outcomes collection.
func (s *Server) Provision(w http.ResponseWriter, r *http.Request) {
	if err := s.provision.Apply(r.Context()); err != nil {
		s.logger.Error("Provisioning failed", zap.Error(err))
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "provisioned"})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	status, healthy := s.health.Check(r.Context())
	code := http.StatusOK
	if !healthy {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, status)
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func intQuery(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, errors.New(name + " must be a non-negative integer")
	}
	return v, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Code: code, Message: message})
}

// sentinelHandler maps a sentinel error to an HTTP status and error code.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	for _, h := range s.errorHandlers {
		if h(w, err, err.Error()) {
			return
		}
	}
	// The request-scoped logger carries the request id when the wide-event
	// middleware is mounted.
	logger.FromContext(r.Context()).Error("Unhandled error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
