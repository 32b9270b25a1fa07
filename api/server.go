package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"ecotrack/core/engine"
	"ecotrack/core/types"
	"ecotrack/internal/errors"
	"ecotrack/internal/logging"
)

// Server is the HTTP boundary around the estimation engine
type Server struct {
	engine  *engine.Engine
	router  *mux.Router
	version string
}

// NewServer creates the API server
func NewServer(eng *engine.Engine, version string) *Server {
	s := &Server{
		engine:  eng,
		router:  mux.NewRouter(),
		version: version,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.router.Use(requestLogger)

	s.router.HandleFunc("/api/calc", s.handleCalc).Methods("POST")
	s.router.HandleFunc("/api/refine", s.handleRefine).Methods("POST")
	s.router.HandleFunc("/api/suggest", s.handleSuggest).Methods("POST")
	s.router.HandleFunc("/api/offset", s.handleOffset).Methods("POST")
	s.router.HandleFunc("/health", s.handleHealth).Methods("GET")
	s.router.HandleFunc("/version", s.handleVersion).Methods("GET")
}

// handleCalc computes the rule-based baseline footprint
func (s *Server) handleCalc(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()

	var input types.InputRecord
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		s.writeError(w, requestID, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}
	if err := ValidateInput(&input); err != nil {
		s.writeValidationError(w, requestID, err)
		return
	}

	result := s.engine.Calculate(&input)
	s.writeJSON(w, NewEstimateResponse(requestID, result), http.StatusOK)
}

// handleRefine computes the baseline and applies the refinement
// overlay
func (s *Server) handleRefine(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()

	var input types.InputRecord
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		s.writeError(w, requestID, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}
	if err := ValidateInput(&input); err != nil {
		s.writeValidationError(w, requestID, err)
		return
	}

	result := s.engine.Refine(&input)
	s.writeJSON(w, NewEstimateResponse(requestID, result), http.StatusOK)
}

// handleSuggest generates reduction tips for a breakdown
func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()

	var req SuggestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, requestID, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	result := s.engine.Suggest(req.Breakdown)
	s.writeJSON(w, result, http.StatusOK)
}

// handleOffset prices the offset catalog for a footprint
func (s *Server) handleOffset(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()

	var req OffsetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, requestID, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	result, err := s.engine.Offset(req.FootprintKg)
	if err != nil {
		s.writeValidationError(w, requestID, err)
		return
	}
	s.writeJSON(w, result, http.StatusOK)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"version": s.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version":         s.version,
		"engine":          "ecotrack",
		"factors_version": s.engine.Factors().Version(),
		"factors_hash":    s.engine.Factors().ContentHash()[:8],
	}, http.StatusOK)
}

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logging.Error("failed to encode response", zap.Error(err))
	}
}

// writeValidationError maps typed domain errors to HTTP rejections
func (s *Server) writeValidationError(w http.ResponseWriter, requestID string, err error) {
	if domainErr, ok := err.(*errors.Error); ok {
		s.writeError(w, requestID, string(domainErr.Type), domainErr.Message, http.StatusBadRequest)
		return
	}
	s.writeError(w, requestID, string(errors.TypeInternal), err.Error(), http.StatusInternalServerError)
}

func (s *Server) writeError(w http.ResponseWriter, requestID, code, message string, status int) {
	resp := &ErrorResponse{RequestID: requestID}
	resp.Error.Code = code
	resp.Error.Message = message
	s.writeJSON(w, resp, status)
}

// requestLogger logs each request with its duration
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logging.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)))
	})
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe starts the server
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}
