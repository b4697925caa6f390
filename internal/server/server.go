package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-tailoring/internal/db"
	"github.com/jonathan/resume-tailoring/internal/gapanalysis"
	"github.com/jonathan/resume-tailoring/internal/llm"
	"github.com/jonathan/resume-tailoring/internal/skills"
	"github.com/jonathan/resume-tailoring/internal/strategies"
)

// Server represents the HTTP server.
type Server struct {
	httpServer *http.Server
	engine     *gapanalysis.Engine
	builder    *strategies.Builder
	store      *sessionStore
	client     llm.Client
	db         *db.DB // nil when persistence is disabled
}

// Config holds server configuration. DatabaseURL is optional; without it
// finished sessions are not persisted.
type Config struct {
	Port            int
	APIKey          string
	DatabaseURL     string
	AnalysisTimeout time.Duration
	LLMConfig       *llm.Config
}

// New creates a new server instance.
func New(cfg Config) (*Server, error) {
	client, err := llm.NewClient(context.Background(), cfg.LLMConfig, cfg.APIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	var database *db.DB
	if cfg.DatabaseURL != "" {
		database, err = db.Connect(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
	}

	engine := gapanalysis.NewEngine(client).WithTimeout(cfg.AnalysisTimeout)
	builder := strategies.NewBuilder(strategies.NewRegistry(skills.NewLLMExtractor(client)))

	s := newServer(cfg.Port, engine, builder, database)
	s.client = client
	return s, nil
}

// newServer wires the router around pre-built collaborators. Tests use it
// to inject a fake analysis engine and a nil database.
func newServer(port int, engine *gapanalysis.Engine, builder *strategies.Builder, database *db.DB) *Server {
	s := &Server{
		engine:  engine,
		builder: builder,
		store:   newSessionStore(),
		db:      database,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /analyze", s.handleAnalyze)
	mux.HandleFunc("GET /sessions/{id}", s.handleGetSession)
	mux.HandleFunc("POST /sessions/{id}/response", s.handleSubmitResponse)
	mux.HandleFunc("POST /sessions/{id}/accept", s.handleAccept)
	mux.HandleFunc("POST /sessions/{id}/reject", s.handleReject)
	mux.HandleFunc("POST /sessions/{id}/skip", s.handleSkip)
	mux.HandleFunc("POST /sessions/{id}/navigate", s.handleNavigate)
	mux.HandleFunc("POST /sessions/{id}/select", s.handleSelectGap)
	mux.HandleFunc("POST /sessions/{id}/finalize", s.handleFinalize)
	mux.HandleFunc("GET /sessions/{id}/resume", s.handleGetResume)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // analysis calls can run long
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Start begins listening and blocks until shutdown. SIGINT and SIGTERM
// trigger a graceful drain.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	var g errgroup.Group
	g.Go(func() error {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-stop
		log.Println("Shutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	})

	err := g.Wait()

	if s.db != nil {
		s.db.Close()
	}
	if s.client != nil {
		if cerr := s.client.Close(); cerr != nil {
			log.Printf("Error closing LLM client: %v", cerr)
		}
	}
	log.Println("Server stopped")
	return err
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
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

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// failWith maps the error to its HTTP status and writes it.
func (s *Server) failWith(w http.ResponseWriter, err error) {
	s.errorResponse(w, HTTPStatus(err), err.Error())
}
