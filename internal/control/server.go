// Package control exposes the runner over HTTP: score queries for external
// controllers and restart/jump triggers. Triggers never touch the game
// directly; they are handed to the frame loop, which applies them between
// frames.
package control

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Trigger delivers external commands to the frame loop.
type Trigger interface {
	Restart()
	Jump()
}

// Triggers adapts plain functions to Trigger. Nil functions are ignored.
type Triggers struct {
	OnRestart func()
	OnJump    func()
}

// Restart calls OnRestart.
func (t Triggers) Restart() {
	if t.OnRestart != nil {
		t.OnRestart()
	}
}

// Jump calls OnJump.
func (t Triggers) Jump() {
	if t.OnJump != nil {
		t.OnJump()
	}
}

// StatusSource provides the latest game snapshot.
type StatusSource interface {
	Snapshot() core.GameState
}

// Server bundles the router with the game it controls.
type Server struct {
	r       *chi.Mux
	trigger Trigger
	status  StatusSource
	secret  []byte
	logger  *log.Logger
}

// scoreRes is the payload of GET /score.
type scoreRes struct {
	Score      int     `json:"score"`
	HighScore  int     `json:"high_score"`
	Phase      string  `json:"phase"`
	Paused     bool    `json:"paused"`
	Obstacles  int     `json:"obstacles"`
	SpeedScale float64 `json:"speed_scale"`
}

// New constructs a Server. An empty secret disables authentication.
func New(trigger Trigger, status StatusSource, secret string, logger *log.Logger) *Server {
	s := &Server{
		r:       chi.NewRouter(),
		trigger: trigger,
		status:  status,
		logger:  logger,
	}
	if secret != "" {
		s.secret = []byte(secret)
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(5 * time.Second))
	s.r.Use(jsonContentType)
	s.r.Use(s.requestLogger)

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"runner","endpoints":["/health","/score","POST /restart","POST /jump"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	// --- game ---
	s.r.Group(func(r chi.Router) {
		if s.secret != nil {
			r.Use(requireToken(s.secret))
		}
		r.Get("/score", s.handleScore)
		r.Post("/restart", s.handleRestart)
		r.Post("/jump", s.handleJump)
	})

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// Serve listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("control API listening", "addr", addr, "auth", s.secret != nil)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		s.logger.Info("control API stopped")
		return nil
	}
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	st := s.status.Snapshot()
	_ = json.NewEncoder(w).Encode(scoreRes{
		Score:      st.Score,
		HighScore:  st.HighScore,
		Phase:      st.Phase.String(),
		Paused:     st.Paused,
		Obstacles:  st.Obstacles,
		SpeedScale: st.SpeedScale,
	})
}

func (s *Server) handleRestart(w http.ResponseWriter, r *http.Request) {
	s.trigger.Restart()
	w.WriteHeader(http.StatusAccepted)
	_, _ = w.Write([]byte(`{"ok":true}`))
}

func (s *Server) handleJump(w http.ResponseWriter, r *http.Request) {
	s.trigger.Jump()
	w.WriteHeader(http.StatusAccepted)
	_, _ = w.Write([]byte(`{"ok":true}`))
}

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// requestLogger logs every request at debug level.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("control request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"request_id", chimw.GetReqID(r.Context()),
			"duration", time.Since(start),
		)
	})
}

func writeError(w http.ResponseWriter, status int, code string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}
