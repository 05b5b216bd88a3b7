package control

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/core"
)

type fakeStatus struct {
	state core.GameState
}

func (f fakeStatus) Snapshot() core.GameState { return f.state }

type recorder struct {
	restarts int
	jumps    int
}

func newTestServer(secret string) (*Server, *recorder) {
	rec := &recorder{}
	status := fakeStatus{state: core.GameState{
		Phase:      core.PhaseRunning,
		Score:      42,
		HighScore:  300,
		Obstacles:  2,
		SpeedScale: 1.5,
	}}
	trig := Triggers{
		OnRestart: func() { rec.restarts++ },
		OnJump:    func() { rec.jumps++ },
	}
	return New(trig, status, secret, log.New(io.Discard)), rec
}

func do(s *Server, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	s, _ := newTestServer("")
	w := do(s, http.MethodGet, "/health", "")
	if w.Code != http.StatusOK || w.Body.String() != `{"ok":true}` {
		t.Errorf("GET /health = %d %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestScore(t *testing.T) {
	s, _ := newTestServer("")
	w := do(s, http.MethodGet, "/score", "")
	if w.Code != http.StatusOK {
		t.Fatalf("GET /score = %d", w.Code)
	}

	var res scoreRes
	if err := json.NewDecoder(w.Body).Decode(&res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Score != 42 || res.HighScore != 300 || res.Phase != "running" || res.Obstacles != 2 {
		t.Errorf("score response = %+v", res)
	}
}

func TestTriggers(t *testing.T) {
	s, rec := newTestServer("")

	if w := do(s, http.MethodPost, "/restart", ""); w.Code != http.StatusAccepted {
		t.Errorf("POST /restart = %d", w.Code)
	}
	if w := do(s, http.MethodPost, "/jump", ""); w.Code != http.StatusAccepted {
		t.Errorf("POST /jump = %d", w.Code)
	}
	if w := do(s, http.MethodGet, "/restart", ""); w.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET /restart = %d, want 405", w.Code)
	}

	if rec.restarts != 1 || rec.jumps != 1 {
		t.Errorf("restarts %d jumps %d, want 1 and 1", rec.restarts, rec.jumps)
	}
}

func TestNotFound(t *testing.T) {
	s, _ := newTestServer("")
	w := do(s, http.MethodGet, "/nope", "")
	if w.Code != http.StatusNotFound || w.Body.String() != "{\"error\":\"not_found\"}\n" {
		t.Errorf("GET /nope = %d %q", w.Code, w.Body.String())
	}
}

func TestAuth(t *testing.T) {
	const secret = "s3cret"
	s, rec := newTestServer(secret)

	good, err := IssueToken(secret, "controller", time.Minute)
	if err != nil {
		t.Fatalf("IssueToken() failed: %v", err)
	}
	wrong, _ := IssueToken("other", "controller", time.Minute)
	expired, _ := IssueToken(secret, "controller", -time.Minute)

	tests := []struct {
		name  string
		token string
		want  int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"garbage", "not-a-jwt", http.StatusUnauthorized},
		{"wrong secret", wrong, http.StatusUnauthorized},
		{"expired", expired, http.StatusUnauthorized},
		{"valid", good, http.StatusAccepted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := do(s, http.MethodPost, "/restart", tt.token); w.Code != tt.want {
				t.Errorf("POST /restart = %d, want %d", w.Code, tt.want)
			}
		})
	}

	if rec.restarts != 1 {
		t.Errorf("restarts = %d, want 1", rec.restarts)
	}

	// Health stays public
	if w := do(s, http.MethodGet, "/health", ""); w.Code != http.StatusOK {
		t.Errorf("GET /health = %d with auth enabled", w.Code)
	}
}

func TestIssueTokenWithoutSecret(t *testing.T) {
	if _, err := IssueToken("", "x", time.Minute); err != ErrNoSecret {
		t.Errorf("err = %v, want ErrNoSecret", err)
	}
}
