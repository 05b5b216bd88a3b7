package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("runner %s: %v\n%s", strings.Join(args, " "), err, out.String())
	}
	return out.String()
}

func TestListCommand(t *testing.T) {
	out := execute(t, "list")
	for _, want := range []string{"showcase", "manual"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q:\n%s", want, out)
		}
	}
}

func TestSimulateCommand(t *testing.T) {
	db := filepath.Join(t.TempDir(), "runner.db")
	out := execute(t, "simulate", "--db", db, "--seed", "7", "--duration", "5s", "--mode", "showcase")

	if !strings.Contains(out, "Phase:      running") {
		t.Errorf("showcase run should still be running after 5s:\n%s", out)
	}
	if !strings.Contains(out, "Mode:       showcase") {
		t.Errorf("missing mode line:\n%s", out)
	}
}

func TestPrintScores(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runner.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	var out bytes.Buffer
	if err := printScores(&out, store); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "No runs recorded yet.") {
		t.Errorf("expected empty history:\n%s", out.String())
	}

	if err := store.SaveHighScore(250); err != nil {
		t.Fatal(err)
	}
	if err := store.RecordRun(core.RunResult{Mode: "manual", Score: 250, Reason: core.EndCollision, DurationMs: 30000}); err != nil {
		t.Fatal(err)
	}

	out.Reset()
	if err := printScores(&out, store); err != nil {
		t.Fatal(err)
	}
	text := out.String()
	for _, want := range []string{"High score: 250", "manual", "collision", "0:30"} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q:\n%s", want, text)
		}
	}
}

func TestResetScores(t *testing.T) {
	tests := []struct {
		name     string
		runs     bool
		high     bool
		wantRuns int
		wantHigh int
		wantOut  string
	}{
		{"clear history", true, false, 0, 80, "Run history cleared."},
		{"reset high score", false, true, 1, 0, "High score reset."},
		{"both", true, true, 0, 0, "High score reset."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := storage.Open(filepath.Join(t.TempDir(), "runner.db"))
			if err != nil {
				t.Fatal(err)
			}
			defer store.Close()

			store.SaveHighScore(80)
			store.RecordRun(core.RunResult{Mode: "showcase", Score: 80, Reason: core.EndRestart, DurationMs: 8000})

			var out bytes.Buffer
			if err := resetScores(&out, store, tt.runs, tt.high); err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(out.String(), tt.wantOut) {
				t.Errorf("output = %q, want %q", out.String(), tt.wantOut)
			}
			if runs, _ := store.RecentRuns(10); len(runs) != tt.wantRuns {
				t.Errorf("runs = %d, want %d", len(runs), tt.wantRuns)
			}
			if high, _ := store.HighScore(); high != tt.wantHigh {
				t.Errorf("high score = %d, want %d", high, tt.wantHigh)
			}
		})
	}
}

func TestPortOf(t *testing.T) {
	tests := map[string]string{
		":23234":       "23234",
		"0.0.0.0:2222": "2222",
		"localhost":    "localhost",
		"[::1]:8080":   "8080",
	}
	for addr, want := range tests {
		if got := portOf(addr); got != want {
			t.Errorf("portOf(%q) = %q, want %q", addr, got, want)
		}
	}
}
