package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
	"github.com/vovakirdan/tui-runner/internal/storage"
)

// fakeGame records the calls the model makes.
type fakeGame struct {
	calls    []string
	frames   []time.Duration
	finished int
	status   *core.StatusBoard
}

func newFakeGame() *fakeGame {
	return &fakeGame{status: core.NewStatusBoard()}
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) Frame(now time.Duration) {
	g.calls = append(g.calls, "frame")
	g.frames = append(g.frames, now)
}
func (g *fakeGame) Start()       { g.calls = append(g.calls, "start") }
func (g *fakeGame) Restart()     { g.calls = append(g.calls, "restart") }
func (g *fakeGame) Jump()        { g.calls = append(g.calls, "jump") }
func (g *fakeGame) TogglePause() { g.calls = append(g.calls, "pause") }
func (g *fakeGame) Finish()      { g.finished++ }
func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "HI 00042")
}
func (g *fakeGame) State() core.GameState     { return core.GameState{Score: 42} }
func (g *fakeGame) Status() *core.StatusBoard { return g.status }

func testScreen() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

func TestModelAppliesInputAtFrame(t *testing.T) {
	g := newFakeGame()
	m := NewModel(g, testScreen())

	m, _ = update(t, m, runeKey("r"))
	m, _ = update(t, m, runeKey("p"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if len(g.calls) != 0 {
		t.Fatalf("input reached the game before the frame: %v", g.calls)
	}

	m, cmd := update(t, m, FrameMsg(m.start.Add(100*time.Millisecond)))
	if cmd == nil {
		t.Error("frame should schedule the next frame")
	}

	want := []string{"restart", "pause", "jump", "frame"}
	if strings.Join(g.calls, ",") != strings.Join(want, ",") {
		t.Errorf("calls = %v, want %v", g.calls, want)
	}
	if g.frames[0] != 100*time.Millisecond {
		t.Errorf("frame time = %v, want 100ms", g.frames[0])
	}

	// Input is consumed by the frame.
	update(t, m, FrameMsg(m.start.Add(200*time.Millisecond)))
	if got := g.calls[len(g.calls)-1]; got != "frame" || len(g.calls) != 5 {
		t.Errorf("second frame replayed input: %v", g.calls)
	}
}

func TestModelExternalTriggers(t *testing.T) {
	g := newFakeGame()
	m := NewModel(g, testScreen())

	m, _ = update(t, m, RestartMsg{})
	m, _ = update(t, m, JumpMsg{})
	update(t, m, FrameMsg(m.start))

	want := []string{"restart", "jump", "frame"}
	if strings.Join(g.calls, ",") != strings.Join(want, ",") {
		t.Errorf("calls = %v, want %v", g.calls, want)
	}
}

func TestModelQuitFinishesRun(t *testing.T) {
	g := newFakeGame()
	m := NewModel(g, testScreen())

	m, cmd := update(t, m, runeKey("q"))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit should return tea.Quit")
	}
	if g.finished != 1 {
		t.Errorf("Finish called %d times, want 1", g.finished)
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestModelViewAndResize(t *testing.T) {
	g := newFakeGame()
	m := NewModel(g, testScreen())

	view := m.View()
	if !strings.Contains(view, "HI 00042") {
		t.Errorf("view missing HUD: %q", view)
	}
	if got := strings.Count(view, "\n"); got != 9 {
		t.Errorf("view has %d line breaks, want 9", got)
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	if m.screen.Width() != 60 || m.screen.Height() != 20 {
		t.Errorf("screen = %dx%d, want 60x20", m.screen.Width(), m.screen.Height())
	}

	m, _ = update(t, m, runeKey("?"))
	if m.screen.Height() != 19 {
		t.Errorf("help should take one row, screen height = %d", m.screen.Height())
	}
}

func TestSaveScreenshot(t *testing.T) {
	g := newFakeGame()
	m := NewModel(g, testScreen())
	m.shotDir = t.TempDir()

	path, err := m.SaveScreenshot()
	if err != nil {
		t.Fatalf("SaveScreenshot: %v", err)
	}
	if !strings.HasPrefix(path, m.shotDir) || !strings.HasSuffix(path, ".txt") {
		t.Errorf("unexpected path %q", path)
	}
}

type recordingSender struct {
	msgs []tea.Msg
}

func (s *recordingSender) Send(msg tea.Msg) { s.msgs = append(s.msgs, msg) }

func TestProgramTrigger(t *testing.T) {
	s := &recordingSender{}
	trigger := ProgramTrigger{Program: s}

	trigger.Restart()
	trigger.Jump()

	if len(s.msgs) != 2 {
		t.Fatalf("sent %d messages, want 2", len(s.msgs))
	}
	if _, ok := s.msgs[0].(RestartMsg); !ok {
		t.Errorf("first message = %T, want RestartMsg", s.msgs[0])
	}
	if _, ok := s.msgs[1].(JumpMsg); !ok {
		t.Errorf("second message = %T, want JumpMsg", s.msgs[1])
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(10, 3)
	s.DrawTextColor(0, 1, "RUN", core.ColorGreen)

	out := RenderScreen(s)
	if !strings.Contains(out, "RUN") {
		t.Errorf("missing text in %q", out)
	}
	if got := strings.Count(out, "\n"); got != 2 {
		t.Errorf("got %d line breaks, want 2", got)
	}
}

type fakeHistory struct {
	top, recent []storage.RunEntry
	recentCalls int
}

func (h *fakeHistory) HighScore() (int, error) { return 321, nil }
func (h *fakeHistory) TopRuns(int) ([]storage.RunEntry, error) {
	return h.top, nil
}
func (h *fakeHistory) RecentRuns(int) ([]storage.RunEntry, error) {
	h.recentCalls++
	return h.recent, nil
}

func TestScoreboardTabs(t *testing.T) {
	h := &fakeHistory{
		top:    []storage.RunEntry{{Score: 300, Mode: "manual", Reason: "collision"}, {Score: 100}},
		recent: []storage.RunEntry{{Score: 100}},
	}
	m := NewScoreboardModel(h, 100, 30)

	if m.Tab() != TabTop || len(m.Runs()) != 2 {
		t.Fatalf("tab = %v runs = %d, want top with 2", m.Tab(), len(m.Runs()))
	}
	if !strings.Contains(m.View(), "00321") {
		t.Error("view should show the high score")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.Tab() != TabRecent || len(m.Runs()) != 1 || h.recentCalls != 1 {
		t.Errorf("after tab: tab = %v runs = %d recent calls = %d", m.Tab(), len(m.Runs()), h.recentCalls)
	}

	next, cmd := m.Update(runeKey("b"))
	m = next.(ScoreboardModel)
	if !m.IsGoingBack() || cmd == nil {
		t.Error("b should leave the scoreboard")
	}
}

func TestScoreboardWithoutHistory(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("expected empty message")
	}
}

func TestRunRows(t *testing.T) {
	rows := RunRows([]storage.RunEntry{
		{Score: 512, Mode: "showcase", Reason: "restart", DurationMs: 61500},
	})
	if len(rows) != 1 {
		t.Fatalf("got %d rows", len(rows))
	}
	want := []string{"#1", "512", "showcase", "restart", "1:01"}
	for i, w := range want {
		if rows[0][i] != w {
			t.Errorf("column %d = %q, want %q", i, rows[0][i], w)
		}
	}
}

func TestMenuSelectsMode(t *testing.T) {
	m := MenuModel{
		items:     []MenuItem{{ModeID: "manual", Title: "Manual"}, {ModeID: "showcase", Title: "Showcase"}},
		width:     80,
		keyMapper: NewKeyMapper(),
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(MenuModel)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)

	if cmd == nil {
		t.Error("select should quit the menu program")
	}
	if res := m.Result(); res.ModeID != "showcase" || res.Quit {
		t.Errorf("result = %+v, want showcase", res)
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := MenuModel{keyMapper: NewKeyMapper()}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if res := next.(MenuModel).Result(); !res.WantsScoreboard {
		t.Errorf("tab result = %+v, want scoreboard", res)
	}

	next, _ = m.Update(runeKey("q"))
	if res := next.(MenuModel).Result(); !res.Quit {
		t.Errorf("q result = %+v, want quit", res)
	}
}

func TestSessionModelReturnsToMenu(t *testing.T) {
	g := newFakeGame()
	factory := func(mode, user string) (registry.Game, error) { return g, nil }
	s := NewSessionModel(factory, storage.NewMemory(), testScreen(), "tester")
	s.menu.items = []MenuItem{{ModeID: "showcase", Title: "Showcase"}}

	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)
	if !s.InGame() {
		t.Fatal("enter should start a run")
	}

	next, cmd := s.Update(FrameMsg(time.Now()))
	s = next.(SessionModel)
	if cmd == nil || len(g.frames) != 1 {
		t.Errorf("frame should reach the game and continue the loop")
	}

	next, cmd = s.Update(runeKey("q"))
	s = next.(SessionModel)
	if s.InGame() || cmd != nil {
		t.Error("q should return to the menu without quitting the session")
	}
	if g.finished != 1 {
		t.Errorf("Finish called %d times, want 1", g.finished)
	}
}

func TestSessionStartRunFailureKeepsMenu(t *testing.T) {
	factory := func(mode, user string) (registry.Game, error) {
		return nil, errors.New("no such mode")
	}
	s := NewSessionModel(factory, nil, testScreen(), "tester").StartRun("bogus")
	if s.InGame() {
		t.Error("failed start should stay in the menu")
	}
	if !strings.Contains(s.View(), "D I N O") {
		t.Error("menu should be rendered")
	}
}
