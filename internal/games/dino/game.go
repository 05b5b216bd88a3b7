// Package dino implements a Chrome Dino-style endless runner.
// A character runs along a scrolling ground under parallax clouds and jumps
// over obstacles, either on its own (showcase) or on player input (manual).
package dino

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

// Game owns all state of one runner session. It is driven by Frame and is
// not safe for concurrent use; observers read the StatusBoard instead.
type Game struct {
	cfg    config.RunnerConfig
	logger *log.Logger
	store  core.ScoreStore
	status *core.StatusBoard

	sched     *Scheduler
	curtain   *Curtain
	clouds    *CloudLayer
	ground    *Ground
	character *Character
	obstacles *ObstacleManager
	score     *Scoreboard
	ramp      *config.SpeedRamp

	phase      core.Phase
	paused     bool
	hasLast    bool    // lastTime holds a baseline frame
	lastTime   float64 // Ms
	elapsed    float64 // Ms of running since the loop (re)started
	speedScale float64
	recorded   bool // Current run already written to history

	startTimer    TimerID
	restartTimers []TimerID
}

// New creates a game in the not-started phase. The first run begins after
// the configured start delay, measured from the first frame.
func New(opts registry.Options) *Game {
	cfg := opts.Config
	if cfg.Mode == "" {
		cfg.Mode = config.ModeShowcase
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	if err := cfg.Validate(); err != nil {
		logger.Warn("invalid runner config, using defaults", "err", err)
		mode := cfg.Mode
		cfg = config.DefaultRunnerConfig()
		if _, modeErr := config.ParseMode(string(mode)); modeErr == nil {
			cfg.Mode = mode
		}
	}

	rng := opts.Rand
	if rng == nil {
		seed := opts.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}

	g := &Game{
		cfg:       cfg,
		logger:    logger,
		store:     opts.Store,
		status:    core.NewStatusBoard(),
		sched:     NewScheduler(),
		curtain:   NewCurtain(cfg.Curtain.OpenDurationMs),
		clouds:    NewCloudLayer(cfg.Clouds, rng),
		ground:    NewGround(cfg.Ground),
		character: NewCharacter(cfg.Character, cfg.World.Height),
		obstacles: NewObstacleManager(cfg.Obstacles, cfg.World.Height, rng),
		score:     NewScoreboard(cfg.Score, opts.Store, opts.Cue, logger),
		ramp:      config.NewSpeedRamp(cfg.Speed),
		phase:     core.PhaseNotStarted,
	}
	g.speedScale = g.ramp.Scale(0)
	g.startTimer = g.sched.After(cfg.Timing.StartDelayMs, g.Start)
	g.publish()

	return g
}

func init() {
	registry.Register(string(config.ModeShowcase), "Dino Runner (showcase)", func(opts registry.Options) registry.Game {
		opts.Config.Mode = config.ModeShowcase
		return New(opts)
	})
	registry.Register(string(config.ModeManual), "Dino Runner (manual)", func(opts registry.Options) registry.Game {
		opts.Config.Mode = config.ModeManual
		return New(opts)
	})
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	return string(g.cfg.Mode)
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Dino Runner"
}

// Start begins the first run. Later calls are ignored.
func (g *Game) Start() {
	if g.phase != core.PhaseNotStarted {
		return
	}
	g.sched.Cancel(g.startTimer)
	g.begin()
	g.logger.Info("run started", "mode", g.cfg.Mode, "speed", g.speedScale)
	g.publish()
}

// begin switches the loop on for a fresh run.
func (g *Game) begin() {
	g.phase = core.PhaseRunning
	g.paused = false
	g.hasLast = false
	g.elapsed = 0
	g.recorded = false
	g.speedScale = g.ramp.Scale(0)
	g.obstacles.Setup()
}

// Frame advances the game to now. Timers fire first; while running, the
// first frame after a (re)start only records the baseline time.
func (g *Game) Frame(now time.Duration) {
	ms := float64(now) / float64(time.Millisecond)

	g.sched.Advance(ms)
	g.curtain.Advance(ms)

	if g.phase == core.PhaseRunning && !g.paused {
		g.step(ms)
	}
	g.publish()
}

// step runs one frame of the world update.
func (g *Game) step(ms float64) {
	if !g.hasLast {
		g.lastTime = ms
		g.hasLast = true
		return
	}

	delta := ms - g.lastTime
	g.lastTime = ms
	if delta <= 0 {
		return
	}

	g.elapsed += delta
	g.speedScale = g.ramp.Scale(g.elapsed)

	g.clouds.Update(delta, g.speedScale)
	g.ground.Update(delta, g.speedScale)
	g.character.Update(delta, g.speedScale)
	g.obstacles.Update(delta, g.speedScale)
	g.score.Update(delta)

	switch g.cfg.Mode {
	case config.ModeShowcase:
		g.autoJump()
	case config.ModeManual:
		g.checkLose()
	}
}

// autoJump triggers a jump for every obstacle that is ahead of the character
// and closer than the trigger distance.
func (g *Game) autoJump() {
	right := g.character.BoundingRect().Right
	for _, o := range g.obstacles.Obstacles() {
		gap := (o.Left() - right) * g.cfg.AutoJump.PixelsPerUnit
		if gap > 0 && gap < g.cfg.AutoJump.TriggerDistance {
			g.character.TriggerJump()
		}
	}
}

// checkLose ends the run when the character overlaps an obstacle.
func (g *Game) checkLose() {
	if !g.obstacles.CheckCollision(g.character.BoundingRect()) {
		return
	}
	g.character.SetLose()
	g.phase = core.PhaseLost
	g.logger.Info("run lost", "score", g.score.Displayed(), "elapsed_ms", int64(g.elapsed))
	g.recordRun(core.EndCollision)
}

// Restart stops the loop, resets the world and shows the curtain. The loop
// resumes after the show and resume delays; the curtain is removed when its
// opening animation completes. Calling Restart mid-restart cancels the
// pending transition and starts it over.
func (g *Game) Restart() {
	if g.phase == core.PhaseRunning {
		g.recordRun(core.EndRestart)
	}

	g.sched.Cancel(g.startTimer)
	for _, id := range g.restartTimers {
		g.sched.Cancel(id)
	}
	g.restartTimers = g.restartTimers[:0]

	g.phase = core.PhaseRestarting
	g.paused = false
	g.hasLast = false
	g.elapsed = 0

	g.obstacles.Clear()
	g.score.Reset()
	g.character.Reset()
	g.ground.Setup()
	g.clouds.Setup()
	g.speedScale = g.ramp.Scale(0)

	g.curtain.Show()
	show := g.cfg.Curtain.ShowDelayMs
	g.restartTimers = append(g.restartTimers,
		g.sched.After(show, func() { g.curtain.Open(g.sched.Now()) }),
		g.sched.After(show+g.cfg.Curtain.ResumeDelayMs, g.resume),
	)

	g.logger.Debug("restart requested", "high_score", g.score.HighScore())
	g.publish()
}

func (g *Game) resume() {
	g.restartTimers = g.restartTimers[:0]
	g.begin()
	g.logger.Info("run restarted", "mode", g.cfg.Mode)
}

// Jump asks the character to jump while the run is live.
func (g *Game) Jump() {
	if g.phase != core.PhaseRunning || g.paused {
		return
	}
	g.character.TriggerJump()
}

// TogglePause suspends or resumes a running loop. Paused time does not count
// towards score or movement.
func (g *Game) TogglePause() {
	if g.phase != core.PhaseRunning {
		return
	}
	g.paused = !g.paused
	g.hasLast = false
	g.publish()
}

// Finish records the current run if it is still live.
func (g *Game) Finish() {
	if g.phase == core.PhaseRunning {
		g.recordRun(core.EndQuit)
	}
}

// recordRun writes the current run to history once. Runs that never
// advanced are skipped.
func (g *Game) recordRun(reason core.EndReason) {
	if g.recorded || g.store == nil || g.elapsed <= 0 {
		return
	}
	g.recorded = true

	run := core.RunResult{
		Mode:       string(g.cfg.Mode),
		Score:      g.score.Displayed(),
		Reason:     reason,
		DurationMs: g.elapsed,
	}
	if err := g.store.RecordRun(run); err != nil {
		g.logger.Warn("failed to record run", "reason", reason, "err", err)
	}
}

// State returns a snapshot of the current run.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:      g.phase,
		Score:      g.score.Displayed(),
		HighScore:  g.score.HighScore(),
		Paused:     g.paused,
		Obstacles:  g.obstacles.Len(),
		SpeedScale: g.speedScale,
		ElapsedMs:  g.elapsed,
	}
}

func (g *Game) publish() {
	g.status.Publish(g.State())
}

// Status returns the board the game publishes a snapshot to after every frame.
func (g *Game) Status() *core.StatusBoard {
	return g.status
}

// Mode returns the collision policy of this game.
func (g *Game) Mode() config.Mode {
	return g.cfg.Mode
}

// Clouds returns the cloud layer.
func (g *Game) Clouds() *CloudLayer {
	return g.clouds
}

// Ground returns the ground mover.
func (g *Game) Ground() *Ground {
	return g.ground
}

// Character returns the character controller.
func (g *Game) Character() *Character {
	return g.character
}

// Obstacles returns the obstacle manager.
func (g *Game) Obstacles() *ObstacleManager {
	return g.obstacles
}

// Scoreboard returns the score bridge.
func (g *Game) Scoreboard() *Scoreboard {
	return g.score
}

// Curtain returns the restart overlay.
func (g *Game) Curtain() *Curtain {
	return g.curtain
}

// Ensure Game implements registry.Game
var _ registry.Game = (*Game)(nil)
