package core

// Phase is the lifecycle state of a run.
type Phase int

const (
	PhaseNotStarted Phase = iota // Waiting for the start timer or Start()
	PhaseRunning                 // Frame loop advancing the world
	PhaseRestarting              // Curtain shown, loop stopped
	PhaseLost                    // Manual mode collision
)

// String returns the phase name used by the HUD and the control API.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not-started"
	case PhaseRunning:
		return "running"
	case PhaseRestarting:
		return "restarting"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// GameState is a read-only snapshot of a run.
type GameState struct {
	Phase      Phase
	Score      int     // Displayed score (floor of the accumulated score)
	HighScore  int     // Best displayed score ever observed
	Paused     bool    // Frame loop suspended by the player
	Obstacles  int     // Live obstacles
	SpeedScale float64 // Current world speed scale
	ElapsedMs  float64 // Run time since the loop (re)started
}

// EndReason explains why a run was recorded.
type EndReason string

const (
	EndRestart   EndReason = "restart"
	EndCollision EndReason = "collision"
	EndQuit      EndReason = "quit"
)

// RunResult describes a finished run.
type RunResult struct {
	Mode       string
	Score      int
	Reason     EndReason
	DurationMs float64
}

// ScoreStore persists the high score and the run history.
// Implementations must never lower a stored high score.
type ScoreStore interface {
	HighScore() (int, error)
	SaveHighScore(score int) error
	RecordRun(run RunResult) error
}

// Cue is a one-shot sound played from its beginning on every call.
type Cue interface {
	Play() error
}

// RandomSource supplies uniform values in [0, 1).
// *rand.Rand satisfies it; tests inject fixed sequences.
type RandomSource interface {
	Float64() float64
}
