package dino

import (
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Scoreboard accrues score from elapsed time, plays the milestone cue and
// writes every new high score through to the store.
type Scoreboard struct {
	cfg       config.ScoreConfig
	store     core.ScoreStore
	cue       core.Cue
	logger    *log.Logger
	score     float64
	reached   int // Milestones already cued this run
	highScore int
}

// NewScoreboard loads the high score from store. A missing or unreadable
// record starts at 0.
func NewScoreboard(cfg config.ScoreConfig, store core.ScoreStore, cue core.Cue, logger *log.Logger) *Scoreboard {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	sb := &Scoreboard{
		cfg:    cfg,
		store:  store,
		cue:    cue,
		logger: logger,
	}
	if store != nil {
		high, err := store.HighScore()
		if err != nil {
			logger.Warn("failed to load high score", "err", err)
		} else if high > 0 {
			sb.highScore = high
		}
	}
	return sb
}

// Update adds delta ms worth of score.
func (sb *Scoreboard) Update(delta float64) {
	if delta <= 0 {
		return
	}
	sb.score += delta * sb.cfg.PerMs
	displayed := sb.Displayed()

	if sb.cfg.Milestone > 0 {
		for (sb.reached+1)*sb.cfg.Milestone <= displayed {
			sb.reached++
			sb.playCue()
		}
	}

	if displayed > sb.highScore {
		sb.highScore = displayed
		if sb.store != nil {
			if err := sb.store.SaveHighScore(displayed); err != nil {
				sb.logger.Warn("failed to save high score", "score", displayed, "err", err)
			}
		}
	}
}

func (sb *Scoreboard) playCue() {
	if sb.cue == nil {
		return
	}
	if err := sb.cue.Play(); err != nil {
		sb.logger.Warn("milestone cue failed", "err", err)
	}
}

// Displayed returns the score shown to the player.
func (sb *Scoreboard) Displayed() int {
	return int(math.Floor(sb.score))
}

// HighScore returns the best displayed score ever observed.
func (sb *Scoreboard) HighScore() int {
	return sb.highScore
}

// Milestones returns how many milestones were cued this run.
func (sb *Scoreboard) Milestones() int {
	return sb.reached
}

// Reset zeroes the score and the milestone tracker. The high score is kept.
func (sb *Scoreboard) Reset() {
	sb.score = 0
	sb.reached = 0
}
