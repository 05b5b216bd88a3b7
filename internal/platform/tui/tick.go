// Package tui provides the Bubble Tea integration for the runner.
// It handles the terminal UI loop, input mapping, and frame timing.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent to advance the game by one frame.
type FrameMsg time.Time

// RestartMsg asks the running model to restart the run. Sent by external
// triggers such as the control API.
type RestartMsg struct{}

// JumpMsg asks the running model to make the character jump.
type JumpMsg struct{}

// frameCmd returns a Bubble Tea command that sends frame messages at the specified rate.
func frameCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// Sender is the part of *tea.Program used to deliver external triggers.
type Sender interface {
	Send(msg tea.Msg)
}

// ProgramTrigger turns restart and jump requests into messages, so they are
// applied by the Bubble Tea loop between frames.
type ProgramTrigger struct {
	Program Sender
}

// Restart sends a RestartMsg.
func (t ProgramTrigger) Restart() {
	t.Program.Send(RestartMsg{})
}

// Jump sends a JumpMsg.
func (t ProgramTrigger) Jump() {
	t.Program.Send(JumpMsg{})
}
