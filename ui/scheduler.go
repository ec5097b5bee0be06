package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"anime_checklist/session"
)

// timerMsg comes back from a tea.Tick scheduled through teaScheduler.
type timerMsg struct {
	Key session.Key
	Gen uint64
}

// teaScheduler turns scheduling requests into tea.Tick commands. Requests
// made while handling a message are collected and returned by Flush.
type teaScheduler struct {
	frame time.Duration
	cmds  []tea.Cmd
}

func newTeaScheduler(frame time.Duration) *teaScheduler {
	if frame <= 0 {
		frame = 16 * time.Millisecond
	}
	return &teaScheduler{frame: frame}
}

func (s *teaScheduler) AfterDelay(d time.Duration, key session.Key, gen uint64) {
	s.cmds = append(s.cmds, tea.Tick(d, func(time.Time) tea.Msg {
		return timerMsg{Key: key, Gen: gen}
	}))
}

func (s *teaScheduler) BeforeNextFrame(key session.Key, gen uint64) {
	s.AfterDelay(s.frame, key, gen)
}

// Flush hands over the pending commands.
func (s *teaScheduler) Flush() tea.Cmd {
	if len(s.cmds) == 0 {
		return nil
	}
	cmd := tea.Batch(s.cmds...)
	s.cmds = nil
	return cmd
}
