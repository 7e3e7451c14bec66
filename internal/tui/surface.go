package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aayushbajaj/moditime/internal/session"
)

// display holds what the session has asked the screen to show, plus the
// text area buffer. It is shared by every copy of Model.
type display struct {
	sentence string
	progress float64
	wpm      float64
	result   string
	controls session.Controls
	buffer   string
}

func (d *display) ShowSentence(text string)       { d.sentence = text }
func (d *display) ShowProgress(fraction float64)  { d.progress = fraction }
func (d *display) ShowWPM(wpm float64)            { d.wpm = wpm }
func (d *display) ShowResult(text string)         { d.result = text }
func (d *display) SetControls(c session.Controls) { d.controls = c }
func (d *display) Buffer() string                 { return d.buffer }
func (d *display) ClearBuffer()                   { d.buffer = "" }

type tickMsg session.Tick

// teaScheduler turns tick requests into tea.Tick commands. Requests made
// while handling one message are returned together by drain.
type teaScheduler struct {
	pending []tea.Cmd
}

func (s *teaScheduler) Schedule(after time.Duration, t session.Tick) {
	s.pending = append(s.pending, tea.Tick(after, func(time.Time) tea.Msg {
		return tickMsg(t)
	}))
}

func (s *teaScheduler) drain() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}
