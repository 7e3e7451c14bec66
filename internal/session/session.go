// Package session implements the typing test lifecycle: starting a timed
// test, validating typed sentences, driving progress and WPM ticks, and
// finishing on completion or timeout.
//
// A Machine is not safe for concurrent use. It is meant to be owned by a
// single event loop, which also delivers the ticks it schedules.
package session

import (
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"
	"time"
)

// Tick cadences.
const (
	ProgressInterval = 100 * time.Millisecond
	WPMInterval      = 500 * time.Millisecond
)

const invalidInputMessage = "Please enter a valid number."

type State int

const (
	StateIdle State = iota
	StateRunning
	StateFinished
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateFinished:
		return "finished"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Controls is the set of input controls the surface should enable.
type Controls struct {
	Start     bool
	Reset     bool
	TimeEntry bool
	TextArea  bool
}

var (
	idleControls     = Controls{Start: true, TimeEntry: true}
	runningControls  = Controls{Reset: true, TextArea: true}
	finishedControls = Controls{Reset: true}
)

type TickKind int

const (
	TickProgress TickKind = iota
	TickWPM
	TickDeadline
)

// Tick is a deferred callback request. Generation ties it to the session
// that scheduled it; ticks from an earlier session are ignored.
type Tick struct {
	Kind       TickKind
	Generation uint64
}

// Surface renders session state and owns the input buffer.
type Surface interface {
	ShowSentence(text string)
	ShowProgress(fraction float64)
	ShowWPM(wpm float64)
	ShowResult(text string)
	SetControls(c Controls)
	Buffer() string
	ClearBuffer()
}

// Scheduler delivers t back to Machine.HandleTick after the given delay.
type Scheduler interface {
	Schedule(after time.Duration, t Tick)
}

// SentenceSource supplies the sentence sequence for a new session.
type SentenceSource interface {
	Select() []string
}

type EndReason int

const (
	ReasonCompleted EndReason = iota
	ReasonTimeout
)

// Result is the outcome of a finished session.
type Result struct {
	Reason  EndReason
	Words   int
	Elapsed time.Duration
	WPM     float64
}

func (r Result) String() string {
	prefix := "All sentences done!"
	if r.Reason == ReasonTimeout {
		prefix = "Time's up!"
	}
	return fmt.Sprintf("%s You typed %d words. Your speed is %.2f WPM.", prefix, r.Words, r.WPM)
}

// Session is a snapshot of the current test.
type Session struct {
	State      State
	TimeLimit  time.Duration
	Start      time.Time
	End        time.Time
	Sentences  []string
	Index      int
	Generation uint64
}

// Machine is the test session state machine.
type Machine struct {
	clock     Clock
	source    SentenceSource
	surface   Surface
	scheduler Scheduler

	sess         Session
	controls     Controls
	result       *Result
	lastProgress float64
}

// NewMachine returns an idle machine with a sentence sequence already drawn.
func NewMachine(source SentenceSource, surface Surface, scheduler Scheduler, clock Clock) *Machine {
	m := &Machine{
		clock:     clock,
		source:    source,
		surface:   surface,
		scheduler: scheduler,
	}
	m.sess.Sentences = source.Select()
	m.setControls(idleControls)
	return m
}

// Session returns a copy of the current session.
func (m *Machine) Session() Session {
	s := m.sess
	s.Sentences = append([]string(nil), m.sess.Sentences...)
	return s
}

func (m *Machine) State() State {
	return m.sess.State
}

func (m *Machine) Controls() Controls {
	return m.controls
}

// Result returns the outcome of the last finished session, if any.
func (m *Machine) Result() (Result, bool) {
	if m.result == nil {
		return Result{}, false
	}
	return *m.result, true
}

// CurrentSentence returns the sentence being typed, or "" when not running.
func (m *Machine) CurrentSentence() string {
	if m.sess.State != StateRunning || m.sess.Index >= len(m.sess.Sentences) {
		return ""
	}
	return m.sess.Sentences[m.sess.Index]
}

// ParseTimeLimit parses a whole number of seconds.
func ParseTimeLimit(text string) (time.Duration, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil || n <= 0 || n > math.MaxInt64/int64(time.Second) {
		return 0, fmt.Errorf("%w: time limit %q is not a positive number of seconds", ErrInvalidInput, text)
	}
	return time.Duration(n) * time.Second, nil
}

// Start begins a test with the given time limit text. It is rejected
// unless the machine is idle. Invalid input leaves the machine idle and
// shows a message on the surface.
func (m *Machine) Start(timeLimitText string) error {
	if m.sess.State != StateIdle {
		return fmt.Errorf("start in state %s: %w", m.sess.State, ErrNotIdle)
	}

	limit, err := ParseTimeLimit(timeLimitText)
	if err != nil {
		m.surface.ShowResult(invalidInputMessage)
		return err
	}

	if len(m.sess.Sentences) == 0 {
		m.sess.Sentences = m.source.Select()
	}

	m.sess.Generation++
	m.sess.State = StateRunning
	m.sess.TimeLimit = limit
	m.sess.Start = m.clock.Now()
	m.sess.End = time.Time{}
	m.sess.Index = 0
	m.result = nil
	m.lastProgress = 0

	m.surface.ClearBuffer()
	m.surface.ShowResult("")
	m.surface.ShowProgress(0)
	m.surface.ShowWPM(0)
	m.setControls(runningControls)

	log.Printf("session %d started: limit=%s sentences=%d", m.sess.Generation, limit, len(m.sess.Sentences))

	if len(m.sess.Sentences) == 0 {
		m.finish(ReasonCompleted)
		return nil
	}
	m.surface.ShowSentence(m.sess.Sentences[0])

	m.schedule(ProgressInterval, TickProgress)
	m.schedule(WPMInterval, TickWPM)
	m.schedule(limit, TickDeadline)
	return nil
}

// InputChanged validates the whole input buffer against the current
// sentence. An exact match after trimming clears the buffer and advances
// to the next sentence, finishing the test after the last one. It reports
// whether the sentence was accepted.
func (m *Machine) InputChanged(text string) bool {
	if m.sess.State != StateRunning {
		return false
	}
	if strings.TrimSpace(text) != m.sess.Sentences[m.sess.Index] {
		return false
	}

	m.surface.ClearBuffer()
	m.sess.Index++
	if m.sess.Index < len(m.sess.Sentences) {
		m.surface.ShowSentence(m.sess.Sentences[m.sess.Index])
		return true
	}
	m.finish(ReasonCompleted)
	return true
}

// HandleTick runs a scheduled callback. Ticks for another generation or
// delivered outside a running test are dropped and not rescheduled.
func (m *Machine) HandleTick(t Tick) {
	if t.Generation != m.sess.Generation || m.sess.State != StateRunning {
		return
	}

	elapsed := m.clock.Now().Sub(m.sess.Start)
	switch t.Kind {
	case TickProgress:
		m.showProgress(elapsed)
		if elapsed >= m.sess.TimeLimit {
			m.finish(ReasonTimeout)
			return
		}
		m.schedule(ProgressInterval, TickProgress)

	case TickWPM:
		m.surface.ShowWPM(LiveWPM(m.surface.Buffer(), elapsed))
		m.schedule(WPMInterval, TickWPM)

	case TickDeadline:
		if elapsed >= m.sess.TimeLimit {
			m.showProgress(elapsed)
			m.finish(ReasonTimeout)
			return
		}
		m.schedule(m.sess.TimeLimit-elapsed, TickDeadline)
	}
}

// Reset abandons any test and returns to idle with a fresh sentence
// sequence. Ticks already in flight become stale.
func (m *Machine) Reset() {
	prev := m.sess.State
	m.sess = Session{
		State:      StateIdle,
		Sentences:  m.source.Select(),
		Generation: m.sess.Generation + 1,
	}
	m.result = nil
	m.lastProgress = 0

	m.surface.ClearBuffer()
	m.surface.ShowSentence("")
	m.surface.ShowProgress(0)
	m.surface.ShowWPM(0)
	m.surface.ShowResult("")
	m.setControls(idleControls)

	log.Printf("session reset from %s", prev)
}

func (m *Machine) finish(reason EndReason) {
	m.sess.State = StateFinished
	m.sess.End = m.clock.Now()

	elapsed := m.sess.End.Sub(m.sess.Start)
	words, wpm := FinalWPM(m.sess.Sentences[:m.sess.Index], elapsed)
	m.result = &Result{Reason: reason, Words: words, Elapsed: elapsed, WPM: wpm}

	m.surface.ShowResult(m.result.String())
	m.setControls(finishedControls)

	log.Printf("session %d finished: %s", m.sess.Generation, m.result)
}

// showProgress never lets the displayed fraction move backwards within a session.
func (m *Machine) showProgress(elapsed time.Duration) {
	p := Progress(elapsed, m.sess.TimeLimit)
	if p < m.lastProgress {
		p = m.lastProgress
	}
	m.lastProgress = p
	m.surface.ShowProgress(p)
}

func (m *Machine) schedule(after time.Duration, kind TickKind) {
	m.scheduler.Schedule(after, Tick{Kind: kind, Generation: m.sess.Generation})
}

func (m *Machine) setControls(c Controls) {
	m.controls = c
	m.surface.SetControls(c)
}
