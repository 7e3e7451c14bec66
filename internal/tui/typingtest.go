package tui

import (
	"errors"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/aayushbajaj/moditime/internal/sentences"
	"github.com/aayushbajaj/moditime/internal/session"
)

const progressBarWidth = 40

// Settings persists preferences chosen in the UI. It may be nil.
type Settings interface {
	SetTimeLimit(seconds int) error
	SetTheme(name string) error
}

// Options configures a new typing test model.
type Options struct {
	TimeLimit int // seconds to prefill in the time entry; 0 leaves it blank
	Theme     string
	Settings  Settings
	Source    session.SentenceSource
	Clock     session.Clock
}

type Model struct {
	machine  *session.Machine
	disp     *display
	sched    *teaScheduler
	settings Settings

	timeEntry string
	width     int
	height    int

	pickerOpen   bool
	searchQuery  string
	filtered     []string
	selectedIdx  int
	themeOnEntry string
}

// New returns a model in the idle state.
func New(opts Options) Model {
	if opts.Source == nil {
		opts.Source = sentences.New()
	}
	if opts.Clock == nil {
		opts.Clock = session.SystemClock{}
	}
	if opts.Theme != "" && !SetTheme(opts.Theme) {
		log.Printf("Unknown theme %q, using %s", opts.Theme, CurrentTheme.Name)
	}

	disp := &display{}
	sched := &teaScheduler{}
	m := Model{
		machine:  session.NewMachine(opts.Source, disp, sched, opts.Clock),
		disp:     disp,
		sched:    sched,
		settings: opts.Settings,
	}
	if opts.TimeLimit > 0 {
		m.timeEntry = strconv.Itoa(opts.TimeLimit)
	}
	m.filterThemes()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.machine.HandleTick(session.Tick(msg))
		return m, m.sched.drain()

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.pickerOpen {
			return m.updatePicker(msg)
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	controls := m.disp.controls

	switch msg.Type {
	case tea.KeyEsc:
		return m, tea.Quit

	case tea.KeyCtrlR:
		if controls.Reset {
			m.machine.Reset()
		}
		return m, m.sched.drain()

	case tea.KeyCtrlT:
		if m.machine.State() == session.StateIdle {
			m.openPicker()
		}
		return m, nil
	}

	switch {
	case controls.TextArea:
		m.editBuffer(msg)
	case controls.TimeEntry:
		m.editTimeEntry(msg)
	}
	return m, m.sched.drain()
}

// editBuffer applies a keystroke to the text area and revalidates it.
func (m *Model) editBuffer(msg tea.KeyMsg) {
	before := m.disp.buffer

	switch msg.Type {
	case tea.KeyBackspace:
		if msg.Alt {
			m.disp.buffer = deleteLastWord(m.disp.buffer)
		} else {
			m.disp.buffer = dropLastRune(m.disp.buffer)
		}
	case tea.KeyCtrlW:
		m.disp.buffer = deleteLastWord(m.disp.buffer)
	case tea.KeySpace:
		m.disp.buffer += " "
	case tea.KeyRunes:
		m.disp.buffer += string(msg.Runes)
	default:
		return
	}

	if m.disp.buffer != before {
		m.machine.InputChanged(m.disp.buffer)
	}
}

func (m *Model) editTimeEntry(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyEnter:
		m.start()
	case tea.KeyBackspace:
		m.timeEntry = dropLastRune(m.timeEntry)
	case tea.KeyRunes:
		m.timeEntry += string(msg.Runes)
	}
}

func (m *Model) start() {
	err := m.machine.Start(m.timeEntry)
	switch {
	case errors.Is(err, session.ErrInvalidInput):
		return
	case err != nil:
		log.Printf("Start rejected: %v", err)
		return
	}

	if m.settings == nil {
		return
	}
	seconds := int(m.machine.Session().TimeLimit.Seconds())
	if err := m.settings.SetTimeLimit(seconds); err != nil {
		log.Printf("Failed to save time limit: %v", err)
	}
}

// Theme picker

func (m *Model) openPicker() {
	m.pickerOpen = true
	m.searchQuery = ""
	m.themeOnEntry = ThemeKey()
	m.filterThemes()
	for i, key := range m.filtered {
		if key == m.themeOnEntry {
			m.selectedIdx = i
			break
		}
	}
}

func (m Model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		SetTheme(m.themeOnEntry)
		m.pickerOpen = false

	case tea.KeyEnter:
		if len(m.filtered) > 0 {
			m.applyTheme(m.filtered[m.selectedIdx])
		}
		m.pickerOpen = false

	case tea.KeyUp, tea.KeyCtrlP:
		if m.selectedIdx > 0 {
			m.selectedIdx--
			m.previewTheme()
		}

	case tea.KeyDown, tea.KeyCtrlN:
		if m.selectedIdx < len(m.filtered)-1 {
			m.selectedIdx++
			m.previewTheme()
		}

	case tea.KeyBackspace:
		if len(m.searchQuery) > 0 {
			m.searchQuery = dropLastRune(m.searchQuery)
			m.filterThemes()
		}

	case tea.KeyRunes, tea.KeySpace:
		if msg.Type == tea.KeySpace {
			m.searchQuery += " "
		} else {
			m.searchQuery += string(msg.Runes)
		}
		m.filterThemes()
	}
	return m, nil
}

// filterThemes narrows ThemeNames by fuzzy matching the search query
// against both keys and display names.
func (m *Model) filterThemes() {
	if m.searchQuery == "" {
		m.filtered = append([]string(nil), ThemeNames...)
	} else {
		targets := make([]string, len(ThemeNames))
		for i, key := range ThemeNames {
			targets[i] = key + " " + Themes[key].Name
		}
		matches := fuzzy.Find(m.searchQuery, targets)
		filtered := make([]string, 0, len(matches))
		for _, match := range matches {
			filtered = append(filtered, ThemeNames[match.Index])
		}
		m.filtered = filtered
	}

	if m.selectedIdx >= len(m.filtered) {
		m.selectedIdx = 0
	}
}

func (m *Model) previewTheme() {
	if len(m.filtered) > 0 {
		SetTheme(m.filtered[m.selectedIdx])
	}
}

func (m *Model) applyTheme(key string) {
	if !SetTheme(key) {
		return
	}
	if m.settings == nil {
		return
	}
	if err := m.settings.SetTheme(key); err != nil {
		log.Printf("Failed to save theme: %v", err)
	}
}

// View

func (m Model) View() string {
	if m.pickerOpen {
		return m.centerContent(m.renderPicker())
	}

	var b strings.Builder
	controls := m.disp.controls

	b.WriteString(titleStyle.Render("⌨️  Typing Test"))
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("Enter time (seconds): "))
	b.WriteString(m.renderField(m.timeEntry, controls.TimeEntry, 10))
	b.WriteString("\n\n")

	if m.disp.sentence != "" {
		b.WriteString(sentenceStyle.Render(m.wrap(m.disp.sentence)))
		b.WriteString("\n")
	}
	b.WriteString(m.renderField(m.disp.buffer, controls.TextArea, m.textWidth()))
	b.WriteString("\n\n")

	b.WriteString(renderProgress(m.disp.progress, progressBarWidth))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("WPM: "))
	b.WriteString(wpmStyle.Render(fmt.Sprintf("%.2f", m.disp.wpm)))
	b.WriteString("\n")

	if m.disp.result != "" {
		b.WriteString("\n")
		if m.machine.State() == session.StateFinished {
			b.WriteString(resultBoxStyle.Render(m.disp.result))
		} else {
			b.WriteString(errorStyle.Render(m.disp.result))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(helpLine(controls)))

	return m.centerContent(b.String())
}

func (m Model) renderPicker() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Theme"))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Search: "))
	b.WriteString(m.searchQuery)
	b.WriteString(cursorStyle.Render(" "))
	b.WriteString("\n\n")

	if len(m.filtered) == 0 {
		b.WriteString(labelStyle.Render("No matching themes"))
	}
	for i, key := range m.filtered {
		if i == m.selectedIdx {
			b.WriteString(selectedStyle.Render("> " + Themes[key].Name))
		} else {
			b.WriteString("  " + Themes[key].Name)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓: preview • enter: apply • esc: cancel"))
	return b.String()
}

// renderField draws a bordered input box, with a cursor when enabled.
func (m Model) renderField(value string, enabled bool, width int) string {
	if !enabled {
		return disabledStyle.Width(width).Render(value)
	}
	return inputStyle.Width(width).Render(value + cursorStyle.Render(" "))
}

func (m Model) textWidth() int {
	w := m.width - 8
	if w <= 0 || w > 76 {
		w = 76
	}
	return w
}

func (m Model) wrap(s string) string {
	return lipgloss.NewStyle().Width(m.textWidth()).Render(s)
}

// centerContent centers content horizontally and vertically within the window
func (m Model) centerContent(content string) string {
	if m.width == 0 || m.height == 0 {
		return content
	}

	lines := strings.Split(content, "\n")
	contentWidth := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > contentWidth {
			contentWidth = w
		}
	}

	leftPad := (m.width - contentWidth) / 2
	if leftPad < 0 {
		leftPad = 0
	}
	topPad := (m.height - len(lines)) / 2
	if topPad < 1 {
		topPad = 1
	}

	pad := strings.Repeat(" ", leftPad)
	var b strings.Builder
	b.WriteString(strings.Repeat("\n", topPad))
	for i, line := range lines {
		b.WriteString(pad)
		b.WriteString(line)
		if i < len(lines)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func renderProgress(fraction float64, width int) string {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	filled := int(math.Round(fraction * float64(width)))
	return progressFill.Render(strings.Repeat("█", filled)) +
		progressEmpty.Render(strings.Repeat("░", width-filled)) +
		labelStyle.Render(fmt.Sprintf(" %3.0f%%", fraction*100))
}

func helpLine(c session.Controls) string {
	var parts []string
	if c.Start {
		parts = append(parts, "enter: start", "ctrl+t: theme")
	}
	if c.Reset {
		parts = append(parts, "ctrl+r: reset")
	}
	parts = append(parts, "esc: quit")
	return strings.Join(parts, " • ")
}

func dropLastRune(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	return string(r[:len(r)-1])
}

// deleteLastWord removes trailing whitespace and the word before it
func deleteLastWord(s string) string {
	s = strings.TrimRightFunc(s, unicode.IsSpace)
	idx := strings.LastIndexFunc(s, unicode.IsSpace)
	if idx < 0 {
		return ""
	}
	return s[:idx+1]
}
