// ABOUTME: Bubbletea model for the waveform viewer
// ABOUTME: Shows analysis metrics above a two-channel terminal waveform
package ui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/harperreed/waventropy/pkg/analysis"
	"github.com/harperreed/waventropy/pkg/audio"
	"github.com/harperreed/waventropy/pkg/audio/decode"
)

// Viewer states
const (
	stateLoading = "loading"
	stateReady   = "ready"
	stateFailed  = "failed"
)

// codeRowsShown is how many code table rows the code view lists
const codeRowsShown = 12

// Styles
var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	waveStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	helpStyle   = lipgloss.NewStyle().Faint(true)
)

// outcomeMsg delivers a finished analysis to the model
type outcomeMsg analysis.Outcome

// Model represents the viewer state
type Model struct {
	path     string
	analyzer *analysis.Analyzer

	state  string
	result *analysis.Result
	err    error

	showCodes bool

	// Dimensions
	width  int
	height int
}

// NewModel creates a viewer for one file
func NewModel(path string, analyzer *analysis.Analyzer) Model {
	return Model{
		path:     path,
		analyzer: analyzer,
		state:    stateLoading,
	}
}

// Init starts the first analysis
func (m Model) Init() tea.Cmd {
	return m.load()
}

// load runs the analysis off the UI goroutine
func (m Model) load() tea.Cmd {
	if m.analyzer == nil {
		return nil
	}
	ch := m.analyzer.Start(m.path)
	return func() tea.Msg {
		return outcomeMsg(<-ch)
	}
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case outcomeMsg:
		m.applyOutcome(analysis.Outcome(msg))
	}

	return m, nil
}

// applyOutcome replaces the displayed result. A failure clears the old result.
func (m *Model) applyOutcome(o analysis.Outcome) {
	if o.Err != nil {
		m.state = stateFailed
		m.err = o.Err
		m.result = nil
		return
	}
	m.state = stateReady
	m.err = nil
	m.result = o.Result
}

// handleKey handles keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "r":
		if m.state == stateLoading {
			return m, nil
		}
		m.state = stateLoading
		return m, m.load()
	case "c":
		m.showCodes = !m.showCodes
	}

	return m, nil
}

// View renders the viewer
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Waveform Viewer"))
	b.WriteString("  ")
	b.WriteString(valueStyle.Render(m.path))
	b.WriteString("\n\n")

	switch m.state {
	case stateLoading:
		b.WriteString(valueStyle.Render("Analyzing..."))
		b.WriteString("\n")
	case stateFailed:
		b.WriteString(errorStyle.Render("Error: " + describeError(m.err)))
		b.WriteString("\n")
	case stateReady:
		b.WriteString(m.renderStats())
		b.WriteString("\n")
		if m.showCodes {
			b.WriteString(m.renderCodes())
		} else {
			b.WriteString(m.renderWaveforms())
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("r:Reload  c:Codes/Waveform  q:Quit"))

	return b.String()
}

// renderStats renders the annotation block
func (m Model) renderStats() string {
	res := m.result
	lines := []struct{ label, value string }{
		{"Title: ", res.Title},
		{"Sample Rate: ", fmt.Sprintf("%d Hz", res.Format.SampleRate)},
		{"Total Samples: ", fmt.Sprintf("%d", res.Frames())},
		{"Entropy: ", fmt.Sprintf("%.4f", res.Metrics.Entropy)},
		{"Average Code Word Length: ", fmt.Sprintf("%.4f", res.Metrics.AverageCodeLength)},
		{"Distinct Symbols: ", fmt.Sprintf("%d", res.Metrics.Symbols)},
		{"Efficiency: ", fmt.Sprintf("%.2f%%", res.Metrics.Efficiency()*100)},
		{"Redundancy: ", fmt.Sprintf("%.4f bits", res.Metrics.Redundancy())},
	}

	var b strings.Builder
	for _, l := range lines {
		b.WriteString(headerStyle.Render(l.label))
		b.WriteString(valueStyle.Render(l.value))
		b.WriteString("\n")
	}
	return b.String()
}

// renderWaveforms draws the left channel above the right one
func (m Model) renderWaveforms() string {
	// Header, stats, help and two labels take about 14 lines
	halfRows := (m.height - 14) / 4
	if halfRows < 1 {
		halfRows = 1
	}

	var b strings.Builder
	for _, ch := range []struct {
		name    string
		samples []int16
	}{
		{"Left", m.result.Channels.Left},
		{"Right", m.result.Channels.Right},
	} {
		b.WriteString(headerStyle.Render(ch.name))
		b.WriteString("\n")
		for _, row := range renderChannel(ch.samples, m.width, halfRows) {
			b.WriteString(waveStyle.Render(row))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// renderCodes lists the shortest codes
func (m Model) renderCodes() string {
	rows := m.result.CodeRows()

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%8s %10s  %s", "Symbol", "Count", "Code")))
	b.WriteString("\n")
	for i, row := range rows {
		if i == codeRowsShown {
			b.WriteString(valueStyle.Render(fmt.Sprintf("... %d more", len(rows)-codeRowsShown)))
			b.WriteString("\n")
			break
		}
		code := row.Code.String()
		if code == "" {
			code = "(empty)"
		}
		b.WriteString(valueStyle.Render(fmt.Sprintf("%8d %10d  %s", row.Symbol, row.Count, code)))
		b.WriteString("\n")
	}
	return b.String()
}

// describeError maps pipeline errors to a short user-facing explanation
func describeError(err error) string {
	switch {
	case errors.Is(err, audio.ErrUnsupportedFormat):
		return "unsupported format (need 16-bit stereo): " + err.Error()
	case errors.Is(err, audio.ErrMalformedInput):
		return "malformed audio data: " + err.Error()
	case errors.Is(err, audio.ErrEmptyInput):
		return "file contains no samples"
	case errors.Is(err, decode.ErrInputTooLarge):
		return "file too large: " + err.Error()
	default:
		return err.Error()
	}
}
