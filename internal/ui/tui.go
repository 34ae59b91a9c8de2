// ABOUTME: TUI initialization and control
// ABOUTME: Wraps the bubbletea program for the waveform viewer
package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/harperreed/waventropy/pkg/analysis"
)

// Run starts the viewer for a file and blocks until the user quits
func Run(path string, analyzer *analysis.Analyzer) error {
	p := tea.NewProgram(NewModel(path, analyzer), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
