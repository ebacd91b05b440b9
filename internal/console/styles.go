package console

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Styles renders the key hints and the closing summary. They go to stderr so
// stdout carries nothing but the text itself.
type Styles struct {
	Title   lipgloss.Style
	Key     lipgloss.Style
	Hint    lipgloss.Style
	Value   lipgloss.Style
	Stopped lipgloss.Style
	Done    lipgloss.Style
}

func NewStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	return Styles{
		Title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ffff")),
		Key:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff00ff")),
		Hint:    r.NewStyle().Foreground(lipgloss.Color("#666688")).Italic(true),
		Value:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ccff")),
		Stopped: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffaa00")),
		Done:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff88")),
	}
}

func (s Styles) Banner(source string, delayMs int) string {
	return fmt.Sprintf("%s %s  %s %s  %s %s  %s %s  %s\n",
		s.Title.Render("teleprompter"),
		s.Hint.Render(source),
		s.Key.Render("<"), s.Hint.Render("slower"),
		s.Key.Render(">"), s.Hint.Render("faster"),
		s.Key.Render("x"), s.Hint.Render("quit"),
		s.Value.Render(fmt.Sprintf("%dms", delayMs)),
	)
}

// Summary reports how the run ended and the delay it ended at.
func (s Styles) Summary(finished bool, delayMs int) string {
	status := s.Stopped.Render("stopped")
	if finished {
		status = s.Done.Render("finished")
	}
	return fmt.Sprintf("%s %s %s\n", status, s.Hint.Render("at"), s.Value.Render(fmt.Sprintf("%dms", delayMs)))
}
