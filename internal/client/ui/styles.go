package ui

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.AdaptiveColor{Light: "#101F38", Dark: "#8BC34A"}
	muted  = lipgloss.AdaptiveColor{Light: "#5C6370", Dark: "#9AA5B1"}
)

// Styles groups the lipgloss styles shared by both renderers.
type Styles struct {
	Header  lipgloss.Style
	Name    lipgloss.Style
	Details lipgloss.Style
	Titles  lipgloss.Style
	Empty   lipgloss.Style
	Loading lipgloss.Style
	Help    lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Header:  lipgloss.NewStyle().Bold(true).Foreground(accent),
		Name:    lipgloss.NewStyle().Bold(true),
		Details: lipgloss.NewStyle().Foreground(muted),
		Titles:  lipgloss.NewStyle().Italic(true),
		Empty:   lipgloss.NewStyle().Foreground(muted),
		Loading: lipgloss.NewStyle().Foreground(accent),
		Help:    lipgloss.NewStyle().Foreground(muted),
	}
}

// PlainStyles renders text unchanged.
func PlainStyles() Styles {
	s := lipgloss.NewStyle()
	return Styles{Header: s, Name: s, Details: s, Titles: s, Empty: s, Loading: s, Help: s}
}
