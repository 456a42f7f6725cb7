package ui

import "strings"

const (
	Title       = "Characters"
	LoadingText = "Loading characters…"
	EmptyText   = "No data available"
)

// RenderBody renders the list area for s. The loading indicator itself is
// left to the caller.
//
// Lines are styled one at a time: lipgloss pads multi-line blocks to a common
// width, which would leave trailing spaces on shorter lines.
func RenderBody(s State, st Styles) string {
	switch s.Phase() {
	case PhaseLoading:
		return st.Loading.Render(LoadingText)
	case PhaseEmpty:
		return st.Empty.Render(EmptyText)
	}

	rows := make([]string, 0, len(s.Characters))
	for _, c := range s.Characters {
		rows = append(rows, renderRow(FormatCharacter(c), st))
	}
	return strings.Join(rows, "\n\n")
}

func renderRow(r Row, st Styles) string {
	lines := []string{st.Name.Render(r.Name)}
	if r.Details != "" {
		lines = append(lines, st.Details.Render(r.Details))
	}
	if r.HasTitles {
		lines = append(lines, st.Titles.Render(r.Titles))
	}
	return strings.Join(lines, "\n")
}
