package ui

import (
	"strings"

	"github.com/dmitrijs2005/iceandfire/internal/client/models"
)

// Separator joins values on a row line.
const Separator = "  |  "

// Row is the display form of one character. An empty Details line is not
// shown; the Titles line is shown whenever the character has any titles.
type Row struct {
	Name      string
	Details   string
	Titles    string
	HasTitles bool
}

func FormatCharacter(c models.Character) Row {
	return Row{
		Name:      models.Text(c.Name),
		Details:   joinPresent(c.Gender, c.Culture),
		Titles:    strings.Join(c.Titles, Separator),
		HasTitles: len(c.Titles) > 0,
	}
}

// Lines returns the row's visible lines in order.
func (r Row) Lines() []string {
	lines := []string{r.Name}
	if r.Details != "" {
		lines = append(lines, r.Details)
	}
	if r.HasTitles {
		lines = append(lines, r.Titles)
	}
	return lines
}

func joinPresent(vals ...*string) string {
	parts := make([]string, 0, len(vals))
	for _, v := range vals {
		if s := models.Text(v); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, Separator)
}
