// Package ui renders the characters screen, either as an interactive
// bubbletea program or as a one-shot plain-text dump.
package ui

import (
	"github.com/dmitrijs2005/iceandfire/internal/client/models"
	"github.com/dmitrijs2005/iceandfire/internal/client/services"
)

// Phase is the render state of the screen.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseEmpty
	PhasePopulated
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseEmpty:
		return "empty"
	case PhasePopulated:
		return "populated"
	default:
		return "unknown"
	}
}

// State is owned by one screen instance.
type State struct {
	Loading    bool
	Characters []models.Character
}

func InitialState() State {
	return State{Loading: true, Characters: []models.Character{}}
}

// Apply folds a load result into the state. A failed load shows as empty.
func (s State) Apply(r services.Result) State {
	s.Loading = false
	if !r.OK() || r.Characters == nil {
		s.Characters = []models.Character{}
		return s
	}
	s.Characters = r.Characters
	return s
}

func (s State) Phase() Phase {
	switch {
	case s.Loading:
		return PhaseLoading
	case len(s.Characters) == 0:
		return PhaseEmpty
	default:
		return PhasePopulated
	}
}
