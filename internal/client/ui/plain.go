package ui

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmitrijs2005/iceandfire/internal/client/services"
)

// ErrNotLoaded is returned when the screen is closed before loading finished.
var ErrNotLoaded = errors.New("screen closed before characters were loaded")

// RunPlain runs load once and writes the final screen to w.
func RunPlain(ctx context.Context, w io.Writer, load LoadFunc) (services.Result, error) {
	res := load(ctx)
	state := InitialState().Apply(res)

	st := PlainStyles()
	if _, err := fmt.Fprintf(w, "%s\n\n%s\n", st.Header.Render(Title), RenderBody(state, st)); err != nil {
		return res, fmt.Errorf("write screen: %w", err)
	}
	return res, nil
}

// RunInteractive runs the full-screen program until the user quits.
func RunInteractive(ctx context.Context, load LoadFunc, opts ...tea.ProgramOption) (services.Result, error) {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, opts...)
	p := tea.NewProgram(NewModel(ctx, load, DefaultStyles()), opts...)

	final, err := p.Run()
	if err != nil {
		return services.Result{}, fmt.Errorf("run screen: %w", err)
	}
	return outcome(final)
}

func outcome(final tea.Model) (services.Result, error) {
	m, ok := final.(Model)
	if !ok || !m.Loaded() {
		return services.Result{}, ErrNotLoaded
	}
	return m.Result(), nil
}
