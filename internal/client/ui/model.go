package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmitrijs2005/iceandfire/internal/client/services"
)

// LoadFunc runs the refresh sequence once.
type LoadFunc func(ctx context.Context) services.Result

// loadedMsg delivers the refresh result to Update.
type loadedMsg struct {
	result services.Result
}

const (
	headerHeight = 2
	footerHeight = 2
)

// Model is the interactive characters screen.
type Model struct {
	ctx    context.Context
	load   LoadFunc
	styles Styles

	state    State
	result   services.Result
	loaded   bool
	spinner  spinner.Model
	viewport viewport.Model
	width    int
	height   int
}

func NewModel(ctx context.Context, load LoadFunc, styles Styles) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Loading

	return Model{
		ctx:      ctx,
		load:     load,
		styles:   styles,
		state:    InitialState(),
		spinner:  sp,
		viewport: viewport.New(80, 20),
	}
}

// State returns the current screen state.
func (m Model) State() State {
	return m.state
}

// Result returns the load result; zero until Loaded reports true.
func (m Model) Result() services.Result {
	return m.result
}

// Loaded reports whether the load finished.
func (m Model) Loaded() bool {
	return m.loaded
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadCmd())
}

func (m Model) loadCmd() tea.Cmd {
	ctx, load := m.ctx, m.load
	return func() tea.Msg {
		return loadedMsg{result: load(ctx)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-headerHeight-footerHeight, 1)
		m.refresh()
		return m, nil

	case loadedMsg:
		m.result = msg.result
		m.loaded = true
		m.state = m.state.Apply(msg.result)
		m.refresh()
		return m, nil

	case spinner.TickMsg:
		if !m.state.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) refresh() {
	if m.state.Loading {
		return
	}
	m.viewport.SetContent(RenderBody(m.state, m.styles))
}

func (m Model) View() string {
	header := m.styles.Header.Render(Title) + "\n\n"

	if m.state.Loading {
		return header + m.spinner.View() + " " + RenderBody(m.state, m.styles) + "\n"
	}

	footer := "\n\n" + m.styles.Help.Render("↑/↓ scroll • q quit")
	return header + m.viewport.View() + footer
}
