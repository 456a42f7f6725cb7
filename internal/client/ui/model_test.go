package ui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmitrijs2005/iceandfire/internal/client/models"
	"github.com/dmitrijs2005/iceandfire/internal/client/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticLoad(r services.Result, calls *int) LoadFunc {
	return func(context.Context) services.Result {
		*calls++
		return r
	}
}

// findLoaded executes cmd and any batched commands, returning the first
// loadedMsg produced.
func findLoaded(t *testing.T, cmd tea.Cmd) loadedMsg {
	t.Helper()
	require.NotNil(t, cmd)
	switch msg := cmd().(type) {
	case loadedMsg:
		return msg
	case tea.BatchMsg:
		for _, c := range msg {
			if c == nil {
				continue
			}
			if lm, ok := c().(loadedMsg); ok {
				return lm
			}
		}
	}
	t.Fatalf("no loadedMsg produced")
	return loadedMsg{}
}

func TestModel_StartsLoading(t *testing.T) {
	calls := 0
	m := NewModel(context.Background(), staticLoad(services.Result{}, &calls), PlainStyles())

	assert.True(t, m.State().Loading)
	assert.Contains(t, m.View(), LoadingText)
	assert.Zero(t, calls, "loading starts from Init, not the constructor")
}

func TestModel_LoadPopulates(t *testing.T) {
	calls := 0
	res := services.Result{Characters: []models.Character{jonSnow()}}
	m := NewModel(context.Background(), staticLoad(res, &calls), PlainStyles())

	msg := findLoaded(t, m.Init())
	assert.Equal(t, 1, calls)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	next, _ = next.Update(msg)
	got := next.(Model)

	assert.False(t, got.State().Loading)
	assert.Equal(t, PhasePopulated, got.State().Phase())
	assert.True(t, got.Result().OK())

	view := got.View()
	assert.Contains(t, view, "Jon Snow")
	assert.Contains(t, view, "Male  |  Northmen")
	assert.Contains(t, view, "Lord Commander of the Night's Watch")
	assert.NotContains(t, view, LoadingText)
}

func TestModel_FailureShowsEmpty(t *testing.T) {
	calls := 0
	res := services.Result{Characters: []models.Character{}, Stage: services.StageFetch, Err: assert.AnError}
	m := NewModel(context.Background(), staticLoad(res, &calls), PlainStyles())

	next, _ := m.Update(findLoaded(t, m.Init()))
	got := next.(Model)

	assert.Equal(t, PhaseEmpty, got.State().Phase())
	assert.Contains(t, got.View(), EmptyText)
	assert.Equal(t, services.StageFetch, got.Result().Stage)
}

func TestModel_Quit(t *testing.T) {
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyEsc},
	} {
		m := NewModel(context.Background(), nil, PlainStyles())
		_, cmd := m.Update(key)
		require.NotNil(t, cmd, key.String())
		_, ok := cmd().(tea.QuitMsg)
		assert.True(t, ok, key.String())
	}
}

func TestModel_ResizeKeepsContent(t *testing.T) {
	calls := 0
	list := make([]models.Character, 0, 4)
	for _, n := range []string{"Jon Snow", "Daenerys Targaryen", "Arya Stark", "Tyrion Lannister"} {
		list = append(list, models.Character{Name: models.Ptr(n)})
	}
	m := NewModel(context.Background(), staticLoad(services.Result{Characters: list}, &calls), PlainStyles())

	next, _ := m.Update(findLoaded(t, m.Init()))
	next, _ = next.Update(tea.WindowSizeMsg{Width: 60, Height: 40})

	view := next.View()
	for _, c := range list {
		assert.True(t, strings.Contains(view, *c.Name), *c.Name)
	}
}

func TestModel_LoadedFlag(t *testing.T) {
	calls := 0
	m := NewModel(context.Background(), staticLoad(services.Result{Characters: []models.Character{}}, &calls), PlainStyles())
	assert.False(t, m.Loaded())

	next, _ := m.Update(findLoaded(t, m.Init()))
	assert.True(t, next.(Model).Loaded())
}

func TestOutcome(t *testing.T) {
	calls := 0
	res := services.Result{Characters: []models.Character{jonSnow()}}
	m := NewModel(context.Background(), staticLoad(res, &calls), PlainStyles())

	// quit before the load message arrived
	_, err := outcome(m)
	require.ErrorIs(t, err, ErrNotLoaded)

	next, _ := m.Update(findLoaded(t, m.Init()))
	got, err := outcome(next)
	require.NoError(t, err)
	assert.Equal(t, res, got)

	failedRes := services.Result{Characters: []models.Character{}, Stage: services.StageFetch, Err: assert.AnError}
	m = NewModel(context.Background(), staticLoad(failedRes, &calls), PlainStyles())
	next, _ = m.Update(findLoaded(t, m.Init()))
	got, err = outcome(next)
	require.NoError(t, err, "a failed load still completed")
	assert.Equal(t, services.StageFetch, got.Stage)
}
