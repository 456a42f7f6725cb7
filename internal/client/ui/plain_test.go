package ui

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/iceandfire/internal/client/models"
	"github.com/dmitrijs2005/iceandfire/internal/client/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPlain_Populated(t *testing.T) {
	var buf bytes.Buffer
	calls := 0
	res, err := RunPlain(context.Background(), &buf,
		staticLoad(services.Result{Characters: []models.Character{jonSnow()}}, &calls))
	require.NoError(t, err)
	assert.True(t, res.OK())
	assert.Equal(t, 1, calls)

	want := "Characters\n\nJon Snow\nMale  |  Northmen\nLord Commander of the Night's Watch\n"
	assert.Equal(t, want, buf.String())
}

func TestRunPlain_ZeroEntities(t *testing.T) {
	var buf bytes.Buffer
	calls := 0
	_, err := RunPlain(context.Background(), &buf, staticLoad(services.Result{Characters: []models.Character{}}, &calls))
	require.NoError(t, err)
	assert.Equal(t, "Characters\n\nNo data available\n", buf.String())
}

func TestRunPlain_FailureIsEmpty(t *testing.T) {
	var buf bytes.Buffer
	calls := 0
	res, err := RunPlain(context.Background(), &buf,
		staticLoad(services.Result{Stage: services.StageRead, Err: errors.New("corrupt")}, &calls))
	require.NoError(t, err)
	assert.False(t, res.OK())
	assert.Contains(t, buf.String(), EmptyText)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestRunPlain_WriteError(t *testing.T) {
	calls := 0
	_, err := RunPlain(context.Background(), failingWriter{}, staticLoad(services.Result{}, &calls))
	require.Error(t, err)
}
